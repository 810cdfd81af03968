package dto

import "time"

// ── 评估模块 DTO ──

// CreateEvaluationRequest 创建评估请求
type CreateEvaluationRequest struct {
	Title   string     `json:"title"    binding:"required,min=2,max=200"`
	DueDate *time.Time `json:"due_date"`
}

// EvaluationResponse 评估信息响应
type EvaluationResponse struct {
	ID        string     `json:"id"`
	CourseID  string     `json:"course_id"`
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt string     `json:"created_at"`
}
