package dto

import "time"

// ── 提交模块 DTO ──

// CreateSubmissionRequest 创建提交请求
// student_id 由认证上下文决定，不从请求体读取
type CreateSubmissionRequest struct {
	EvaluationID string `json:"evaluation_id" binding:"required,uuid"`
	FileURL      string `json:"file_url"      binding:"required,max=500"`
	Comment      string `json:"comment"       binding:"omitempty,max=2000"`
}

// GradeSubmissionRequest 评分请求
// Score 为指针以区分"传了 0 分"与"未传"；Comment 缺省时保留原值
type GradeSubmissionRequest struct {
	Score   *float64 `json:"score"   binding:"required"`
	Comment *string  `json:"comment" binding:"omitempty,max=2000"`
}

// SubmissionResponse 提交信息响应
type SubmissionResponse struct {
	ID          string           `json:"id"`
	Evaluation  *EvaluationBrief `json:"evaluation,omitempty"`
	Student     *UserBrief       `json:"student,omitempty"`
	FileURL     string           `json:"file_url"`
	Comment     string           `json:"comment"`
	Score       *float64         `json:"score"`
	SubmittedAt time.Time        `json:"submitted_at"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// EvaluationBrief 评估简要信息（嵌入提交响应）
type EvaluationBrief struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
