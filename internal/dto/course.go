package dto

import "time"

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Name        string    `json:"name"        binding:"required,min=2,max=200"`
	Description string    `json:"description" binding:"required"`
	Code        string    `json:"code"        binding:"required,min=2,max=50"`
	TeacherID   string    `json:"teacher_id"  binding:"required,uuid"`
	Status      string    `json:"status"      binding:"omitempty,oneof=ACTIVO INACTIVO"`
	StartDate   time.Time `json:"start_date"  binding:"required"`
	EndDate     time.Time `json:"end_date"    binding:"required"`
}

// UpdateCourseRequest 更新课程请求
type UpdateCourseRequest struct {
	Name        *string    `json:"name"        binding:"omitempty,min=2,max=200"`
	Description *string    `json:"description"`
	Code        *string    `json:"code"        binding:"omitempty,min=2,max=50"`
	TeacherID   *string    `json:"teacher_id"  binding:"omitempty,uuid"`
	Status      *string    `json:"status"      binding:"omitempty,oneof=ACTIVO INACTIVO"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// CourseResponse 课程信息响应
type CourseResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Code        string      `json:"code"`
	Teacher     *UserBrief  `json:"teacher,omitempty"`
	Status      string      `json:"status"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

// UserBrief 用户简要信息（嵌入其他响应）
type UserBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
