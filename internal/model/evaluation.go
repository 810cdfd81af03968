package model

import "time"

// Evaluation 评估表 — 对应 evaluations
// 提交记录通过外键指向评估；截止时间可为空
type Evaluation struct {
	EvaluationID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"evaluation_id"`
	CourseID     string     `gorm:"type:uuid;not null"                             json:"course_id"`
	Title        string     `gorm:"type:varchar(200);not null"                     json:"title"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	BaseModel

	// 关联
	Course *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
}

// TableName 指定表名
func (Evaluation) TableName() string { return "evaluations" }
