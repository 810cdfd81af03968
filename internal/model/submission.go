package model

import "time"

// 成绩取值范围 [0, 5]，闭区间
const (
	ScoreMin = 0.0
	ScoreMax = 5.0
)

// Submission 提交表 — 对应 submissions
// (evaluation_id, student_id) 唯一约束在存储层强制：
// 并发创建同一组合时由唯一索引保证至多一条成功
// Score 为空表示尚未评分；评分后允许重复覆盖，存储不截断小数位
type Submission struct {
	SubmissionID string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"submission_id"`
	EvaluationID string   `gorm:"type:uuid;not null;uniqueIndex:idx_submissions_eval_student" json:"evaluation_id"`
	StudentID    string   `gorm:"type:uuid;not null;uniqueIndex:idx_submissions_eval_student" json:"student_id"`
	FileURL      string   `gorm:"type:varchar(500);not null;column:file_url"     json:"file_url"`
	Comment      string   `gorm:"type:text;not null;default:''"                  json:"comment"`
	Score        *float64 `gorm:"type:double precision"                          json:"score"`
	SubmittedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"            json:"submitted_at"`
	BaseModel

	// 关联
	Evaluation *Evaluation `gorm:"foreignKey:EvaluationID;references:EvaluationID" json:"evaluation,omitempty"`
	Student    *User       `gorm:"foreignKey:StudentID;references:UserID"          json:"student,omitempty"`
}

// TableName 指定表名
func (Submission) TableName() string { return "submissions" }

// Graded 是否已评分
func (s *Submission) Graded() bool { return s.Score != nil }
