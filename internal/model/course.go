package model

import "time"

// ── 课程状态枚举 ──

const (
	CourseStatusActive   = "ACTIVO"
	CourseStatusInactive = "INACTIVO"
)

// ValidCourseStatus 检查课程状态取值是否合法
func ValidCourseStatus(status string) bool {
	return status == CourseStatusActive || status == CourseStatusInactive
}

// Course 课程表 — 对应 courses
type Course struct {
	CourseID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	Name        string    `gorm:"type:varchar(200);not null"                     json:"name"`
	Description string    `gorm:"type:text;not null"                             json:"description"`
	Code        string    `gorm:"type:varchar(50);not null"                      json:"code"`
	TeacherID   string    `gorm:"type:uuid;not null"                             json:"teacher_id"`
	Status      string    `gorm:"type:varchar(20);not null;default:'ACTIVO'"     json:"status"`
	StartDate   time.Time `gorm:"not null"                                       json:"start_date"`
	EndDate     time.Time `gorm:"not null"                                       json:"end_date"`
	BaseModel

	// 关联
	Teacher *User `gorm:"foreignKey:TeacherID;references:UserID" json:"teacher,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
