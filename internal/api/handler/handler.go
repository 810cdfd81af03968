package handler

import "campus-core/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Course     *CourseHandler
	Evaluation *EvaluationHandler
	Submission *SubmissionHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		Course:     NewCourseHandler(svc.Course, svc.Evaluation, svc.Calendar),
		Evaluation: NewEvaluationHandler(svc.Evaluation),
		Submission: NewSubmissionHandler(svc.Submission),
		Export:     NewExportHandler(svc.Export),
	}
}
