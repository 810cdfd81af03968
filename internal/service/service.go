package service

import (
	"go.uber.org/zap"

	"campus-core/backend/config"
	"campus-core/backend/internal/repository"
	"campus-core/backend/pkg/jwt"
	"campus-core/backend/pkg/password"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	User       UserService
	Course     CourseService
	Evaluation EvaluationService
	Submission SubmissionService
	Export     ExportService
	Calendar   CalendarService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	hasher *password.Hasher,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, hasher, logger),
		User:       NewUserService(repo, hasher, logger),
		Course:     NewCourseService(repo, logger),
		Evaluation: NewEvaluationService(repo, logger),
		Submission: NewSubmissionService(repo, logger),
		Export:     NewExportService(repo, logger),
		Calendar:   NewCalendarService(repo, logger),
	}
}
