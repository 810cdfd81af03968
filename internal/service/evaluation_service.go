package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-core/backend/internal/dto"
	"campus-core/backend/internal/model"
	"campus-core/backend/internal/repository"
)

// ── 评估模块业务错误 ──

var (
	ErrEvaluationNotFound = errors.New("评估不存在")
)

// EvaluationService 评估业务接口
type EvaluationService interface {
	Create(ctx context.Context, courseID string, req *dto.CreateEvaluationRequest) (*dto.EvaluationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EvaluationResponse, error)
	ListByCourse(ctx context.Context, courseID string) ([]dto.EvaluationResponse, error)
	Delete(ctx context.Context, id string) error
}

type evaluationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEvaluationService 创建 EvaluationService 实例
func NewEvaluationService(repo *repository.Repository, logger *zap.Logger) EvaluationService {
	return &evaluationService{repo: repo, logger: logger}
}

func (s *evaluationService) Create(ctx context.Context, courseID string, req *dto.CreateEvaluationRequest) (*dto.EvaluationResponse, error) {
	// 校验课程存在
	if _, err := s.repo.Course.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", courseID), zap.Error(err))
		return nil, err
	}

	eval := &model.Evaluation{
		CourseID: courseID,
		Title:    req.Title,
		DueDate:  req.DueDate,
	}

	if err := s.repo.Evaluation.Create(ctx, eval); err != nil {
		s.logger.Error("创建评估失败", zap.Error(err))
		return nil, err
	}

	return s.toEvaluationResponse(eval), nil
}

func (s *evaluationService) GetByID(ctx context.Context, id string) (*dto.EvaluationResponse, error) {
	eval, err := s.repo.Evaluation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		s.logger.Error("查询评估失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toEvaluationResponse(eval), nil
}

func (s *evaluationService) ListByCourse(ctx context.Context, courseID string) ([]dto.EvaluationResponse, error) {
	if _, err := s.repo.Course.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	evals, err := s.repo.Evaluation.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("列出评估失败", zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.EvaluationResponse, 0, len(evals))
	for i := range evals {
		result = append(result, *s.toEvaluationResponse(&evals[i]))
	}
	return result, nil
}

func (s *evaluationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Evaluation.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEvaluationNotFound
		}
		s.logger.Error("查询评估失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Evaluation.Delete(ctx, id); err != nil {
		s.logger.Error("删除评估失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *evaluationService) toEvaluationResponse(e *model.Evaluation) *dto.EvaluationResponse {
	return &dto.EvaluationResponse{
		ID:        e.EvaluationID,
		CourseID:  e.CourseID,
		Title:     e.Title,
		DueDate:   e.DueDate,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
