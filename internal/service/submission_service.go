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

// ── 提交模块业务错误 ──

var (
	ErrSubmissionNotFound  = errors.New("提交不存在")
	ErrDuplicateSubmission = errors.New("该评估已存在此学生的提交")
	ErrScoreOutOfRange     = errors.New("成绩超出允许范围")
)

// SubmissionService 提交业务接口
// 评分允许重复覆盖；删除幂等
type SubmissionService interface {
	Create(ctx context.Context, req *dto.CreateSubmissionRequest, studentID string) (*dto.SubmissionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SubmissionResponse, error)
	List(ctx context.Context) ([]dto.SubmissionResponse, error)
	Grade(ctx context.Context, id string, req *dto.GradeSubmissionRequest) (*dto.SubmissionResponse, error)
	Delete(ctx context.Context, id string) error
}

type submissionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubmissionService 创建 SubmissionService 实例
func NewSubmissionService(repo *repository.Repository, logger *zap.Logger) SubmissionService {
	return &submissionService{repo: repo, logger: logger}
}

// Create 创建提交
// 唯一性不做预检查，依赖复合唯一索引在并发下保证至多一条成功
func (s *submissionService) Create(ctx context.Context, req *dto.CreateSubmissionRequest, studentID string) (*dto.SubmissionResponse, error) {
	if _, err := s.repo.Evaluation.GetByID(ctx, req.EvaluationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		s.logger.Error("查询评估失败", zap.String("id", req.EvaluationID), zap.Error(err))
		return nil, err
	}

	sub := &model.Submission{
		EvaluationID: req.EvaluationID,
		StudentID:    studentID,
		FileURL:      req.FileURL,
		Comment:      req.Comment,
		SubmittedAt:  time.Now(),
	}

	if err := s.repo.Submission.Create(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSubmission
		}
		s.logger.Error("创建提交失败", zap.Error(err))
		return nil, err
	}

	// 重新加载以带出关联
	created, err := s.repo.Submission.GetByID(ctx, sub.SubmissionID)
	if err != nil {
		s.logger.Error("加载提交失败", zap.String("id", sub.SubmissionID), zap.Error(err))
		return nil, err
	}
	return toSubmissionResponse(created), nil
}

func (s *submissionService) GetByID(ctx context.Context, id string) (*dto.SubmissionResponse, error) {
	sub, err := s.repo.Submission.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		s.logger.Error("查询提交失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toSubmissionResponse(sub), nil
}

func (s *submissionService) List(ctx context.Context) ([]dto.SubmissionResponse, error) {
	subs, err := s.repo.Submission.List(ctx)
	if err != nil {
		s.logger.Error("列出提交失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SubmissionResponse, 0, len(subs))
	for i := range subs {
		result = append(result, *toSubmissionResponse(&subs[i]))
	}
	return result, nil
}

// Grade 评分
// 分数必须落在 [0, 5] 闭区间；已评分提交再次评分为覆盖；
// 未携带评语时保留原评语
func (s *submissionService) Grade(ctx context.Context, id string, req *dto.GradeSubmissionRequest) (*dto.SubmissionResponse, error) {
	if req.Score == nil || *req.Score < model.ScoreMin || *req.Score > model.ScoreMax {
		return nil, ErrScoreOutOfRange
	}

	sub, err := s.repo.Submission.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		s.logger.Error("查询提交失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	sub.Score = req.Score
	if req.Comment != nil {
		sub.Comment = *req.Comment
	}

	if err := s.repo.Submission.Update(ctx, sub); err != nil {
		s.logger.Error("评分更新失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toSubmissionResponse(sub), nil
}

// Delete 幂等删除：目标不存在时同样成功
func (s *submissionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Submission.Delete(ctx, id); err != nil {
		s.logger.Error("删除提交失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助函数 ──

func toSubmissionResponse(sub *model.Submission) *dto.SubmissionResponse {
	resp := &dto.SubmissionResponse{
		ID:          sub.SubmissionID,
		FileURL:     sub.FileURL,
		Comment:     sub.Comment,
		Score:       sub.Score,
		SubmittedAt: sub.SubmittedAt,
		CreatedAt:   sub.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   sub.UpdatedAt.Format(time.RFC3339),
	}
	if sub.Evaluation != nil {
		resp.Evaluation = &dto.EvaluationBrief{
			ID:    sub.Evaluation.EvaluationID,
			Title: sub.Evaluation.Title,
		}
	}
	if sub.Student != nil {
		resp.Student = &dto.UserBrief{
			ID:   sub.Student.UserID,
			Name: sub.Student.Name,
		}
	}
	return resp
}
