package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-core/backend/internal/model"
)

// EvaluationRepository 评估数据访问接口
type EvaluationRepository interface {
	Create(ctx context.Context, eval *model.Evaluation) error
	GetByID(ctx context.Context, id string) (*model.Evaluation, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.Evaluation, error)
	Delete(ctx context.Context, id string) error
}

// evaluationRepo EvaluationRepository 的 GORM 实现
type evaluationRepo struct {
	db *gorm.DB
}

// NewEvaluationRepo 创建 EvaluationRepository 实例
func NewEvaluationRepo(db *gorm.DB) EvaluationRepository {
	return &evaluationRepo{db: db}
}

func (r *evaluationRepo) Create(ctx context.Context, eval *model.Evaluation) error {
	return r.db.WithContext(ctx).Create(eval).Error
}

func (r *evaluationRepo) GetByID(ctx context.Context, id string) (*model.Evaluation, error) {
	var eval model.Evaluation
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("evaluation_id = ?", id).
		First(&eval).Error
	if err != nil {
		return nil, err
	}
	return &eval, nil
}

func (r *evaluationRepo) ListByCourse(ctx context.Context, courseID string) ([]model.Evaluation, error) {
	var evals []model.Evaluation
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("due_date ASC NULLS LAST, created_at ASC").
		Find(&evals).Error
	if err != nil {
		return nil, err
	}
	return evals, nil
}

func (r *evaluationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("evaluation_id = ?", id).
		Delete(&model.Evaluation{}).Error
}
