package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-core/backend/internal/model"
)

// SubmissionRepository 提交数据访问接口
// (evaluation_id, student_id) 唯一性由复合唯一索引保证：
// 并发 Create 同一组合时至多一条成功，其余返回 gorm.ErrDuplicatedKey，
// 应用层不做存在性预检查
type SubmissionRepository interface {
	Create(ctx context.Context, sub *model.Submission) error
	GetByID(ctx context.Context, id string) (*model.Submission, error)
	List(ctx context.Context) ([]model.Submission, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.Submission, error)
	Update(ctx context.Context, sub *model.Submission) error
	Delete(ctx context.Context, id string) error
}

// submissionRepo SubmissionRepository 的 GORM 实现
type submissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo 创建 SubmissionRepository 实例
func NewSubmissionRepo(db *gorm.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Create(ctx context.Context, sub *model.Submission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *submissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	var sub model.Submission
	err := r.db.WithContext(ctx).
		Preload("Evaluation").
		Preload("Student").
		Where("submission_id = ?", id).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepo) List(ctx context.Context) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.db.WithContext(ctx).
		Preload("Evaluation").
		Preload("Student").
		Order("submitted_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// ListByCourse 按课程列出提交（成绩导出使用）
func (r *submissionRepo) ListByCourse(ctx context.Context, courseID string) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.db.WithContext(ctx).
		Preload("Evaluation").
		Preload("Student").
		Joins("JOIN evaluations ON evaluations.evaluation_id = submissions.evaluation_id").
		Where("evaluations.course_id = ?", courseID).
		Order("submissions.submitted_at ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *submissionRepo) Update(ctx context.Context, sub *model.Submission) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

// Delete 幂等删除：记录不存在时不报错
func (r *submissionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("submission_id = ?", id).
		Delete(&model.Submission{}).Error
}
