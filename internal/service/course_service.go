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

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound   = errors.New("课程不存在")
	ErrCourseCodeExists = errors.New("课程编码已存在")
	ErrCourseDateOrder  = errors.New("结束日期必须不早于开始日期")
	ErrTeacherNotFound  = errors.New("授课教师不存在")
	ErrInvalidStatus    = errors.New("课程状态取值无效")
)

// CourseService 课程业务接口
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CourseResponse, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id string) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrCourseDateOrder
	}

	// 校验授课教师存在且未停用
	teacher, err := s.repo.User.GetByID(ctx, req.TeacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("查询教师失败", zap.Error(err))
		return nil, err
	}
	if !teacher.IsActive {
		return nil, ErrTeacherNotFound
	}

	status := req.Status
	if status == "" {
		status = model.CourseStatusActive
	}
	if !model.ValidCourseStatus(status) {
		return nil, ErrInvalidStatus
	}

	course := &model.Course{
		Name:        req.Name,
		Description: req.Description,
		Code:        req.Code,
		TeacherID:   req.TeacherID,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCourseCodeExists
		}
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	course.Teacher = teacher
	return s.toCourseResponse(course), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *courseService) GetByID(ctx context.Context, id string) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toCourseResponse(course), nil
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *s.toCourseResponse(&courses[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *courseService) Update(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 应用更新字段（仅更新非 nil 字段）
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Code != nil {
		course.Code = *req.Code
	}
	if req.TeacherID != nil {
		teacher, err := s.repo.User.GetByID(ctx, *req.TeacherID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTeacherNotFound
			}
			return nil, err
		}
		if !teacher.IsActive {
			return nil, ErrTeacherNotFound
		}
		course.TeacherID = *req.TeacherID
		course.Teacher = teacher
	}
	if req.Status != nil {
		if !model.ValidCourseStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		course.Status = *req.Status
	}
	if req.StartDate != nil {
		course.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		course.EndDate = *req.EndDate
	}

	if course.EndDate.Before(course.StartDate) {
		return nil, ErrCourseDateOrder
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCourseCodeExists
		}
		s.logger.Error("更新课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toCourseResponse(course), nil
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Course.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Course.Delete(ctx, id); err != nil {
		s.logger.Error("删除课程失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *courseService) toCourseResponse(c *model.Course) *dto.CourseResponse {
	var teacher *dto.UserBrief
	if c.Teacher != nil {
		teacher = &dto.UserBrief{ID: c.Teacher.UserID, Name: c.Teacher.Name}
	}
	return &dto.CourseResponse{
		ID:          c.CourseID,
		Name:        c.Name,
		Description: c.Description,
		Code:        c.Code,
		Teacher:     teacher,
		Status:      c.Status,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}
