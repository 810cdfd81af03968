package service

import (
	"context"
	"errors"
	"fmt"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-core/backend/internal/repository"
)

// ── 日历模块业务错误 ──

var (
	ErrCalendarNoDeadlines = errors.New("该课程暂无带截止时间的评估")
)

// CalendarService 日历业务接口
//
// 将课程下所有带截止时间的评估生成为 iCalendar (.ics) 订阅源，
// 供学生导入日历客户端跟踪截止时间
type CalendarService interface {
	// CourseCalendar 生成课程评估截止时间的 ICS 日历
	CourseCalendar(ctx context.Context, courseID string) ([]byte, string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

// CourseCalendar 生成课程日历
// 无截止时间的评估不进入日历；全部无截止时间时返回 ErrCalendarNoDeadlines
func (s *calendarService) CourseCalendar(ctx context.Context, courseID string) ([]byte, string, error) {
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Error(err))
		return nil, "", err
	}

	evals, err := s.repo.Evaluation.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("查询评估失败", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//campus-core//backend//ZH")
	cal.SetXWRCalName(fmt.Sprintf("%s (%s) 评估截止", course.Name, course.Code))

	count := 0
	for i := range evals {
		eval := &evals[i]
		if eval.DueDate == nil {
			continue
		}

		evt := cal.AddEvent(fmt.Sprintf("evaluation-%s@campus-core", eval.EvaluationID))
		evt.SetCreatedTime(eval.CreatedAt)
		evt.SetDtStampTime(eval.CreatedAt)
		evt.SetStartAt(*eval.DueDate)
		evt.SetEndAt(*eval.DueDate)
		evt.SetSummary(fmt.Sprintf("%s 截止", eval.Title))
		evt.SetDescription(fmt.Sprintf("课程 %s (%s) 评估「%s」截止", course.Name, course.Code, eval.Title))
		count++
	}

	if count == 0 {
		return nil, "", ErrCalendarNoDeadlines
	}

	filename := fmt.Sprintf("course_%s.ics", course.Code)
	return []byte(cal.Serialize()), filename, nil
}
