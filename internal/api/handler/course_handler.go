package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"campus-core/backend/internal/dto"
	"campus-core/backend/internal/service"
	"campus-core/backend/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
// 评估在课程下创建与列出，日历订阅也挂在课程路径下
type CourseHandler struct {
	courseSvc   service.CourseService
	evalSvc     service.EvaluationService
	calendarSvc service.CalendarService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(
	courseSvc service.CourseService,
	evalSvc service.EvaluationService,
	calendarSvc service.CalendarService,
) *CourseHandler {
	return &CourseHandler{
		courseSvc:   courseSvc,
		evalSvc:     evalSvc,
		calendarSvc: calendarSvc,
	}
}

// Create 创建课程
// POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.Created(c, course)
}

// Get 查询课程
// GET /api/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courseSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// List 课程列表
// GET /api/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, courses)
}

// Update 更新课程
// PUT /api/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// Delete 删除课程（管理员）
// DELETE /api/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courseSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, nil)
}

// CreateEvaluation 在课程下创建评估
// POST /api/courses/:id/evaluations
func (h *CourseHandler) CreateEvaluation(c *gin.Context) {
	var req dto.CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	eval, err := h.evalSvc.Create(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.Created(c, eval)
}

// ListEvaluations 列出课程下的评估
// GET /api/courses/:id/evaluations
func (h *CourseHandler) ListEvaluations(c *gin.Context) {
	evals, err := h.evalSvc.ListByCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, evals)
}

// Calendar 课程评估截止时间日历订阅
// GET /api/courses/:id/calendar.ics
func (h *CourseHandler) Calendar(c *gin.Context) {
	data, filename, err := h.calendarSvc.CourseCalendar(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			response.NotFound(c, 13001, "课程不存在")
		case errors.Is(err, service.ErrCalendarNoDeadlines):
			response.NotFound(c, 13002, "该课程暂无带截止时间的评估")
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

// handleCourseError 课程模块错误码映射
func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 13001, "课程不存在")
	case errors.Is(err, service.ErrCourseCodeExists):
		response.BadRequest(c, 13003, "课程编码已被占用")
	case errors.Is(err, service.ErrCourseDateOrder):
		response.BadRequest(c, 13004, "结束日期不能早于开始日期")
	case errors.Is(err, service.ErrTeacherNotFound):
		response.BadRequest(c, 13005, "授课教师不存在")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, 10001, "课程状态取值无效")
	default:
		response.InternalError(c)
	}
}
