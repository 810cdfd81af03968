package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-core/backend/internal/dto"
	"campus-core/backend/internal/service"
	"campus-core/backend/pkg/response"
)

// SubmissionHandler 提交模块 HTTP 处理器
type SubmissionHandler struct {
	subSvc service.SubmissionService
}

// NewSubmissionHandler 创建 SubmissionHandler
func NewSubmissionHandler(subSvc service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{subSvc: subSvc}
}

// Create 创建提交
// POST /api/submissions
// 提交人取认证身份，不信任请求体里的学生 ID
func (h *SubmissionHandler) Create(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	sub, err := h.subSvc.Create(c.Request.Context(), &req, studentID)
	if err != nil {
		h.handleSubmissionError(c, err)
		return
	}

	response.Created(c, sub)
}

// Get 查询提交
// GET /api/submissions/:id
func (h *SubmissionHandler) Get(c *gin.Context) {
	sub, err := h.subSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleSubmissionError(c, err)
		return
	}

	response.OK(c, sub)
}

// List 提交列表
// GET /api/submissions
func (h *SubmissionHandler) List(c *gin.Context) {
	subs, err := h.subSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, subs)
}

// Grade 评分
// PUT /api/submissions/:id/grade
func (h *SubmissionHandler) Grade(c *gin.Context) {
	var req dto.GradeSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	sub, err := h.subSvc.Grade(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleSubmissionError(c, err)
		return
	}

	response.OK(c, sub)
}

// Delete 删除提交（幂等）
// DELETE /api/submissions/:id
func (h *SubmissionHandler) Delete(c *gin.Context) {
	if err := h.subSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleSubmissionError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleSubmissionError 提交模块错误码映射
func (h *SubmissionHandler) handleSubmissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSubmissionNotFound):
		response.NotFound(c, 15001, "提交不存在")
	case errors.Is(err, service.ErrDuplicateSubmission):
		response.BadRequest(c, 15002, "该评估已存在此学生的提交")
	case errors.Is(err, service.ErrScoreOutOfRange):
		response.BadRequest(c, 15003, "成绩必须在 0 到 5 之间")
	case errors.Is(err, service.ErrEvaluationNotFound):
		response.NotFound(c, 14001, "评估不存在")
	default:
		response.InternalError(c)
	}
}
