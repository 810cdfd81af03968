package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-core/backend/internal/service"
	"campus-core/backend/pkg/response"
)

// EvaluationHandler 评估模块 HTTP 处理器
type EvaluationHandler struct {
	evalSvc service.EvaluationService
}

// NewEvaluationHandler 创建 EvaluationHandler
func NewEvaluationHandler(evalSvc service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evalSvc: evalSvc}
}

// Get 查询评估
// GET /api/evaluations/:id
func (h *EvaluationHandler) Get(c *gin.Context) {
	eval, err := h.evalSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleEvaluationError(c, err)
		return
	}

	response.OK(c, eval)
}

// Delete 删除评估（管理员）
// DELETE /api/evaluations/:id
func (h *EvaluationHandler) Delete(c *gin.Context) {
	if err := h.evalSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleEvaluationError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleEvaluationError 评估模块错误码映射
func (h *EvaluationHandler) handleEvaluationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEvaluationNotFound):
		response.NotFound(c, 14001, "评估不存在")
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 13001, "课程不存在")
	default:
		response.InternalError(c)
	}
}
