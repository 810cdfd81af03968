package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-core/backend/internal/authz"
	"campus-core/backend/internal/dto"
	"campus-core/backend/internal/service"
	"campus-core/backend/pkg/response"
)

// UserHandler 用户模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Create 创建用户（管理员）
// POST /api/usuarios
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.Created(c, user)
}

// Get 查询用户
// GET /api/usuarios/:id
// regular 只能查自己，superadmin 可查任何人
func (h *UserHandler) Get(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	caller := authz.Identity{UserID: callerID, Role: role}
	user, err := h.userSvc.GetByID(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// List 用户列表（管理员）
// GET /api/usuarios
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, users)
}

// Update 更新用户（管理员）
// PUT /api/usuarios/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// Delete 停用用户（管理员，软删除）
// DELETE /api/usuarios/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleUserError 用户模块错误码映射
func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12001, "用户不存在")
	case errors.Is(err, service.ErrEmailExists):
		response.BadRequest(c, 12002, "邮箱已被占用")
	case errors.Is(err, service.ErrNoPermission):
		response.Forbidden(c, 10003, "无权限访问")
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, 10001, "角色取值无效")
	default:
		response.InternalError(c)
	}
}
