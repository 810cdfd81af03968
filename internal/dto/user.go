package dto

// ── 用户模块 DTO ──

// CreateUserRequest 创建用户请求
// 密码只在创建时以明文进入，哈希后持久化，响应中不回传
type CreateUserRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role"     binding:"omitempty,oneof=superadmin regular"`
}

// UpdateUserRequest 更新用户信息请求
type UpdateUserRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email"     binding:"omitempty,email"`
	Role     *string `json:"role"      binding:"omitempty,oneof=superadmin regular"`
	IsActive *bool   `json:"is_active"`
}

// UserResponse 用户信息响应（脱敏，不含密码哈希）
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
