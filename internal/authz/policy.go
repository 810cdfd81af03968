package authz

import "campus-core/backend/internal/model"

// Identity 认证后的请求身份（由 JWT 中间件注入上下文）
type Identity struct {
	UserID string
	Role   string
}

// Action 授权动作
type Action string

const (
	ActionReadUser   Action = "user:read"
	ActionUpdateUser Action = "user:update"
	ActionDeleteUser Action = "user:delete"
	ActionManageUser Action = "user:manage"
)

// selfScoped 允许 regular 用户对自己执行的动作
var selfScoped = map[Action]bool{
	ActionReadUser:   true,
	ActionUpdateUser: true,
}

// CanPerform 授权决策（纯函数，无副作用）
// 规则按序求值，首条命中即返回：
//  1. superadmin 允许一切
//  2. regular 仅允许自查/自改（targetOwnerID 等于自身）
//  3. 其余一律拒绝
func CanPerform(id Identity, action Action, targetOwnerID string) bool {
	if id.Role == model.RoleSuperadmin {
		return true
	}
	if id.Role == model.RoleRegular && selfScoped[action] {
		return targetOwnerID != "" && id.UserID == targetOwnerID
	}
	return false
}
