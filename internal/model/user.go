package model

// ── 角色枚举 ──

const (
	RoleSuperadmin = "superadmin"
	RoleRegular    = "regular"
)

// ValidRole 检查角色取值是否合法
func ValidRole(role string) bool {
	return role == RoleSuperadmin || role == RoleRegular
}

// User 用户表 — 对应 users
// IsActive=false 为软删除标记：对所有读取、更新与认证操作视同不存在
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'regular'"    json:"role"`
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }
