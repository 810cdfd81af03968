package authz

import (
	"testing"

	"campus-core/backend/internal/model"
)

func TestCanPerform_Superadmin(t *testing.T) {
	admin := Identity{UserID: "admin-1", Role: model.RoleSuperadmin}

	// superadmin 对任意目标、任意动作均放行
	actions := []Action{ActionReadUser, ActionUpdateUser, ActionDeleteUser, ActionManageUser}
	for _, a := range actions {
		if !CanPerform(admin, a, "someone-else") {
			t.Errorf("superadmin 执行 %s 应放行", a)
		}
		if !CanPerform(admin, a, "") {
			t.Errorf("superadmin 执行 %s（无目标）应放行", a)
		}
	}
}

func TestCanPerform_RegularSelf(t *testing.T) {
	user := Identity{UserID: "user-1", Role: model.RoleRegular}

	if !CanPerform(user, ActionReadUser, "user-1") {
		t.Error("regular 查看自己应放行")
	}
	if !CanPerform(user, ActionUpdateUser, "user-1") {
		t.Error("regular 更新自己应放行")
	}
}

func TestCanPerform_RegularOther(t *testing.T) {
	user := Identity{UserID: "user-1", Role: model.RoleRegular}

	if CanPerform(user, ActionReadUser, "user-2") {
		t.Error("regular 查看他人应拒绝")
	}
	if CanPerform(user, ActionUpdateUser, "user-2") {
		t.Error("regular 更新他人应拒绝")
	}
	if CanPerform(user, ActionDeleteUser, "user-1") {
		t.Error("regular 删除（即使是自己）应拒绝")
	}
	if CanPerform(user, ActionManageUser, "user-1") {
		t.Error("regular 管理用户应拒绝")
	}
}

func TestCanPerform_EdgeCases(t *testing.T) {
	user := Identity{UserID: "user-1", Role: model.RoleRegular}

	// 目标为空时自查动作也拒绝
	if CanPerform(user, ActionReadUser, "") {
		t.Error("目标为空应拒绝")
	}

	// 未知角色一律拒绝
	unknown := Identity{UserID: "user-1", Role: "ghost"}
	if CanPerform(unknown, ActionReadUser, "user-1") {
		t.Error("未知角色应拒绝")
	}
}
