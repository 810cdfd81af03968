package database

import (
	"io/fs"
	"strings"
	"testing"
)

// 每个迁移版本必须同时提供 up 与 down 脚本，缺一会导致回滚失败
func TestMigrationScriptsPaired(t *testing.T) {
	names, err := fs.Glob(schemaFS, "migrations/*.sql")
	if err != nil {
		t.Fatalf("读取内嵌迁移脚本失败: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("未嵌入任何迁移脚本")
	}

	ups := make(map[string]bool)
	downs := make(map[string]bool)
	for _, name := range names {
		base := strings.TrimPrefix(name, "migrations/")
		switch {
		case strings.HasSuffix(base, ".up.sql"):
			ups[strings.TrimSuffix(base, ".up.sql")] = true
		case strings.HasSuffix(base, ".down.sql"):
			downs[strings.TrimSuffix(base, ".down.sql")] = true
		default:
			t.Errorf("迁移脚本命名不符合 up/down 约定: %s", base)
		}
	}

	for v := range ups {
		if !downs[v] {
			t.Errorf("迁移 %s 缺少 down 脚本", v)
		}
	}
	for v := range downs {
		if !ups[v] {
			t.Errorf("迁移 %s 缺少 up 脚本", v)
		}
	}
}

// 初始结构脚本不得为空
func TestMigrationScriptsNotEmpty(t *testing.T) {
	names, err := fs.Glob(schemaFS, "migrations/*.sql")
	if err != nil {
		t.Fatalf("读取内嵌迁移脚本失败: %v", err)
	}
	for _, name := range names {
		data, err := fs.ReadFile(schemaFS, name)
		if err != nil {
			t.Fatalf("读取 %s 失败: %v", name, err)
		}
		if len(strings.TrimSpace(string(data))) == 0 {
			t.Errorf("迁移脚本 %s 内容为空", name)
		}
	}
}
