package config

import (
	"os"
	"path/filepath"
	"testing"
)

// 写一份不含 jwt_secret 的最小配置文件
func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: 9090\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写入测试配置失败: %v", err)
	}
	return path
}

// 纯环境变量部署：secret 只来自 CAMPUS_AUTH_JWT_SECRET
func TestLoad_JWTSecretFromEnv(t *testing.T) {
	const secret = "env-secret-for-config-test-2026"
	t.Setenv("CAMPUS_AUTH_JWT_SECRET", secret)

	cfg, err := Load(writeTestConfig(t))
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Auth.JWTSecret != secret {
		t.Errorf("期望 JWTSecret 来自环境变量，实际=%q", cfg.Auth.JWTSecret)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("期望 Port=9090，实际=%d", cfg.Server.Port)
	}
}

// secret 缺失必须启动失败，绝不回退到内置默认值
func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("CAMPUS_AUTH_JWT_SECRET", "")

	if _, err := Load(writeTestConfig(t)); err == nil {
		t.Fatal("缺少 jwt_secret 时 Load 应失败")
	}
}

// 过短的 secret 同样拒绝
func TestLoad_ShortJWTSecret(t *testing.T) {
	t.Setenv("CAMPUS_AUTH_JWT_SECRET", "short")

	if _, err := Load(writeTestConfig(t)); err == nil {
		t.Fatal("jwt_secret 过短时 Load 应失败")
	}
}

func TestValidate_Defaults(t *testing.T) {
	t.Setenv("CAMPUS_AUTH_JWT_SECRET", "another-valid-secret-value-2026")

	cfg, err := Load(writeTestConfig(t))
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Auth.TokenTTL.Hours() != 24 {
		t.Errorf("期望默认 TokenTTL=24h，实际=%v", cfg.Auth.TokenTTL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("期望默认日志级别 info，实际=%s", cfg.Log.Level)
	}
}
