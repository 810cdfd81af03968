package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-core/backend/config"
	"campus-core/backend/pkg/jwt"
)

func setupAuthRouter(jwtMgr *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(jwtMgr, zap.NewNop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})
	r.GET("/admin", JWTAuth(jwtMgr, zap.NewNop()), RoleAuth("superadmin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func testJWTManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  time.Hour,
	})
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── JWTAuth 测试 ──

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtMgr := testJWTManager()
	r := setupAuthRouter(jwtMgr)

	token, err := jwtMgr.Generate("user-1", "regular")
	if err != nil {
		t.Fatal(err)
	}

	w := doRequest(r, "/protected", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际=%d", w.Code)
	}
}

// 头缺失、scheme 错误、token 为空均在进入 Handler 前返回 401
func TestJWTAuth_RejectsBadHeaders(t *testing.T) {
	jwtMgr := testJWTManager()
	r := setupAuthRouter(jwtMgr)

	token, _ := jwtMgr.Generate("user-1", "regular")

	cases := []struct {
		name   string
		header string
	}{
		{"缺少认证头", ""},
		{"scheme 不是 Bearer", "Basic " + token},
		{"小写 bearer", "bearer " + token},
		{"token 为空", "Bearer "},
		{"裸 token 无 scheme", token},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := doRequest(r, "/protected", c.header)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("期望 401，实际=%d", w.Code)
			}
		})
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expiredMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  time.Millisecond,
	})
	r := setupAuthRouter(testJWTManager())

	token, _ := expiredMgr.Generate("user-1", "regular")
	time.Sleep(5 * time.Millisecond)

	w := doRequest(r, "/protected", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("过期 token 期望 401，实际=%d", w.Code)
	}
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	otherMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret: "another-secret-entirely-different",
		TokenTTL:  time.Hour,
	})
	r := setupAuthRouter(testJWTManager())

	token, _ := otherMgr.Generate("user-1", "regular")

	w := doRequest(r, "/protected", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("签名不符的 token 期望 401，实际=%d", w.Code)
	}
}

// ── RoleAuth 测试 ──

func TestRoleAuth_SuperadminAllowed(t *testing.T) {
	jwtMgr := testJWTManager()
	r := setupAuthRouter(jwtMgr)

	token, _ := jwtMgr.Generate("admin-1", "superadmin")

	w := doRequest(r, "/admin", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("superadmin 期望 200，实际=%d", w.Code)
	}
}

// 已认证但角色不符是 403，与未认证的 401 区分
func TestRoleAuth_RegularForbidden(t *testing.T) {
	jwtMgr := testJWTManager()
	r := setupAuthRouter(jwtMgr)

	token, _ := jwtMgr.Generate("user-1", "regular")

	w := doRequest(r, "/admin", "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Errorf("regular 期望 403，实际=%d", w.Code)
	}
}
