package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-core/backend/config"
	"campus-core/backend/internal/api/handler"
	"campus-core/backend/internal/api/middleware"
	"campus-core/backend/internal/model"
	"campus-core/backend/pkg/jwt"
	"campus-core/backend/pkg/redis"
)

// 登录接口限流参数：每 IP 每分钟最多 10 次
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	{
		// 认证模块（无需认证）
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
		}

		// 需要认证的路由
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, logger))
		{
			authorized.GET("/auth/profile", h.Auth.Profile)

			// 用户模块（管理接口仅 superadmin，单查自助鉴权在 Service 层）
			users := authorized.Group("/usuarios")
			{
				users.POST("", middleware.RoleAuth(model.RoleSuperadmin), h.User.Create)
				users.GET("", middleware.RoleAuth(model.RoleSuperadmin), h.User.List)
				users.GET("/:id", h.User.Get)
				users.PUT("/:id", middleware.RoleAuth(model.RoleSuperadmin), h.User.Update)
				users.DELETE("/:id", middleware.RoleAuth(model.RoleSuperadmin), h.User.Delete)
			}

			// 课程模块
			courses := authorized.Group("/courses")
			{
				courses.POST("", h.Course.Create)
				courses.GET("", h.Course.List)
				courses.GET("/:id", h.Course.Get)
				courses.PUT("/:id", h.Course.Update)
				courses.DELETE("/:id", middleware.RoleAuth(model.RoleSuperadmin), h.Course.Delete)
				courses.GET("/:id/calendar.ics", h.Course.Calendar)
				courses.POST("/:id/evaluations", h.Course.CreateEvaluation)
				courses.GET("/:id/evaluations", h.Course.ListEvaluations)
			}

			// 评估模块
			evaluations := authorized.Group("/evaluations")
			{
				evaluations.GET("/:id", h.Evaluation.Get)
				evaluations.DELETE("/:id", middleware.RoleAuth(model.RoleSuperadmin), h.Evaluation.Delete)
			}

			// 提交模块
			submissions := authorized.Group("/submissions")
			{
				submissions.POST("", h.Submission.Create)
				submissions.GET("", h.Submission.List)
				submissions.GET("/:id", h.Submission.Get)
				submissions.PUT("/:id/grade", h.Submission.Grade)
				submissions.DELETE("/:id", h.Submission.Delete)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/grades", middleware.RoleAuth(model.RoleSuperadmin), h.Export.ExportGrades)
			}
		}
	}

	return r
}
