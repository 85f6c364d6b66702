package app

import (
	"web3_journey_backend/docs"
	"web3_journey_backend/internal/config"
	"web3_journey_backend/internal/middleware"
	"web3_journey_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Check)

	api := router.Group("/api/v1")

	// 公共路由：注册登录、课程目录
	{
		api.POST("/auth/register", c.auth.Register)
		api.POST("/auth/login", c.auth.Login)

		content := api.Group("/content")
		{
			content.GET("/modules", c.content.ListModules)
			content.GET("/modules/:moduleId", c.content.GetModule)
			content.GET("/projects", c.content.ListProjects)
			content.GET("/projects/:projectId", c.content.GetProject)
			content.GET("/achievements", c.content.ListAchievements)
		}
	}

	// 游客路由：本地进度，按设备号隔离，无需登录
	guest := api.Group("/guest/progress")
	{
		guest.GET("", c.guest.Get)
		guest.DELETE("", c.guest.Reset)
		guest.PUT("/modules/:moduleId", c.guest.SetModuleStatus)
		guest.POST("/modules/:moduleId/topics/:topicId", c.guest.CompleteTopic)
		guest.PUT("/projects/:projectId", c.guest.SetProjectStatus)
		guest.POST("/records", c.guest.AddRecord)
		guest.PUT("/skills", c.guest.UpdateSkill)
		guest.POST("/achievements", c.guest.UnlockAchievement)
	}

	// 授权路由
	authorized := api.Group("")
	authorized.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authorized.GET("/auth/me", c.auth.Me)
		authorized.PUT("/auth/profile", c.auth.UpdateProfile)
		authorized.POST("/auth/wallet", c.auth.BindWallet)

		progress := authorized.Group("/progress")
		{
			progress.GET("", c.progress.List)
			progress.GET("/summary", c.progress.Summary)
			progress.GET("/watch", c.progress.Watch)
			progress.PUT("/modules/:moduleId/topics/:topicId", c.progress.SetTopicStatus)
			progress.PUT("/projects/:projectId", c.progress.SetProjectStatus)
		}

		stats := authorized.Group("/stats")
		{
			stats.GET("", c.stats.Get)
			stats.POST("/activity", c.stats.RecordActivity)
			stats.GET("/achievements", c.stats.Achievements)
		}

		ai := authorized.Group("/ai")
		{
			ai.POST("/chat", c.ai.Chat)
			ai.POST("/review", c.ai.Review)
		}

		certificates := authorized.Group("/certificates")
		{
			certificates.GET("", c.certificate.List)
			certificates.POST("/mint", c.certificate.Mint)
			certificates.GET("/balance", c.certificate.Balance)
		}

		notes := authorized.Group("/notes")
		{
			notes.POST("", c.note.Create)
			notes.GET("", c.note.List)
			notes.GET("/:id", c.note.Get)
			notes.PUT("/:id", c.note.Update)
			notes.DELETE("/:id", c.note.Delete)
		}

		authorized.GET("/report", c.report.Download)
	}
}
