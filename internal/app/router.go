package app

import (
	"bjj_academy_backend/docs"
	"bjj_academy_backend/internal/config"
	"bjj_academy_backend/internal/middleware"
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	// 1. 公共路由（游客可访问；带可选认证，登录用户得到个性化结果）
	a.registerPublicRoutes(router, c, repos)

	// 2. 登录用户路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerMemberRoutes(authGroup, c)
		a.registerCreatorRoutes(authGroup, c)
	}

	// 3. 管理员路由
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	public := router.Group("/api")
	public.Use(middleware.TryAuthMiddleware(a.Config), middleware.ActivityMiddleware(repos.user))
	{
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		public.GET("/courses", c.course.ListCourses)
		public.GET("/courses/:id", c.course.GetCourse)
		public.GET("/lessons/accessible", c.course.AccessibleLessons)
		public.GET("/lessons/:id/watch", c.course.WatchLesson)

		public.GET("/drills", c.drill.ListDrills)
		public.GET("/drills/daily-free", c.drill.DailyFree)
		public.GET("/drills/:id/watch", c.drill.WatchDrill)

		public.GET("/recommendations/drills", c.recommendation.RecommendedDrills)
		public.GET("/recommendations/lessons", c.recommendation.RecommendedLessons)

		public.GET("/feed", c.feed.RecentPosts)
		public.GET("/leaderboard", c.leaderboard.Top)
	}
}

func (a *App) registerMemberRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/users/me", c.user.GetProfile)
	group.PUT("/users/me", c.user.UpdateProfile)
	group.POST("/users/me/avatar", c.user.UploadAvatar)

	group.GET("/recommendations/preferences", c.recommendation.MyPreferences)

	group.POST("/interactions/toggle", c.interaction.Toggle)
	group.POST("/creators/:id/follow", c.interaction.FollowCreator)
	group.GET("/creators/following", c.interaction.Following)

	group.POST("/payments/purchase", c.payment.CapturePurchase)
	group.POST("/payments/subscription", c.payment.VerifySubscription)

	group.POST("/training/logs", c.training.LogSession)
	group.GET("/training/logs", c.training.ListLogs)
	group.DELETE("/training/logs/:id", c.training.DeleteLog)
	group.GET("/training/stats/weekly", c.training.WeeklyStats)
	group.POST("/training/sparring", c.training.AddSparringVideo)
	group.GET("/training/sparring", c.training.ListSparringVideos)
	group.GET("/leaderboard/me", c.leaderboard.MyScore)

	group.POST("/feed", c.feed.CreatePost)
	group.POST("/feed/:id/like", c.feed.ToggleLike)
}

func (a *App) registerCreatorRoutes(group *gin.RouterGroup, c *controllers) {
	creator := group.Group("/")
	creator.Use(middleware.RoleMiddleware(model.Creator))
	{
		creator.POST("/courses", c.course.CreateCourse)
		creator.POST("/courses/:id/lessons", c.course.AddLesson)
		creator.POST("/drills", c.drill.CreateDrill)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.PUT("/users/:id/disabled", c.user.SetDisabled)
		admin.PUT("/users/:id/role", c.user.SetRole)
		admin.POST("/drills/rotate-daily-free", c.drill.RotateDailyFree)
	}
}
