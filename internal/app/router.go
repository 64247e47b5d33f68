package app

import (
	"fe_exam_backend/docs"
	"fe_exam_backend/internal/config"
	"fe_exam_backend/internal/middleware"
	"fe_exam_backend/internal/model"
	"fe_exam_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.GET("/users/stats", c.user.GetStats)

	// question browsing
	rg.GET("/questions", c.question.GetQuestions)
	rg.GET("/questions/genres", c.question.GetGenres)
	rg.GET("/questions/random", c.question.GetRandomSet)
	rg.GET("/questions/:id", c.question.GetQuestion)

	// single-question practice
	rg.POST("/practice/answers", c.practice.SubmitAnswer)
	rg.GET("/practice/history", c.practice.GetHistory)

	// timed mock exams
	rg.GET("/exams/banks", c.exam.GetBanks)
	rg.POST("/exams/start", c.exam.StartExam)
	rg.POST("/exams/:id/submit", c.exam.SubmitExam)
	rg.GET("/exams/results", c.exam.GetResults)

	// mastery map
	rg.GET("/achievements/map", c.achievement.GetCoverage)
	rg.GET("/achievements/questions", c.achievement.GetQuestionsByLevel)

	// leaderboard
	rg.GET("/ranking", c.ranking.GetLeaderboard)
	rg.GET("/ranking/me", c.ranking.GetMyRank)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.GetUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.PUT("/users/:id", c.user.UpdateUser)
		admin.DELETE("/users/:id", c.user.DeleteUser)
		admin.POST("/users/:id/reset-password", c.user.ResetPassword)

		admin.GET("/banks", c.bank.GetBanks)
		admin.POST("/banks", c.bank.UploadBank)
		admin.POST("/banks/seed", c.bank.SeedSamples)
	}
}
