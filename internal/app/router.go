package app

import (
	"barprep_backend/internal/config"
	"barprep_backend/internal/middleware"
	"barprep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)

		// Sessions
		api.POST("/test-sessions", c.session.Create)
		api.GET("/test-sessions/:id", c.session.Get)
		api.PATCH("/test-sessions/:id", c.session.Update)
		api.GET("/test-sessions/:id/responses", c.session.ListResponses)

		// Questions
		api.POST("/generate-question", c.question.Generate)
		api.POST("/question-responses", c.question.Submit)
		api.POST("/question-responses/batch", c.question.SubmitBatch)

		// Diagnostics
		api.POST("/diagnostic-tests", c.diagnostic.Create)

		// Per-user views
		api.GET("/users/:id/analytics", c.analytics.GetUserAnalytics)
		api.GET("/users/:id/chat-history", c.chat.History)
		api.GET("/users/:id/recommendations", c.recommendation.List)

		// Chat
		api.POST("/chat", c.chat.Chat)

		// Recommendations
		api.PATCH("/recommendations/:id/complete", c.recommendation.Complete)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.Profile)
	}
}
