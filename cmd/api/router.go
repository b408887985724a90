package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "pracsphere-backend/internal/auth/delivery"
	authUsecase "pracsphere-backend/internal/auth/usecase"
	taskDelivery "pracsphere-backend/internal/task/delivery"
)

// SetupRoutes mounts the API surface on the given engine.
func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *authDelivery.AuthHandler, taskHandler *taskDelivery.TaskHandler) {
	requireSession := authDelivery.AuthMiddleware(authUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/signup", authHandler.Signup)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireSession, authHandler.Me)
		}

		// Profile (protected)
		api.PUT("/user", requireSession, authHandler.UpdateProfile)

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(requireSession)
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/status", taskHandler.ToggleTaskStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Dashboard aggregation (protected)
		api.GET("/dashboard", requireSession, taskHandler.GetDashboard)
	}
}
