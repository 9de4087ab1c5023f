package api

import (
	"alcyxob/runtrack/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Services groups the dependencies of the HTTP handlers.
type Services struct {
	Auth      service.AuthService
	Runs      service.RunService
	Dashboard service.DashboardService
	Exports   service.ExportService
}

func SetupRoutes(router *gin.Engine, jwtSecret string, services Services) {
	authHandler := NewAuthHandler(services.Auth)
	runHandler := NewRunHandler(services.Runs)
	dashboardHandler := NewDashboardHandler(services.Dashboard, services.Exports)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, ok := currentUserID(c)
			if !ok {
				return
			}
			user, err := services.Auth.GetUser(c.Request.Context(), userID)
			if err != nil {
				abortWithServiceError(c, err, "Failed to load user")
				return
			}
			c.JSON(http.StatusOK, MapUserToResponse(user))
		})

		runGroup := protected.Group("/runs")
		{
			runGroup.POST("", runHandler.CreateRun)
			runGroup.GET("", runHandler.ListRuns)
			runGroup.DELETE("/:runId", runHandler.DeleteRun)
		}

		goalGroup := protected.Group("/goals")
		{
			// POST upserts: 201 when the day had no goal, 200 when it was replaced
			goalGroup.POST("", runHandler.SetGoal)
			goalGroup.GET("", runHandler.ListGoals)
			goalGroup.DELETE("/:goalId", runHandler.DeleteGoal)
		}

		protected.GET("/dashboard", dashboardHandler.GetDashboard)
		protected.GET("/weeks", dashboardHandler.GetHistory)

		exportGroup := protected.Group("/exports")
		{
			exportGroup.POST("", dashboardHandler.CreateExport)
			exportGroup.GET("", dashboardHandler.ListExports)
		}
	}
}
