package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Sill-Liu/test-platform/internal/handlers"
	"github.com/Sill-Liu/test-platform/internal/middleware"
	"github.com/Sill-Liu/test-platform/internal/store"
	"github.com/Sill-Liu/test-platform/internal/types"
)

func NewRouter(s *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/:project_id", middleware.AuthMiddleware(s.Users), handlers.WebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.GET("/me", middleware.AuthMiddleware(s.Users), handlers.Me)
		}

		authed := api.Group("", middleware.AuthMiddleware(s.Users))
		{
			authed.GET("/preferences", handlers.GetPreferences)
			authed.POST("/preferences", handlers.UpdatePreferences)

			// Fixed mock-transport contract: canned payloads behind
			// simulated latency.
			authed.GET("/dashboard", handlers.GetDashboard)
			authed.GET("/projects", handlers.GetProjectOverviews)
			authed.GET("/requirements", handlers.ListRequirements)
			authed.GET("/requirements/:req_id", handlers.GetRequirement)

			// Store-backed project management.
			pm := authed.Group("/pm")
			{
				pm.GET("/projects", handlers.ListProjects)
				pm.POST("/projects", handlers.CreateProject)
				pm.PATCH("/projects/:project_id", handlers.UpdateProject)
				pm.DELETE("/projects/:project_id", handlers.DeleteProject)

				pm.GET("/projects/:project_id/iterations", handlers.ListIterations)
				pm.POST("/projects/:project_id/iterations", handlers.CreateIteration)
				pm.PATCH("/iterations/:iteration_id", handlers.UpdateIteration)
				pm.DELETE("/iterations/:iteration_id", handlers.DeleteIteration)

				pm.GET("/iterations/:iteration_id/demands", handlers.ListDemands)
				pm.POST("/iterations/:iteration_id/demands", handlers.CreateDemand)
				pm.PATCH("/demands/:demand_id", handlers.UpdateDemand)
				pm.DELETE("/demands/:demand_id", handlers.DeleteDemand)
			}

			authed.GET("/bugs", handlers.ListBugs)
			authed.POST("/bugs", handlers.CreateBug)
			authed.PATCH("/bugs/:bug_id/status", handlers.UpdateBugStatus)
			authed.DELETE("/bugs/:bug_id", handlers.DeleteBug)
			authed.GET("/bugs/:bug_id/comments", handlers.ListBugComments)
			authed.POST("/bugs/:bug_id/comments", handlers.CreateBugComment)

			authed.GET("/testcases", handlers.ListTestCases)
			authed.POST("/testcases", handlers.CreateTestCase)
			authed.DELETE("/testcases/:case_id", handlers.DeleteTestCase)
		}
	}

	return r
}
