package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/himtourism/homestay-portal/internal/config"
	"github.com/himtourism/homestay-portal/internal/handlers"
	"github.com/himtourism/homestay-portal/internal/middleware"
	"github.com/himtourism/homestay-portal/internal/models"
)

// HandlerDependencies collects the handlers wired in by main
type HandlerDependencies struct {
	AuthHandler        *handlers.AuthHandler
	ApplicationHandler *handlers.ApplicationHandler
	ReviewHandler      *handlers.ReviewHandler
	SettingsHandler    *handlers.SettingsHandler
	DirectoryHandler   *handlers.DirectoryHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}

		directory := public.Group("/directory")
		{
			directory.GET("", deps.DirectoryHandler.Search)
			directory.GET("/count", deps.DirectoryHandler.Count)
			directory.GET("/registration", deps.DirectoryHandler.GetByRegistrationNo)
		}

		// The policy tables are public so the form can render bands and fees.
		public.GET("/settings", deps.SettingsHandler.GetSettings)
	}

	// Applicant routes
	applicant := router.Group("/api/v1")
	applicant.Use(middleware.JWTAuthMiddleware(cfg))
	{
		applications := applicant.Group("/applications")
		{
			applications.POST("", deps.ApplicationHandler.CreateDraft)
			applications.GET("", deps.ApplicationHandler.List)
			applications.GET("/:id", deps.ApplicationHandler.Get)
			applications.PUT("/:id", deps.ApplicationHandler.UpdateDraft)

			applications.POST("/:id/rooms", deps.ApplicationHandler.AddRoom)
			applications.POST("/:id/rooms/reset", deps.ApplicationHandler.ResetRooms)
			applications.PUT("/:id/rooms/:rowId", deps.ApplicationHandler.UpdateRoom)
			applications.DELETE("/:id/rooms/:rowId", deps.ApplicationHandler.RemoveRoom)

			applications.POST("/:id/documents", deps.ApplicationHandler.AddDocument)
			applications.DELETE("/:id/documents", deps.ApplicationHandler.RemoveDocument)

			applications.GET("/:id/fee", deps.ApplicationHandler.QuoteFee)
			applications.GET("/:id/category-check", deps.ApplicationHandler.ValidateCategory)
			applications.GET("/:id/steps/:step", deps.ApplicationHandler.StepStatus)
			applications.POST("/:id/advance", deps.ApplicationHandler.AdvanceStep)
			applications.POST("/:id/goto", deps.ApplicationHandler.GoToStep)
			applications.POST("/:id/submit", deps.ApplicationHandler.Submit)
		}
	}

	// Officer routes
	officer := router.Group("/api/v1/review")
	officer.Use(middleware.JWTAuthMiddleware(cfg))
	officer.Use(middleware.RequireRole(models.RoleOfficer, models.RoleAdmin))
	{
		officer.GET("/applications", deps.ReviewHandler.ListByStatus)
		officer.GET("/applications/:id", deps.ReviewHandler.Get)
		officer.POST("/applications/:id/claim", deps.ReviewHandler.StartReview)
		officer.POST("/applications/:id/approve", deps.ReviewHandler.Approve)
		officer.POST("/applications/:id/reject", deps.ReviewHandler.Reject)
		officer.POST("/applications/:id/request-correction", deps.ReviewHandler.RequestCorrection)
	}

	// Admin routes
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg))
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.PUT("/settings", deps.SettingsHandler.UpdateSettings)
		admin.PUT("/settings/category-lock", deps.SettingsHandler.UpdateCategoryLock)
		admin.POST("/staff", deps.AuthHandler.CreateStaff)
	}

	return router
}
