package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dojanghq/dojang/internal/app/controllers"
	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.AuthController.Register)
		auth.POST("/login", ctrl.AuthController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	{
		authenticated.GET("/auth/profile", ctrl.AuthController.GetProfile)

		// Belt catalog, visible to every authenticated user
		authenticated.GET("/belts", ctrl.BeltController.ListBelts)

		// Student routes
		students := authenticated.Group("/students")
		{
			// Self-service routes
			students.GET("/me", ctrl.StudentController.GetMyProfile)
			students.PUT("/me/profile", ctrl.StudentController.UpdateMyProfile)
			students.POST("/me/photo", ctrl.StudentController.UploadMyPhoto)
			students.DELETE("/me/photo", ctrl.StudentController.DeleteMyPhoto)

			// Ownership is enforced in the service, a student sees only their own
			students.GET("/:id/payments", ctrl.PaymentController.GetStudentPayments)

			// Admin roster management
			studentsAdmin := students.Group("")
			studentsAdmin.Use(adminOnly)
			{
				studentsAdmin.GET("", ctrl.StudentController.Search)
				studentsAdmin.GET("/:id", ctrl.StudentController.GetByID)
				studentsAdmin.PUT("/:id", ctrl.StudentController.Update)
				studentsAdmin.DELETE("/:id", ctrl.StudentController.Deactivate)

				// Belt progression
				studentsAdmin.POST("/:id/promote", ctrl.BeltController.Promote)
				studentsAdmin.GET("/:id/belt-history", ctrl.BeltController.GetBeltHistory)

				// Federation licensing
				studentsAdmin.POST("/:id/federate", ctrl.FederationController.FederateStudent)
				studentsAdmin.GET("/:id/license-history", ctrl.FederationController.GetLicenseHistory)

				// Achievements and profile photo
				studentsAdmin.POST("/:id/achievements", ctrl.StudentController.AddAchievement)
				studentsAdmin.GET("/:id/achievements", ctrl.StudentController.GetAchievements)
				studentsAdmin.POST("/:id/photo", ctrl.StudentController.UploadPhoto)
				studentsAdmin.DELETE("/:id/photo", ctrl.StudentController.DeletePhoto)
			}
		}

		// Federation routes
		federations := authenticated.Group("/federations")
		{
			federations.GET("", ctrl.FederationController.List)
			federations.GET("/:id", ctrl.FederationController.GetByID)

			federationsAdmin := federations.Group("")
			federationsAdmin.Use(adminOnly)
			{
				federationsAdmin.GET("/:id/students", ctrl.FederationController.GetFederatedStudents)
			}
		}

		// Payment routes
		payments := authenticated.Group("/payments")
		{
			payments.GET("/my", ctrl.PaymentController.GetMyPayments)

			paymentsAdmin := payments.Group("")
			paymentsAdmin.Use(adminOnly)
			{
				paymentsAdmin.POST("", ctrl.PaymentController.Create)
				paymentsAdmin.PUT("/:id/pay", ctrl.PaymentController.MarkAsPaid)
				paymentsAdmin.DELETE("/:id", ctrl.PaymentController.Delete)
				paymentsAdmin.GET("/alerts", ctrl.PaymentController.GetAlerts)
				paymentsAdmin.GET("/report", ctrl.PaymentController.GetMonthlyReport)
			}
		}

		// Event routes
		events := authenticated.Group("/events")
		{
			events.GET("", ctrl.EventController.List)
			events.GET("/upcoming", ctrl.EventController.Upcoming)
			events.GET("/today", ctrl.EventController.Today)
			events.GET("/:id", ctrl.EventController.GetByID)

			eventsAdmin := events.Group("")
			eventsAdmin.Use(adminOnly)
			{
				eventsAdmin.POST("", ctrl.EventController.Create)
				eventsAdmin.PUT("/:id", ctrl.EventController.Update)
				eventsAdmin.DELETE("/:id", ctrl.EventController.Delete)
			}
		}

		// Dashboard routes
		dashboard := authenticated.Group("/dashboard")
		{
			// Ownership is enforced in the service, a student sees only their own
			dashboard.GET("/student/:id", ctrl.DashboardController.StudentDashboard)

			dashboardAdmin := dashboard.Group("")
			dashboardAdmin.Use(adminOnly)
			{
				dashboardAdmin.GET("/stats", ctrl.DashboardController.AdminStats)
				dashboardAdmin.GET("/martial-arts", ctrl.DashboardController.MartialArtsDistribution)
				dashboardAdmin.GET("/payments", ctrl.DashboardController.PaymentsStatus)
				dashboardAdmin.GET("/alerts", ctrl.DashboardController.ActiveAlerts)
				dashboardAdmin.GET("/recent-students", ctrl.DashboardController.RecentStudents)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse("ok", gin.H{"status": "ok"}))
	})

	// Swagger routes are set up in bootstrap.go already
}
