package routes

import (
	"github.com/gin-gonic/gin"
	supa "github.com/supabase-community/supabase-go"

	"github.com/Amit162-cloud/healthcarewebapp/config"
	"github.com/Amit162-cloud/healthcarewebapp/handlers"
	"github.com/Amit162-cloud/healthcarewebapp/middleware"
	"github.com/Amit162-cloud/healthcarewebapp/services"
	"github.com/Amit162-cloud/healthcarewebapp/session"
	"github.com/Amit162-cloud/healthcarewebapp/state"
)

func SetupRoutes(router *gin.Engine, serviceClient *supa.Client, anonClient *supa.Client, cfg *config.Config, app *state.App, sessions *session.Manager, notifier services.Notifier) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(anonClient, cfg, sessions)
	appointmentHandler := handlers.NewAppointmentHandler(serviceClient, app, notifier)
	localAppointmentHandler := handlers.NewLocalAppointmentHandler(app)
	patientHandler := handlers.NewPatientHandler(app)
	doctorHandler := handlers.NewDoctorHandler(app)
	resourceHandler := handlers.NewResourceHandler(app)
	requestHandler := handlers.NewRequestHandler(app)
	notificationHandler := handlers.NewNotificationHandler(app)
	auditHandler := handlers.NewAuditHandler(app)
	crisisHandler := handlers.NewCrisisHandler(app)
	dashboardHandler := handlers.NewDashboardHandler(serviceClient, app)

	adminChecker := services.NewSupabaseAdminChecker(serviceClient)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg, sessions))
		{
			// Session
			protected.GET("/auth/me", authHandler.GetMe)
			protected.PUT("/auth/me", authHandler.UpdateProfile)
			protected.POST("/auth/logout", authHandler.Logout)

			// Durable appointments (Supabase)
			appointments := protected.Group("/appointments")
			{
				appointments.GET("", appointmentHandler.GetAppointments)
				appointments.POST("", appointmentHandler.CreateAppointment)
				appointments.PUT("/:id", appointmentHandler.UpdateAppointment)
				appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)
			}

			// In-memory collections
			protected.GET("/local-appointments", localAppointmentHandler.GetLocalAppointments)
			protected.PUT("/local-appointments", localAppointmentHandler.ReplaceLocalAppointments)

			protected.GET("/patients", patientHandler.GetPatients)
			protected.PUT("/patients", patientHandler.ReplacePatients)

			protected.GET("/doctors", doctorHandler.GetDoctors)
			protected.PUT("/doctors", doctorHandler.ReplaceDoctors)

			protected.GET("/resources", resourceHandler.GetResources)
			protected.PUT("/resources", resourceHandler.ReplaceResources)
			protected.POST("/resources/load-mock", resourceHandler.LoadMockResources)

			protected.GET("/service-requests", requestHandler.GetServiceRequests)
			protected.PUT("/service-requests", requestHandler.ReplaceServiceRequests)

			protected.GET("/emergency-cases", requestHandler.GetEmergencyCases)
			protected.PUT("/emergency-cases", requestHandler.ReplaceEmergencyCases)

			notifications := protected.Group("/notifications")
			{
				notifications.GET("", notificationHandler.GetNotifications)
				notifications.PUT("", notificationHandler.ReplaceNotifications)
				notifications.GET("/unread-count", notificationHandler.UnreadCount)
				notifications.POST("/:id/read", notificationHandler.MarkRead)
			}

			protected.GET("/audit-logs", auditHandler.GetAuditLogs)

			protected.GET("/crisis-mode", crisisHandler.GetCrisisMode)
			protected.PUT("/crisis-mode", crisisHandler.SetCrisisMode)

			// Admin routes (admins table row required, fail-closed)
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin(adminChecker))
			{
				admin.GET("/dashboard", dashboardHandler.GetDashboard)
			}
		}
	}
}
