package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Amit162-cloud/healthcarewebapp/config"
	"github.com/Amit162-cloud/healthcarewebapp/routes"
	"github.com/Amit162-cloud/healthcarewebapp/services"
	"github.com/Amit162-cloud/healthcarewebapp/session"
	"github.com/Amit162-cloud/healthcarewebapp/state"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Initialize configuration; missing Supabase credentials abort startup
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize Supabase clients
	serviceClient := config.NewSupabaseClient(cfg)
	anonClient := config.NewAnonClient(cfg)

	// In-memory dashboard state, seeded once per process
	app := state.NewApp()

	// Live client sessions
	sessions := session.NewManager()

	// WhatsApp notices are optional; without a gateway they are skipped
	var notifier services.Notifier = services.NoopNotifier{}
	if cfg.WhatsAppAPIURL != "" {
		notifier = services.NewWhatsAppClient(cfg.WhatsAppAPIURL, cfg.WhatsAppAPIToken)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(config.CORSMiddleware(cfg))

	// Setup routes
	routes.SetupRoutes(router, serviceClient, anonClient, cfg, app, sessions, notifier)

	// Start server
	log.Printf("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
