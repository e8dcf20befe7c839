package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"cardiowell/database"
	"cardiowell/internal/cache"
	"cardiowell/internal/controllers"
	"cardiowell/internal/gemini"
	"cardiowell/internal/middleware"
	"cardiowell/internal/repository"
	"cardiowell/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	patientRepo := repository.NewPatientRepository(database.DB)
	reportRepo := repository.NewReportRepository(database.DB)

	// Redis is an optimization for latest-report reads; the app runs without it.
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, running without report cache: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	geminiClient, err := gemini.NewClient()
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}

	patientController := controllers.NewPatientController(patientRepo)
	assessmentController := controllers.NewAssessmentController(reportRepo, patientRepo, redisClient)
	aiController := controllers.NewAIController(geminiClient)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	router.GET("/", func(c *gin.Context) {
		response := gin.H{
			"message":    "CardioWell API is running",
			"version":    "1.0.0",
			"status":     "healthy",
			"ai_service": "Gemini (chat search + PDF analysis)",
		}
		if redisClient != nil {
			response["report_cache"] = "Redis"
		} else {
			response["report_cache"] = "disabled"
		}
		c.JSON(200, response)
	})

	routes.RegisterPatientRoutes(router, patientController)
	routes.RegisterAssessmentRoutes(router, assessmentController)
	routes.RegisterAIRoutes(router, aiController)

	// Debug endpoints
	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	router.GET("/debug/cache", func(c *gin.Context) {
		if redisClient == nil {
			c.JSON(200, gin.H{"cache_health": false, "mode": "disabled"})
			return
		}
		status, err := redisClient.GetStatus(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"cache_health": false, "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"cache_health": true, "stats": status})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("Health Check: http://localhost:%s/", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("CardioWell API Server started successfully on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
