package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/resumerrs/resume-analyzer-api/internal/config"
	"github.com/resumerrs/resume-analyzer-api/internal/handlers"
	"github.com/resumerrs/resume-analyzer-api/internal/repositories"
	"github.com/resumerrs/resume-analyzer-api/internal/services"
)

const (
	serviceName    = "ATS Resume Analyzer API"
	serviceVersion = "1.0.0"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database. The analyzer keeps working without one: analysis
	// endpoints that need storage answer 503 instead.
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Printf("⚠️  Database unavailable, continuing without persistence: %v", err)
		db = nil
	} else {
		log.Println("✅ Database connected successfully")
	}

	// Initialize repositories
	analysisRepo := repositories.NewAnalysisRepository(db)

	// Initialize services
	vocabulary := services.DefaultVocabulary()
	if cfg.Skills.VocabularyFile != "" {
		vocabulary, err = services.LoadVocabulary(cfg.Skills.VocabularyFile)
		if err != nil {
			log.Fatalf("❌ Failed to load skill vocabulary: %v", err)
		}
		log.Printf("✅ Loaded %d skills from %s", len(vocabulary), cfg.Skills.VocabularyFile)
	}

	skillExtractor, err := services.NewSkillExtractor(vocabulary, services.MatchStrategy(cfg.Skills.MatchStrategy))
	if err != nil {
		log.Fatalf("❌ Failed to initialize skill extractor: %v", err)
	}

	pdfParser := services.NewPDFParserService(cfg.Upload.MaxFileSize)
	matchService := services.NewMatchService()
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(pdfParser, skillExtractor)
	analysisHandler := handlers.NewAnalysisHandler(analysisRepo, skillExtractor, matchService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app. The body limit leaves headroom over the PDF size
	// limit: base64 JSON uploads inflate the payload by a third.
	app := fiber.New(fiber.Config{
		AppName:      serviceName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize * 2),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join([]string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8081",
			cfg.CORS.FrontendURL,
		}, ","),
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type, Authorization",
		AllowCredentials: true,
	}))

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": serviceName,
			"version": serviceVersion,
			"endpoints": fiber.Map{
				"upload":   "/api/upload-resume",
				"validate": "/api/validate-pdf",
				"analyze":  "/api/analyze-match",
				"history":  "/api/analysis-history",
			},
		})
	})

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": serviceName,
			"version": serviceVersion,
		})
	})

	// API endpoints
	api := app.Group("/api")
	api.Post("/upload-resume", uploadHandler.HandleUploadResume)
	api.Post("/validate-pdf", uploadHandler.HandleValidatePDF)
	api.Post("/analyze-match", analysisHandler.HandleAnalyzeMatch)
	api.Get("/analysis-history", analysisHandler.HandleAnalysisHistory)
	api.Get("/analysis/:id", analysisHandler.HandleGetAnalysis)
	api.Delete("/analysis/:id", analysisHandler.HandleDeleteAnalysis)
	api.Get("/statistics", analysisHandler.HandleStatistics)

	// Fallback for unknown paths
	app.Use(handlers.NotFoundHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
