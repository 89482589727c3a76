package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "athlete-intake/docs"

	"athlete-intake/internal/delivery/http/routers"
	"athlete-intake/internal/infrastructure/mailer"
	"athlete-intake/internal/infrastructure/storage"
	"athlete-intake/internal/usecases"
	"athlete-intake/pkg/config"
	consts "athlete-intake/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// @title        Athlete Intake API
// @version      1.0
// @description  Public intake API for athlete video/photo submissions
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	if cfg.AWS.Bucket == "" {
		log.Fatal("AWS_BUCKET must be configured")
	}

	slogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	s3Storage, err := storage.NewS3Storage(context.Background(), cfg.AWS, slogger)
	if err != nil {
		log.Fatalf("Storage init failed: %v", err)
	}

	resendMailer := mailer.NewResendMailer(cfg.Email.APIKey, cfg.Email.BaseURL)

	uploadService := usecases.NewUploadService(s3Storage, cfg.Upload)
	submissionService := usecases.NewSubmissionService(resendMailer, cfg.Email)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxBodySize),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes
	routers.SetupRoutes(app, uploadService, submissionService)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	// Abandoned browser sessions never abort their multipart uploads, so a
	// periodic sweep closes that leak on the backend.
	c := cron.New(cron.WithSeconds())
	c.AddFunc(cfg.Upload.SweepSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := s3Storage.AbortStale(ctx, cfg.Upload.KeyPrefix, cfg.Upload.SweepMaxAge); err != nil {
			log.Printf("Stale upload sweep failed: %v", err)
		}
	})
	c.Start()

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown signal received, stopping server...")

	c.Stop()

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped cleanly")
}
