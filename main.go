package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"exercisetracker/internal/config"
	"exercisetracker/internal/database"
	"exercisetracker/internal/handlers"
	"exercisetracker/internal/metrics"
	"exercisetracker/internal/middleware"
	"exercisetracker/internal/repositories"
	"exercisetracker/internal/services"
	"exercisetracker/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app, cleanup, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	defer cleanup()

	log.Printf("Starting server on port %s (storage: %s)", cfg.AppPort, cfg.StorageDriver)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// NewApp builds the Fiber application for cfg. The returned cleanup function
// releases the database and broker connections.
func NewApp(cfg *config.Config) (*fiber.App, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// --- Storage ---
	var (
		userRepo     repositories.UserRepository
		exerciseRepo repositories.ExerciseRepository
	)
	switch cfg.StorageDriver {
	case database.DriverMemory:
		userRepo = repositories.NewMemoryUserRepository()
		exerciseRepo = repositories.NewMemoryExerciseRepository()
	default:
		db, err := database.Open(cfg.StorageDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := database.Close(db); err != nil {
				log.Printf("Error closing database: %v", err)
			}
		})
		userRepo = repositories.NewGORMUserRepository(db)
		exerciseRepo = repositories.NewGORMExerciseRepository(db)
	}

	// --- Events ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.RabbitMQExchange})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		closers = append(closers, func() {
			if err := mqClient.Close(); err != nil {
				log.Printf("Error closing RabbitMQ client: %v", err)
			}
		})
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL is not set. Event publishing is disabled.")
	}

	// --- Services & handlers ---
	userService := services.NewUserService(userRepo, publisher)
	exerciseService := services.NewExerciseService(userRepo, exerciseRepo, publisher)
	logService := services.NewLogService(userRepo, exerciseRepo)

	userHandler := handlers.NewUserHandler(userService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService, logService)
	healthHandler := handlers.NewHealthHandler(cfg.StorageDriver)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type, Authorization, X-Requested-With",
	}))
	if cfg.MetricsEnabled {
		app.Use(metrics.Middleware())
		app.Get("/metrics", metrics.Handler())
	}

	api := app.Group(cfg.APIPrefix)
	healthHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	exerciseHandler.RegisterRoutes(api)

	return app, cleanup, nil
}
