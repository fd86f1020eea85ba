package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizai/internal/adapter"
	"quizai/internal/cache"
	"quizai/internal/config"
	"quizai/internal/database"
	"quizai/internal/domain"
	"quizai/internal/extractor"
	"quizai/internal/handler"
	"quizai/internal/logger"
	"quizai/internal/middleware"
	"quizai/internal/quizgen"
	"quizai/internal/repository"
	"quizai/internal/service"
	"quizai/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXPostgresDB(cfg.Database.DSN)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Postgres")

	// Initialize repositories
	courseRepository := repository.NewCourseDatabaseAdapter(db)
	materialRepository := repository.NewMaterialDatabaseAdapter(db)
	extractedTextRepository := repository.NewExtractedTextDatabaseAdapter(db)
	quizRepository := repository.NewQuizDatabaseAdapter(db)

	// Redis is optional; without it extracted texts are always read
	// from the database.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	} else {
		appLogger.Warn("Redis address not configured, extracted-text caching disabled")
	}

	// Object storage for uploaded materials
	objectStorage, err := storage.NewSupabaseStorage(cfg.Storage)
	if err != nil {
		appLogger.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	// OpenRouter generation client
	generator, err := quizgen.NewOpenRouterClient(cfg.OpenRouter)
	if err != nil {
		appLogger.Fatal("Failed to initialize generation client", zap.Error(err))
	}
	appLogger.Info("Generation client initialized", zap.String("model", cfg.OpenRouter.Model))

	// Initialize services
	generationService := service.NewGenerationService(
		courseRepository,
		materialRepository,
		extractedTextRepository,
		quizRepository,
		objectStorage,
		extractor.New(),
		generator,
		cacheAdapter,
		cfg.Generation.MaxInputTokens,
		cfg.Generation.ExtractedTextCacheTTL,
	)
	quizService := service.NewQuizService(quizRepository)
	gradingService := service.NewGradingService(quizRepository)

	// Initialize handlers
	generateHandler := handler.NewGenerateHandler(generationService)
	quizHandler := handler.NewQuizHandler(quizService, gradingService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// API group (all routes require authentication)
	apiGroup := app.Group("/api", middleware.Protected(cfg.Auth))
	apiGroup.Post("/generate", generateHandler.GenerateQuiz)
	apiGroup.Post("/submit", quizHandler.SubmitQuiz)
	apiGroup.Get("/quizzes", quizHandler.ListQuizzes)
	apiGroup.Get("/quizzes/:id", quizHandler.GetQuiz)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
