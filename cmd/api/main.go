// @title Deneme API
// @version 1.0
// @description Mock-exam quiz API: exams, quiz sessions and per-user statistics.
// @host localhost:8090
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"deneme-api/internal/config"
	"deneme-api/internal/handler"
	"deneme-api/internal/logger"
	"deneme-api/internal/middleware"
	"deneme-api/internal/repository"
	"deneme-api/internal/seed"
	"deneme-api/internal/service"
	"deneme-api/internal/validation"

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

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
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
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Initialize the in-memory question store
	questionRepository := repository.NewMemoryQuestionRepository()
	if cfg.Seed.InitialQuestions {
		for _, q := range seed.Questions() {
			if err := questionRepository.Add(q); err != nil {
				appLogger.Fatal("Failed to seed question", zap.String("question_id", q.ID), zap.Error(err))
			}
		}
		appLogger.Info("Seeded initial questions", zap.Int("count", questionRepository.Count()))
	}

	// Initialize services
	statsService := service.NewStatsService()
	quizService := service.NewQuizService(questionRepository, statsService)
	questionService := service.NewQuestionService(questionRepository, validation.NewValidator(), quizService)

	authService, err := service.NewAuthService(cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	appLogger.Info("AuthService initialized")

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, quizService)
	quizHandler := handler.NewQuizHandler(quizService)
	adminHandler := handler.NewAdminHandler(questionService)
	statsHandler := handler.NewStatsHandler(statsService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/admin/login", authHandler.AdminLogin)
	authGroup.Post("/social/:provider", authHandler.SocialSignIn)
	authGroup.Get("/google/login", authHandler.GoogleLoginURL)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// Quiz session routes
	apiGroup.Get("/exams", middleware.Protected(authService), quizHandler.ListExams)
	sessionGroup := apiGroup.Group("/session", middleware.Protected(authService))
	sessionGroup.Post("/start", quizHandler.StartSession)
	sessionGroup.Get("/", quizHandler.GetSession)
	sessionGroup.Post("/answer", quizHandler.Answer)
	sessionGroup.Post("/advance", quizHandler.Advance)
	sessionGroup.Post("/restart", quizHandler.Restart)

	// Statistics
	apiGroup.Get("/stats", middleware.Protected(authService), statsHandler.GetMyStats)

	// Admin question management
	adminGroup := apiGroup.Group("/admin", middleware.Protected(authService), middleware.AdminOnly())
	adminGroup.Post("/questions", adminHandler.AddQuestion)
	adminGroup.Get("/questions", adminHandler.ListQuestions)
	adminGroup.Delete("/questions/:id", adminHandler.DeleteQuestion)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
