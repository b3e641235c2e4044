package cli

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"tactile-quiz/internal/config"
	"tactile-quiz/internal/database"
	"tactile-quiz/internal/handler"
	"tactile-quiz/internal/imaging"
	"tactile-quiz/internal/logger"
	"tactile-quiz/internal/middleware"
	"tactile-quiz/internal/repository"
	"tactile-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		return err
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Successfully connected to database")

	// Initialize repositories
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	sessionRepository := repository.NewSessionDatabaseAdapter(db)
	responseRepository := repository.NewResponseDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize image store
	imageStore := imaging.NewLocalStore(cfg.Storage.StaticDir)

	// Initialize services
	questionService := service.NewQuestionService(questionRepository, sessionRepository, responseRepository, imageStore, txManager)
	sessionService := service.NewSessionService(sessionRepository, responseRepository, txManager)
	quizService := service.NewQuizService(questionRepository, sessionRepository, responseRepository)

	// Initialize handlers
	questionHandler := handler.NewQuestionHandler(questionService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	// Uploaded question images
	app.Static("/static", cfg.Storage.StaticDir)

	// API group
	apiGroup := app.Group("/api")

	// Admin routes
	adminGroup := apiGroup.Group("/admin")
	adminGroup.Get("/questions", questionHandler.ListQuestions)
	adminGroup.Post("/questions", questionHandler.CreateQuestion)
	adminGroup.Post("/questions/batch-toggle", questionHandler.BatchToggle)
	adminGroup.Get("/questions/:id", questionHandler.GetQuestion)
	adminGroup.Put("/questions/:id", questionHandler.UpdateQuestion)
	adminGroup.Delete("/questions/:id", questionHandler.DeleteQuestion)
	adminGroup.Post("/questions/:id/toggle", questionHandler.ToggleQuestion)
	adminGroup.Get("/test-sessions", sessionHandler.ListSessions)
	adminGroup.Post("/test-sessions/batch-delete", sessionHandler.BatchDeleteSessions)
	adminGroup.Delete("/test-sessions/:id", sessionHandler.DeleteSession)

	// Quiz-taking routes
	quizGroup := apiGroup.Group("/quiz")
	quizGroup.Post("/start", quizHandler.StartQuiz)
	quizGroup.Post("/:session_id/answer", quizHandler.SubmitAnswer)
	quizGroup.Get("/:session_id/result", quizHandler.GetResult)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
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
	return nil
}
