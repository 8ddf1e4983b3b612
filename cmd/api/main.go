package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yourusername/vocab-api/internal/config"
	"github.com/yourusername/vocab-api/internal/handler"
	"github.com/yourusername/vocab-api/internal/middleware"
	pgRepo "github.com/yourusername/vocab-api/internal/repository/postgres"
	"github.com/yourusername/vocab-api/internal/seed"
	"github.com/yourusername/vocab-api/internal/service"
	"github.com/yourusername/vocab-api/pkg/auth"
	"github.com/yourusername/vocab-api/pkg/database"
	"github.com/yourusername/vocab-api/pkg/logger"
	"github.com/yourusername/vocab-api/pkg/monitoring"
)

func main() {
	// .env нужен только для локальной разработки, в проде переменные
	// приходят из окружения
	_ = godotenv.Load()

	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Init("release")
		logger.Log.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Init(cfg.Server.Mode)
	defer logger.Sync()
	logger.Log.Info("Configuration loaded", zap.String("path", configPath))

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Наполняем базу стартовым контентом, если она пуста
	if err := seed.Apply(db); err != nil {
		logger.Log.Fatal("Failed to seed database", zap.Error(err))
	}

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	topicRepo := pgRepo.NewTopicRepo(db)
	vocabRepo := pgRepo.NewVocabularyRepo(db)
	quizRepo := pgRepo.NewQuizRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)
	progressRepo := pgRepo.NewProgressRepo(db)

	// Инициализируем JWT сервис
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		logger.Log.Fatal("Failed to initialize JWTService", zap.Error(err))
	}

	// Инициализируем сервисы
	authService, err := service.NewAuthService(userRepo, jwtService)
	if err != nil {
		logger.Log.Fatal("Failed to initialize AuthService", zap.Error(err))
	}
	contentService, err := service.NewContentService(topicRepo, vocabRepo, quizRepo)
	if err != nil {
		logger.Log.Fatal("Failed to initialize ContentService", zap.Error(err))
	}
	resultService, err := service.NewResultService(resultRepo)
	if err != nil {
		logger.Log.Fatal("Failed to initialize ResultService", zap.Error(err))
	}
	progressService, err := service.NewProgressService(progressRepo, resultRepo)
	if err != nil {
		logger.Log.Fatal("Failed to initialize ProgressService", zap.Error(err))
	}

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	contentHandler := handler.NewContentHandler(contentService)
	quizHandler := handler.NewQuizHandler(resultService)
	progressHandler := handler.NewProgressHandler(progressService)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	// Инициализируем роутер Gin
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.MetricsMiddleware())

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", monitoring.PrometheusHandler())

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/topics", contentHandler.ListTopics)

		topicWithID := api.Group("/topics/:id")
		topicWithID.Use(middleware.ExtractUintParam("id", "topicID"))
		{
			topicWithID.GET("/vocabularies", contentHandler.ListVocabularies)
			topicWithID.GET("/quiz", contentHandler.ListQuiz)
		}

		// Маршруты, требующие аутентификации
		authed := api.Group("/")
		authed.Use(authMiddleware.RequireAuth())
		{
			authed.POST("/quiz/submit", quizHandler.SubmitQuiz)
			authed.GET("/progress", progressHandler.GetProgress)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// После получения сигнала SIGINT или SIGTERM корректно останавливаем сервер
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Server exited properly")
}
