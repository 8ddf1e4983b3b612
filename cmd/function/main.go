package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yourusername/vocab-api/internal/config"
	sqliteRepo "github.com/yourusername/vocab-api/internal/repository/sqlite"
	"github.com/yourusername/vocab-api/internal/service"
	"github.com/yourusername/vocab-api/internal/transport/event"
	"github.com/yourusername/vocab-api/pkg/auth"
	"github.com/yourusername/vocab-api/pkg/logger"
)

// Обработчик одного вызова: конверт события читается из stdin (или из
// файла, переданного первым аргументом), конверт ответа пишется в stdout.
func main() {
	_ = godotenv.Load()

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

	// Хранилище функции живет в локальном файле, состояние между
	// вызовами не переносится
	store, err := sqliteRepo.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Log.Fatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	userRepo := sqliteRepo.NewUserRepo(store.DB())
	topicRepo := sqliteRepo.NewTopicRepo(store.DB())
	vocabRepo := sqliteRepo.NewVocabularyRepo(store.DB())
	quizRepo := sqliteRepo.NewQuizRepo(store.DB())
	resultRepo := sqliteRepo.NewResultRepo(store.DB())
	progressRepo := sqliteRepo.NewProgressRepo(store.DB())

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		logger.Log.Fatal("Failed to initialize JWTService", zap.Error(err))
	}

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

	router := event.NewRouter(authService, contentService, resultService, progressService, jwtService)

	raw, err := readEvent()
	if err != nil {
		logger.Log.Fatal("Failed to read event", zap.Error(err))
	}

	var req event.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		logger.Log.Fatal("Failed to parse event", zap.Error(err))
	}

	resp := router.Handle(req)

	out, err := json.Marshal(resp)
	if err != nil {
		logger.Log.Fatal("Failed to marshal response", zap.Error(err))
	}
	if _, err := os.Stdout.Write(append(out, '\n')); err != nil {
		logger.Log.Fatal("Failed to write response", zap.Error(err))
	}
}

// readEvent читает конверт события из файла-аргумента либо из stdin
func readEvent() ([]byte, error) {
	if len(os.Args) > 1 {
		return os.ReadFile(os.Args[1])
	}
	return io.ReadAll(os.Stdin)
}
