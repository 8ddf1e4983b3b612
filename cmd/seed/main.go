package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yourusername/vocab-api/internal/config"
	pgRepo "github.com/yourusername/vocab-api/internal/repository/postgres"
	"github.com/yourusername/vocab-api/internal/seed"
	"github.com/yourusername/vocab-api/pkg/database"
	"github.com/yourusername/vocab-api/pkg/logger"
)

// Утилита наполнения базы: применяет миграции, стартовый контент и,
// если указан -file, импортирует словарь из xlsx или csv.
func main() {
	configPath := flag.String("config", "config/config.yaml", "путь к файлу конфигурации")
	importFile := flag.String("file", "", "xlsx или csv файл со словарем для импорта")
	sheetName := flag.String("sheet", "Sheet1", "имя листа для xlsx файлов")
	flag.Parse()

	_ = godotenv.Load()

	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" && *configPath == "config/config.yaml" {
		*configPath = envPath
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Init("release")
		logger.Log.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Init(cfg.Server.Mode)
	defer logger.Sync()

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.MigrateDB(db); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	if err := seed.Apply(db); err != nil {
		logger.Log.Fatal("Failed to seed database", zap.Error(err))
	}
	logger.Log.Info("Sample data applied")

	if *importFile == "" {
		return
	}

	importer := seed.NewImporter(pgRepo.NewTopicRepo(db), pgRepo.NewVocabularyRepo(db))
	importCfg := seed.DefaultImportConfig(*importFile)
	importCfg.SheetName = *sheetName

	result, err := importer.Import(importCfg)
	if err != nil {
		logger.Log.Fatal("Import failed", zap.Error(err))
	}
	logger.Log.Info("Import finished",
		zap.Int("imported", result.Imported),
		zap.Int("topics_created", result.TopicsCreated),
		zap.Int("skipped", result.Skipped))
}
