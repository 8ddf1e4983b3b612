package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/domain/repository"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

// Уровень темы по умолчанию, когда колонка уровня пуста
const defaultTopicLevel = "A1"

// ImportConfig определяет параметры импорта словаря из файла.
// Ожидаемые колонки: слово, значение, пример, произношение, тема, уровень.
type ImportConfig struct {
	FilePath   string
	SheetName  string // имя листа для xlsx; по умолчанию "Sheet1"
	SkipHeader bool
}

// DefaultImportConfig возвращает параметры импорта по умолчанию
func DefaultImportConfig(filePath string) ImportConfig {
	return ImportConfig{
		FilePath:   filePath,
		SheetName:  "Sheet1",
		SkipHeader: true,
	}
}

// ImportResult — итог операции импорта
type ImportResult struct {
	Imported      int
	TopicsCreated int
	Skipped       int
}

// importEntry — одна разобранная строка файла
type importEntry struct {
	Word          string
	Meaning       string
	Example       string
	Pronunciation string
	Topic         string
	Level         string
}

// Importer наполняет словарь из xlsx или csv файлов
type Importer struct {
	topicRepo repository.TopicRepository
	vocabRepo repository.VocabularyRepository
}

// NewImporter создает новый импортер словаря
func NewImporter(topicRepo repository.TopicRepository, vocabRepo repository.VocabularyRepository) *Importer {
	return &Importer{topicRepo: topicRepo, vocabRepo: vocabRepo}
}

// Import читает файл и создает словарные единицы, заводя отсутствующие
// темы по ходу. Формат определяется расширением файла.
func (im *Importer) Import(cfg ImportConfig) (*ImportResult, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(cfg.FilePath)) {
	case ".xlsx":
		rows, err = readExcelRows(cfg)
	case ".csv":
		rows, err = readCSVRows(cfg)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(cfg.FilePath))
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	topicCache := make(map[string]uint)

	for _, row := range rows {
		entry, ok := parseRow(row)
		if !ok {
			result.Skipped++
			continue
		}

		topicID, created, err := im.resolveTopic(entry, topicCache)
		if err != nil {
			return nil, err
		}
		if created {
			result.TopicsCreated++
		}

		vocab := &entity.Vocabulary{
			Word:          entry.Word,
			Meaning:       entry.Meaning,
			Example:       entry.Example,
			Pronunciation: entry.Pronunciation,
			TopicID:       topicID,
		}
		if err := im.vocabRepo.Create(vocab); err != nil {
			return nil, fmt.Errorf("failed to import word %q: %w", entry.Word, err)
		}
		result.Imported++
	}
	return result, nil
}

// resolveTopic возвращает id темы, создавая ее при первом упоминании
func (im *Importer) resolveTopic(entry importEntry, cache map[string]uint) (uint, bool, error) {
	if id, ok := cache[entry.Topic]; ok {
		return id, false, nil
	}

	topic, err := im.topicRepo.GetByName(entry.Topic)
	if err == nil {
		cache[entry.Topic] = topic.ID
		return topic.ID, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return 0, false, err
	}

	level := entry.Level
	if level == "" {
		level = defaultTopicLevel
	}
	created := &entity.Topic{Name: entry.Topic, Level: level}
	if err := im.topicRepo.Create(created); err != nil {
		return 0, false, fmt.Errorf("failed to create topic %q: %w", entry.Topic, err)
	}
	cache[entry.Topic] = created.ID
	return created.ID, true, nil
}

// parseRow разбирает строку файла; строки без слова, значения или темы
// пропускаются
func parseRow(row []string) (importEntry, bool) {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	entry := importEntry{
		Word:          get(0),
		Meaning:       get(1),
		Example:       get(2),
		Pronunciation: get(3),
		Topic:         get(4),
		Level:         get(5),
	}
	if entry.Word == "" || entry.Meaning == "" || entry.Topic == "" {
		return importEntry{}, false
	}
	return entry, true
}

func readExcelRows(cfg ImportConfig) ([][]string, error) {
	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(cfg.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", cfg.SheetName, err)
	}
	if cfg.SkipHeader && len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}

func readCSVRows(cfg ImportConfig) ([][]string, error) {
	f, err := os.Open(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // допускаем строки разной длины

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		rows = append(rows, record)
	}
	if cfg.SkipHeader && len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}
