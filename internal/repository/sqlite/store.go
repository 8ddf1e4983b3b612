package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/yourusername/vocab-api/internal/seed"
	"github.com/yourusername/vocab-api/pkg/auth"
)

// Store — sqlite-хранилище для serverless-пути развертывания.
// Файл базы живет в локальном каталоге инстанса (обычно /tmp), схема и
// стартовые данные создаются при первом открытии.
type Store struct {
	db *sqlx.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS topics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		level TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS vocabularies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		word TEXT NOT NULL,
		meaning TEXT NOT NULL,
		example TEXT,
		pronunciation TEXT,
		topic_id INTEGER NOT NULL,
		FOREIGN KEY (topic_id) REFERENCES topics (id)
	)`,
	`CREATE TABLE IF NOT EXISTS progress (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		vocab_id INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'not_learned',
		score INTEGER NOT NULL DEFAULT 0,
		last_reviewed TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (id),
		FOREIGN KEY (vocab_id) REFERENCES vocabularies (id)
	)`,
	`CREATE TABLE IF NOT EXISTS quizzes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		topic_id INTEGER NOT NULL,
		question TEXT NOT NULL,
		option_a TEXT NOT NULL,
		option_b TEXT NOT NULL,
		option_c TEXT NOT NULL,
		option_d TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		FOREIGN KEY (topic_id) REFERENCES topics (id)
	)`,
	`CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		quiz_id INTEGER NOT NULL,
		score REAL NOT NULL,
		total_questions INTEGER NOT NULL,
		completed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (id),
		FOREIGN KEY (quiz_id) REFERENCES quizzes (id)
	)`,
}

// Open открывает (или создает) файл базы и приводит его к рабочему состоянию
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// sqlite не поддерживает нескольких писателей
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if err := store.seedSampleData(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// DB возвращает нижележащее подключение для репозиториев
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close закрывает подключение к базе
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize sqlite schema: %w", err)
		}
	}
	return nil
}

// seedSampleData наполняет пустую базу тем же стартовым набором,
// что и основное хранилище
func (s *Store) seedSampleData() error {
	var count int
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM topics"); err != nil {
		return fmt.Errorf("failed to check existing topics: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, t := range seed.SampleTopics {
		if _, err := tx.Exec(
			"INSERT INTO topics (name, level, description) VALUES (?, ?, ?)",
			t.Name, t.Level, t.Description,
		); err != nil {
			return fmt.Errorf("failed to seed topic %q: %w", t.Name, err)
		}
	}
	for _, v := range seed.SampleVocabularies {
		if _, err := tx.Exec(
			"INSERT INTO vocabularies (word, meaning, example, pronunciation, topic_id) VALUES (?, ?, ?, ?, ?)",
			v.Word, v.Meaning, v.Example, v.Pronunciation, v.TopicID,
		); err != nil {
			return fmt.Errorf("failed to seed vocabulary %q: %w", v.Word, err)
		}
	}
	for _, q := range seed.SampleQuizzes {
		if _, err := tx.Exec(
			"INSERT INTO quizzes (topic_id, question, option_a, option_b, option_c, option_d, correct_answer) VALUES (?, ?, ?, ?, ?, ?, ?)",
			q.TopicID, q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.CorrectAnswer,
		); err != nil {
			return fmt.Errorf("failed to seed quiz: %w", err)
		}
	}
	if _, err := tx.Exec(
		"INSERT INTO users (username, email, password, role, created_at) VALUES (?, ?, ?, ?, ?)",
		seed.AdminUsername, seed.AdminEmail, auth.HashPassword(seed.AdminPassword), "admin", time.Now(),
	); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return tx.Commit()
}
