package sqlite

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

// TopicRepo реализует repository.TopicRepository поверх sqlite
type TopicRepo struct {
	db *sqlx.DB
}

// NewTopicRepo создает новый репозиторий тем
func NewTopicRepo(db *sqlx.DB) *TopicRepo {
	return &TopicRepo{db: db}
}

// GetAll возвращает все темы
func (r *TopicRepo) GetAll() ([]entity.Topic, error) {
	topics := []entity.Topic{}
	err := r.db.Select(&topics, "SELECT id, name, level, description FROM topics ORDER BY id")
	return topics, err
}

// GetByName возвращает тему по имени
func (r *TopicRepo) GetByName(name string) (*entity.Topic, error) {
	var topic entity.Topic
	err := r.db.Get(&topic, "SELECT id, name, level, description FROM topics WHERE name = ?", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &topic, nil
}

// Create создает новую тему
func (r *TopicRepo) Create(topic *entity.Topic) error {
	res, err := r.db.Exec(
		"INSERT INTO topics (name, level, description) VALUES (?, ?, ?)",
		topic.Name, topic.Level, topic.Description,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	topic.ID = uint(id)
	return nil
}

// VocabularyRepo реализует repository.VocabularyRepository поверх sqlite
type VocabularyRepo struct {
	db *sqlx.DB
}

// NewVocabularyRepo создает новый репозиторий словаря
func NewVocabularyRepo(db *sqlx.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

// GetByTopic возвращает все слова темы
func (r *VocabularyRepo) GetByTopic(topicID uint) ([]entity.Vocabulary, error) {
	vocabularies := []entity.Vocabulary{}
	err := r.db.Select(&vocabularies,
		"SELECT id, word, meaning, example, pronunciation, topic_id FROM vocabularies WHERE topic_id = ? ORDER BY id",
		topicID,
	)
	return vocabularies, err
}

// Create создает новую словарную единицу
func (r *VocabularyRepo) Create(vocab *entity.Vocabulary) error {
	res, err := r.db.Exec(
		"INSERT INTO vocabularies (word, meaning, example, pronunciation, topic_id) VALUES (?, ?, ?, ?, ?)",
		vocab.Word, vocab.Meaning, vocab.Example, vocab.Pronunciation, vocab.TopicID,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	vocab.ID = uint(id)
	return nil
}

// QuizRepo реализует repository.QuizRepository поверх sqlite
type QuizRepo struct {
	db *sqlx.DB
}

// NewQuizRepo создает новый репозиторий вопросов
func NewQuizRepo(db *sqlx.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// GetByTopic возвращает все вопросы викторины для темы
func (r *QuizRepo) GetByTopic(topicID uint) ([]entity.Quiz, error) {
	quizzes := []entity.Quiz{}
	err := r.db.Select(&quizzes,
		"SELECT id, topic_id, question, option_a, option_b, option_c, option_d, correct_answer FROM quizzes WHERE topic_id = ? ORDER BY id",
		topicID,
	)
	return quizzes, err
}
