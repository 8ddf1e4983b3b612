package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

// TopicRepo реализует repository.TopicRepository
type TopicRepo struct {
	db *gorm.DB
}

// NewTopicRepo создает новый репозиторий тем
func NewTopicRepo(db *gorm.DB) *TopicRepo {
	return &TopicRepo{db: db}
}

// GetAll возвращает все темы без фильтрации и пагинации
func (r *TopicRepo) GetAll() ([]entity.Topic, error) {
	var topics []entity.Topic
	err := r.db.Order("id").Find(&topics).Error
	return topics, err
}

// GetByName возвращает тему по имени
func (r *TopicRepo) GetByName(name string) (*entity.Topic, error) {
	var topic entity.Topic
	err := r.db.Where("name = ?", name).First(&topic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &topic, nil
}

// Create создает новую тему
func (r *TopicRepo) Create(topic *entity.Topic) error {
	return r.db.Create(topic).Error
}

// VocabularyRepo реализует repository.VocabularyRepository
type VocabularyRepo struct {
	db *gorm.DB
}

// NewVocabularyRepo создает новый репозиторий словаря
func NewVocabularyRepo(db *gorm.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

// GetByTopic возвращает все слова темы
func (r *VocabularyRepo) GetByTopic(topicID uint) ([]entity.Vocabulary, error) {
	var vocabularies []entity.Vocabulary
	err := r.db.Where("topic_id = ?", topicID).Order("id").Find(&vocabularies).Error
	return vocabularies, err
}

// Create создает новую словарную единицу
func (r *VocabularyRepo) Create(vocab *entity.Vocabulary) error {
	return r.db.Create(vocab).Error
}

// QuizRepo реализует repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo создает новый репозиторий вопросов
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// GetByTopic возвращает все вопросы викторины для темы
func (r *QuizRepo) GetByTopic(topicID uint) ([]entity.Quiz, error) {
	var quizzes []entity.Quiz
	err := r.db.Where("topic_id = ?", topicID).Order("id").Find(&quizzes).Error
	return quizzes, err
}
