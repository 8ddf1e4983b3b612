package repository

import (
	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// TopicRepository определяет методы для работы с темами
type TopicRepository interface {
	GetAll() ([]entity.Topic, error)
	GetByName(name string) (*entity.Topic, error)
	Create(topic *entity.Topic) error
}

// VocabularyRepository определяет методы для работы со словарем
type VocabularyRepository interface {
	// GetByTopic возвращает все слова темы; пустой срез, если темы нет
	// или в ней нет слов (эти случаи не различаются).
	GetByTopic(topicID uint) ([]entity.Vocabulary, error)
	Create(vocab *entity.Vocabulary) error
}

// QuizRepository определяет методы для работы с вопросами викторин
type QuizRepository interface {
	GetByTopic(topicID uint) ([]entity.Quiz, error)
}
