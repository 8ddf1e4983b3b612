package service

import (
	"fmt"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/domain/repository"
)

// ContentService отдает учебный контент: темы, словарь и вопросы викторин.
// Все операции только на чтение; контент статичен после наполнения базы.
type ContentService struct {
	topicRepo repository.TopicRepository
	vocabRepo repository.VocabularyRepository
	quizRepo  repository.QuizRepository
}

// NewContentService создает новый сервис контента
func NewContentService(
	topicRepo repository.TopicRepository,
	vocabRepo repository.VocabularyRepository,
	quizRepo repository.QuizRepository,
) (*ContentService, error) {
	if topicRepo == nil {
		return nil, fmt.Errorf("TopicRepository is required for ContentService")
	}
	if vocabRepo == nil {
		return nil, fmt.Errorf("VocabularyRepository is required for ContentService")
	}
	if quizRepo == nil {
		return nil, fmt.Errorf("QuizRepository is required for ContentService")
	}
	return &ContentService{
		topicRepo: topicRepo,
		vocabRepo: vocabRepo,
		quizRepo:  quizRepo,
	}, nil
}

// ListTopics возвращает все темы
func (s *ContentService) ListTopics() ([]entity.Topic, error) {
	return s.topicRepo.GetAll()
}

// ListVocabulary возвращает слова темы; для неизвестной темы — пустой список
func (s *ContentService) ListVocabulary(topicID uint) ([]entity.Vocabulary, error) {
	return s.vocabRepo.GetByTopic(topicID)
}

// ListQuiz возвращает вопросы викторины темы
func (s *ContentService) ListQuiz(topicID uint) ([]entity.Quiz, error) {
	return s.quizRepo.GetByTopic(topicID)
}
