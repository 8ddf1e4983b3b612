package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/handler/dto"
	"github.com/yourusername/vocab-api/internal/service"
)

// ContentHandler отдает темы, словарь и вопросы викторин
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler создает новый обработчик контента
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// ListTopics возвращает все темы
func (h *ContentHandler) ListTopics(c *gin.Context) {
	topics, err := h.contentService.ListTopics()
	if err != nil {
		internalError(c, "failed to list topics", err)
		return
	}
	if topics == nil {
		topics = []entity.Topic{}
	}
	c.JSON(http.StatusOK, topics)
}

// ListVocabularies возвращает слова темы из параметра маршрута.
// Неизвестная тема и тема без слов одинаково дают пустой список.
func (h *ContentHandler) ListVocabularies(c *gin.Context) {
	topicID := c.GetUint("topicID")
	vocabularies, err := h.contentService.ListVocabulary(topicID)
	if err != nil {
		internalError(c, "failed to list vocabularies", err)
		return
	}
	if vocabularies == nil {
		vocabularies = []entity.Vocabulary{}
	}
	c.JSON(http.StatusOK, vocabularies)
}

// ListQuiz возвращает вопросы викторины темы
func (h *ContentHandler) ListQuiz(c *gin.Context) {
	topicID := c.GetUint("topicID")
	quizzes, err := h.contentService.ListQuiz(topicID)
	if err != nil {
		internalError(c, "failed to list quiz questions", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuizDTOList(quizzes))
}
