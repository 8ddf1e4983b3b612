package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/vocab-api/internal/handler/dto"
	"github.com/yourusername/vocab-api/internal/middleware"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
	"github.com/yourusername/vocab-api/internal/service"
)

// QuizHandler принимает отправку ответов викторины
type QuizHandler struct {
	resultService *service.ResultService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(resultService *service.ResultService) *QuizHandler {
	return &QuizHandler{resultService: resultService}
}

// AnsweredItemRequest — один отвеченный вопрос в теле запроса
type AnsweredItemRequest struct {
	QuizID    uint `json:"quiz_id" binding:"required"`
	IsCorrect bool `json:"is_correct"`
}

// SubmitQuizRequest представляет запрос на отправку результатов
type SubmitQuizRequest struct {
	Results []AnsweredItemRequest `json:"results" binding:"required,min=1,dive"`
}

// SubmitQuiz подсчитывает очки за пачку ответов и сохраняет результат
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	items := make([]service.AnsweredItem, 0, len(req.Results))
	for _, r := range req.Results {
		items = append(items, service.AnsweredItem{QuizID: r.QuizID, IsCorrect: r.IsCorrect})
	}

	summary, err := h.resultService.SubmitResult(userID, items)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Result batch must not be empty"})
			return
		}
		internalError(c, "failed to submit quiz result", err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmitQuizResponse{
		Score:   summary.Score,
		Correct: summary.Correct,
		Total:   summary.Total,
	})
}
