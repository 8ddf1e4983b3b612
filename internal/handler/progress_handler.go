package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/vocab-api/internal/handler/dto"
	"github.com/yourusername/vocab-api/internal/middleware"
	"github.com/yourusername/vocab-api/internal/service"
)

// ProgressHandler отдает статистику обучения пользователя
type ProgressHandler struct {
	progressService *service.ProgressService
}

// NewProgressHandler создает новый обработчик прогресса
func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetProgress возвращает статистику аутентифицированного пользователя
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.progressService.GetProgress(userID)
	if err != nil {
		internalError(c, "failed to get progress", err)
		return
	}

	c.JSON(http.StatusOK, dto.ProgressResponse{
		LearnedWords: stats.LearnedWords,
		AverageScore: stats.AverageScore,
		QuizzesTaken: stats.QuizzesTaken,
	})
}
