package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/vocab-api/pkg/logger"
)

// internalError отвечает общим сообщением, а детали пишет в лог:
// текст внутренней ошибки не должен утекать клиенту
func internalError(c *gin.Context, msg string, err error) {
	logger.Log.Error(msg,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString("request_id")),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
