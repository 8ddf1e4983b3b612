package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Имя заголовка с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// RequestID проставляет каждому запросу идентификатор: берет его из
// входящего заголовка или генерирует новый. Идентификатор возвращается
// в ответе и доступен обработчикам для логирования.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
