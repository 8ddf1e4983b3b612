package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
	"github.com/yourusername/vocab-api/pkg/auth"
)

// Ключи контекста Gin, под которыми сохраняются данные токена
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware обеспечивает аутентификацию для защищенных маршрутов
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware создает новый middleware аутентификации
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAuth проверяет bearer-токен в заголовке Authorization.
// Токен — единственный носитель сессии: кук и серверного состояния нет.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ParseToken(parts[1])
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, apperrors.ErrExpiredToken) {
				msg = "Token is expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// UserID извлекает id аутентифицированного пользователя из контекста
func UserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
