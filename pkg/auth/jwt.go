package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

// Срок действия токена по умолчанию
const defaultExpirationHrs = 24

// JWTCustomClaims содержит пользовательские поля для токена
type JWTCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService выпускает и проверяет подписанные HS256 токены.
// Токены самодостаточны: сервер не хранит состояния сессий и не умеет
// отзывать уже выпущенный токен до истечения срока его действия.
type JWTService struct {
	secret     []byte
	expiration time.Duration
}

// NewJWTService создает новый сервис JWT. Секрет подписи обязателен:
// его отсутствие — ошибка конфигурации, а не повод для умолчания.
func NewJWTService(secret string, expirationHrs int) (*JWTService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT signing secret is required")
	}
	if expirationHrs <= 0 {
		expirationHrs = defaultExpirationHrs
	}
	return &JWTService{
		secret:     []byte(secret),
		expiration: time.Duration(expirationHrs) * time.Hour,
	}, nil
}

// Expiration возвращает срок действия выпускаемых токенов
func (s *JWTService) Expiration() time.Duration {
	return s.expiration
}

// GenerateToken выпускает токен с id, именем и ролью пользователя
func (s *JWTService) GenerateToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := JWTCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims.
// Истекший токен дает ErrExpiredToken, любой другой дефект — ErrUnauthorized.
func (s *JWTService) ParseToken(tokenString string) (*JWTCustomClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&JWTCustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrExpiredToken
		}
		return nil, apperrors.ErrUnauthorized
	}

	claims, ok := token.Claims.(*JWTCustomClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}
