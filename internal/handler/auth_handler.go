package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/vocab-api/internal/handler/dto"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
	"github.com/yourusername/vocab-api/internal/service"
	"github.com/yourusername/vocab-api/pkg/logger"
)

// AuthHandler обрабатывает запросы регистрации и входа
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest представляет запрос на регистрацию
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=50"`
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register обрабатывает запрос на регистрацию
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Message: "Invalid request data"})
		return
	}

	user, err := h.authService.RegisterUser(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Success: false, Message: "Username or email already exists"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Message: "Invalid request data"})
		default:
			internalError(c, "register failed", err)
		}
		return
	}

	logger.Log.Info("user registered",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
	)
	c.JSON(http.StatusOK, dto.RegisterResponse{Success: true, UserID: user.ID})
}

// Login обрабатывает запрос на вход
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Message: "Invalid request data"})
		return
	}

	out, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Message: "Invalid credentials"})
			return
		}
		internalError(c, "login failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   out.Token,
		User:    dto.NewUserDTO(out.User),
	})
}
