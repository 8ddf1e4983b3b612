package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/domain/repository"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
	"github.com/yourusername/vocab-api/pkg/auth"
)

// AuthService предоставляет регистрацию и вход пользователей
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// LoginOutput содержит результат успешного входа
type LoginOutput struct {
	Token string
	User  *entity.User
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("UserRepository is required for AuthService")
	}
	if jwtService == nil {
		return nil, fmt.Errorf("JWTService is required for AuthService")
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}, nil
}

// RegisterUser регистрирует нового пользователя. Роль всегда "user":
// регистрация администратора через публичный API невозможна.
func (s *AuthService) RegisterUser(username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", apperrors.ErrValidation)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: auth.HashPassword(password),
		Role:     entity.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: username or email already exists", apperrors.ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

// LoginUser проверяет учетные данные и выпускает токен. Неизвестное имя и
// неверный пароль дают одну и ту же ошибку, чтобы не раскрывать
// существование имени пользователя.
func (s *AuthService) LoginUser(username, password string) (*LoginOutput, error) {
	user, err := s.userRepo.GetByCredentials(username, auth.HashPassword(password))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{Token: token, User: user}, nil
}

// VerifyToken проверяет токен и возвращает его claims
func (s *AuthService) VerifyToken(token string) (*auth.JWTCustomClaims, error) {
	return s.jwtService.ParseToken(token)
}
