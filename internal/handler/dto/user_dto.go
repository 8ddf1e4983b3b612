package dto

import (
	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// UserDTO — публичное представление пользователя (без хеша пароля)
type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// NewUserDTO преобразует сущность пользователя в транспортное представление
func NewUserDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// RegisterResponse — ответ на успешную регистрацию
type RegisterResponse struct {
	Success bool `json:"success"`
	UserID  uint `json:"user_id"`
}

// LoginResponse — ответ на успешный вход
type LoginResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

// ErrorResponse — ответ с сообщением об ошибке в форме {success, message}
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
