package repository

import (
	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// Create сохраняет нового пользователя. При нарушении уникальности
	// имени или email возвращает apperrors.ErrConflict.
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	// GetByCredentials ищет пользователя по имени и дайджесту пароля.
	// Возвращает apperrors.ErrNotFound при отсутствии совпадения,
	// не различая неизвестное имя и неверный пароль.
	GetByCredentials(username, passwordHash string) (*entity.User, error)
}
