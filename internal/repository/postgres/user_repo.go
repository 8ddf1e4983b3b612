package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

// Код ошибки PostgreSQL для нарушения уникальности
const uniqueViolationCode = "23505"

// UserRepo реализует repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo создает новый репозиторий пользователей
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create создает нового пользователя. Гонка двух одновременных регистраций
// разрешается уникальными индексами БД: второй писатель получает ErrConflict.
func (r *UserRepo) Create(user *entity.User) error {
	err := r.db.Create(user).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrConflict
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// GetByID возвращает пользователя по ID
func (r *UserRepo) GetByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByCredentials возвращает пользователя по имени и дайджесту пароля
func (r *UserRepo) GetByCredentials(username, passwordHash string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("username = ? AND password = ?", username, passwordHash).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
