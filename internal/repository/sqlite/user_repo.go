package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

// UserRepo реализует repository.UserRepository поверх sqlite
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo создает новый репозиторий пользователей
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create создает нового пользователя; нарушение уникальности
// имени или email превращается в ErrConflict
func (r *UserRepo) Create(user *entity.User) error {
	if user.Role == "" {
		user.Role = entity.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	res, err := r.db.Exec(
		"INSERT INTO users (username, email, password, role, created_at) VALUES (?, ?, ?, ?, ?)",
		user.Username, user.Email, user.Password, user.Role, user.CreatedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return apperrors.ErrConflict
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = uint(id)
	return nil
}

// GetByID возвращает пользователя по ID
func (r *UserRepo) GetByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.Get(&user, "SELECT id, username, email, password, role, created_at FROM users WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByCredentials возвращает пользователя по имени и дайджесту пароля
func (r *UserRepo) GetByCredentials(username, passwordHash string) (*entity.User, error) {
	var user entity.User
	err := r.db.Get(&user,
		"SELECT id, username, email, password, role, created_at FROM users WHERE username = ? AND password = ?",
		username, passwordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
