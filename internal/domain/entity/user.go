package entity

import "time"

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет пользователя в системе
type User struct {
	ID       uint   `gorm:"primaryKey" db:"id" json:"id"`
	Username string `gorm:"size:50;not null;uniqueIndex" db:"username" json:"username"`
	Email    string `gorm:"size:100;not null;uniqueIndex" db:"email" json:"email"`
	// Password хранит SHA-256 дайджест пароля в hex-виде, никогда не сериализуется в JSON
	Password  string    `gorm:"size:64;not null" db:"password" json:"-"`
	Role      string    `gorm:"size:20;not null;default:'user'" db:"role" json:"role"` // "user" или "admin"
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (User) TableName() string {
	return "users"
}

// IsAdmin возвращает true, если пользователь является администратором
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
