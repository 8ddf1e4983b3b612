package entity

import "time"

// Progress представляет статус изучения отдельного слова пользователем
type Progress struct {
	ID           uint      `gorm:"primaryKey" db:"id" json:"id"`
	UserID       uint      `gorm:"not null;index" db:"user_id" json:"user_id"`
	VocabID      uint      `gorm:"not null;index" db:"vocab_id" json:"vocab_id"`
	Status       string    `gorm:"size:20;not null;default:'not_learned'" db:"status" json:"status"`
	Score        int       `gorm:"not null;default:0" db:"score" json:"score"`
	LastReviewed time.Time `db:"last_reviewed" json:"last_reviewed"`
}

// TableName определяет имя таблицы для GORM
func (Progress) TableName() string {
	return "progress"
}
