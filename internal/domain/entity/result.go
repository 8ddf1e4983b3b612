package entity

import "time"

// Result представляет сохраненный итог одной сдачи викторины
type Result struct {
	ID     uint `gorm:"primaryKey" db:"id" json:"id"`
	UserID uint `gorm:"not null;index" db:"user_id" json:"user_id"`
	// QuizID — id вопроса из первого элемента отправленной пачки ответов
	QuizID         uint      `gorm:"not null;index" db:"quiz_id" json:"quiz_id"`
	Score          float64   `gorm:"not null" db:"score" json:"score"` // процент от 0 до 100
	TotalQuestions int       `gorm:"not null" db:"total_questions" json:"total_questions"`
	CompletedAt    time.Time `gorm:"not null" db:"completed_at" json:"completed_at"`
}

// TableName определяет имя таблицы для GORM
func (Result) TableName() string {
	return "results"
}
