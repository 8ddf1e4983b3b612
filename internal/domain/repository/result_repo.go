package repository

import (
	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// ResultRepository определяет методы для работы с результатами викторин
type ResultRepository interface {
	Save(result *entity.Result) error
	// GetUserStats возвращает средний балл и количество результатов
	// пользователя. При отсутствии результатов средний балл равен 0.
	GetUserStats(userID uint) (avgScore float64, quizzesTaken int64, err error)
}

// ProgressRepository определяет методы для работы с прогрессом изучения слов
type ProgressRepository interface {
	// CountLearnedWords возвращает количество уникальных слов,
	// по которым у пользователя есть записи прогресса.
	CountLearnedWords(userID uint) (int64, error)
}
