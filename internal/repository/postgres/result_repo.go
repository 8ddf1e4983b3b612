package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Save сохраняет итоговый результат сдачи викторины
func (r *ResultRepo) Save(result *entity.Result) error {
	return r.db.Create(result).Error
}

// GetUserStats возвращает средний балл и количество результатов пользователя.
// COALESCE дает 0 вместо NULL, когда результатов еще нет.
func (r *ResultRepo) GetUserStats(userID uint) (float64, int64, error) {
	var stats struct {
		AvgScore     float64
		QuizzesTaken int64
	}
	err := r.db.Model(&entity.Result{}).
		Select("COALESCE(AVG(score), 0) AS avg_score, COUNT(id) AS quizzes_taken").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return 0, 0, err
	}
	return stats.AvgScore, stats.QuizzesTaken, nil
}

// ProgressRepo реализует repository.ProgressRepository
type ProgressRepo struct {
	db *gorm.DB
}

// NewProgressRepo создает новый репозиторий прогресса
func NewProgressRepo(db *gorm.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// CountLearnedWords возвращает количество уникальных слов с записями прогресса
func (r *ProgressRepo) CountLearnedWords(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Progress{}).
		Where("user_id = ?", userID).
		Distinct("vocab_id").
		Count(&count).Error
	return count, err
}
