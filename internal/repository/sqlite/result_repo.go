package sqlite

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// ResultRepo реализует repository.ResultRepository поверх sqlite
type ResultRepo struct {
	db *sqlx.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *sqlx.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Save сохраняет итоговый результат сдачи викторины
func (r *ResultRepo) Save(result *entity.Result) error {
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now()
	}
	res, err := r.db.Exec(
		"INSERT INTO results (user_id, quiz_id, score, total_questions, completed_at) VALUES (?, ?, ?, ?, ?)",
		result.UserID, result.QuizID, result.Score, result.TotalQuestions, result.CompletedAt,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	result.ID = uint(id)
	return nil
}

// GetUserStats возвращает средний балл и количество результатов пользователя
func (r *ResultRepo) GetUserStats(userID uint) (float64, int64, error) {
	var stats struct {
		AvgScore     float64 `db:"avg_score"`
		QuizzesTaken int64   `db:"quizzes_taken"`
	}
	err := r.db.Get(&stats,
		"SELECT COALESCE(AVG(score), 0) AS avg_score, COUNT(id) AS quizzes_taken FROM results WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return 0, 0, err
	}
	return stats.AvgScore, stats.QuizzesTaken, nil
}

// ProgressRepo реализует repository.ProgressRepository поверх sqlite
type ProgressRepo struct {
	db *sqlx.DB
}

// NewProgressRepo создает новый репозиторий прогресса
func NewProgressRepo(db *sqlx.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// CountLearnedWords возвращает количество уникальных слов с записями прогресса
func (r *ProgressRepo) CountLearnedWords(userID uint) (int64, error) {
	var count int64
	err := r.db.Get(&count,
		"SELECT COUNT(DISTINCT vocab_id) FROM progress WHERE user_id = ?",
		userID,
	)
	return count, err
}
