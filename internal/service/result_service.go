package service

import (
	"fmt"
	"time"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/domain/repository"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

// AnsweredItem — один отвеченный вопрос в отправленной пачке
type AnsweredItem struct {
	QuizID    uint
	IsCorrect bool
}

// ScoreSummary — итог подсчета очков за пачку ответов
type ScoreSummary struct {
	Score   float64
	Correct int
	Total   int
}

// ResultService принимает пачки ответов и сохраняет итоговые результаты
type ResultService struct {
	resultRepo repository.ResultRepository
}

// NewResultService создает новый сервис результатов
func NewResultService(resultRepo repository.ResultRepository) (*ResultService, error) {
	if resultRepo == nil {
		return nil, fmt.Errorf("ResultRepository is required for ResultService")
	}
	return &ResultService{resultRepo: resultRepo}, nil
}

// SubmitResult считает процент правильных ответов и сохраняет одну строку
// результата. Строка помечается quiz_id первого элемента пачки.
// Пустая пачка отклоняется ошибкой валидации и никогда не пишет строку.
func (s *ResultService) SubmitResult(userID uint, items []AnsweredItem) (*ScoreSummary, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: result batch must not be empty", apperrors.ErrValidation)
	}

	correct := 0
	for _, item := range items {
		if item.IsCorrect {
			correct++
		}
	}
	total := len(items)
	score := float64(correct) / float64(total) * 100

	result := &entity.Result{
		UserID:         userID,
		QuizID:         items[0].QuizID,
		Score:          score,
		TotalQuestions: total,
		CompletedAt:    time.Now(),
	}
	if err := s.resultRepo.Save(result); err != nil {
		return nil, err
	}

	return &ScoreSummary{Score: score, Correct: correct, Total: total}, nil
}
