package service

import (
	"fmt"
	"math"

	"github.com/yourusername/vocab-api/internal/domain/repository"
)

// ProgressStats — агрегированная статистика обучения пользователя
type ProgressStats struct {
	LearnedWords int64
	AverageScore float64
	QuizzesTaken int64
}

// ProgressService считает статистику обучения по результатам и прогрессу
type ProgressService struct {
	progressRepo repository.ProgressRepository
	resultRepo   repository.ResultRepository
}

// NewProgressService создает новый сервис прогресса
func NewProgressService(
	progressRepo repository.ProgressRepository,
	resultRepo repository.ResultRepository,
) (*ProgressService, error) {
	if progressRepo == nil {
		return nil, fmt.Errorf("ProgressRepository is required for ProgressService")
	}
	if resultRepo == nil {
		return nil, fmt.Errorf("ResultRepository is required for ProgressService")
	}
	return &ProgressService{
		progressRepo: progressRepo,
		resultRepo:   resultRepo,
	}, nil
}

// GetProgress возвращает количество изученных слов, средний балл
// (округленный до двух знаков) и количество пройденных викторин.
// Агрегаты считаются независимыми запросами, чтобы пользователь с
// результатами, но без записей прогресса, не получал нулевую статистику.
func (s *ProgressService) GetProgress(userID uint) (*ProgressStats, error) {
	learned, err := s.progressRepo.CountLearnedWords(userID)
	if err != nil {
		return nil, err
	}

	avgScore, taken, err := s.resultRepo.GetUserStats(userID)
	if err != nil {
		return nil, err
	}

	return &ProgressStats{
		LearnedWords: learned,
		AverageScore: math.Round(avgScore*100) / 100,
		QuizzesTaken: taken,
	}, nil
}
