package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProgressRepository реализует repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) CountLearnedWords(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// ============================================================================
// Тесты статистики прогресса
// ============================================================================

func TestProgressService_GetProgress_NewUser(t *testing.T) {
	// Пользователь без результатов получает нулевую статистику, а не ошибку
	mockProgressRepo := new(MockProgressRepository)
	mockResultRepo := new(MockResultRepository)
	mockProgressRepo.On("CountLearnedWords", uint(1)).Return(int64(0), nil)
	mockResultRepo.On("GetUserStats", uint(1)).Return(0.0, int64(0), nil)

	progressService, err := NewProgressService(mockProgressRepo, mockResultRepo)
	require.NoError(t, err)

	stats, err := progressService.GetProgress(1)

	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.LearnedWords)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.Equal(t, int64(0), stats.QuizzesTaken)
}

func TestProgressService_GetProgress_WithResults(t *testing.T) {
	mockProgressRepo := new(MockProgressRepository)
	mockResultRepo := new(MockResultRepository)
	mockProgressRepo.On("CountLearnedWords", uint(2)).Return(int64(12), nil)
	mockResultRepo.On("GetUserStats", uint(2)).Return(75.0, int64(4), nil)

	progressService, err := NewProgressService(mockProgressRepo, mockResultRepo)
	require.NoError(t, err)

	stats, err := progressService.GetProgress(2)

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.LearnedWords)
	assert.Equal(t, 75.0, stats.AverageScore)
	assert.Equal(t, int64(4), stats.QuizzesTaken)
}

func TestProgressService_GetProgress_RoundsAverage(t *testing.T) {
	// Средний балл округляется до двух знаков после запятой
	mockProgressRepo := new(MockProgressRepository)
	mockResultRepo := new(MockResultRepository)
	mockProgressRepo.On("CountLearnedWords", uint(3)).Return(int64(5), nil)
	mockResultRepo.On("GetUserStats", uint(3)).Return(66.66666666666667, int64(3), nil)

	progressService, err := NewProgressService(mockProgressRepo, mockResultRepo)
	require.NoError(t, err)

	stats, err := progressService.GetProgress(3)

	require.NoError(t, err)
	assert.Equal(t, 66.67, stats.AverageScore)
}

func TestProgressService_GetProgress_StatsWithoutProgressRows(t *testing.T) {
	// Результаты викторин учитываются, даже если записей прогресса нет
	mockProgressRepo := new(MockProgressRepository)
	mockResultRepo := new(MockResultRepository)
	mockProgressRepo.On("CountLearnedWords", uint(4)).Return(int64(0), nil)
	mockResultRepo.On("GetUserStats", uint(4)).Return(80.0, int64(2), nil)

	progressService, err := NewProgressService(mockProgressRepo, mockResultRepo)
	require.NoError(t, err)

	stats, err := progressService.GetProgress(4)

	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.LearnedWords)
	assert.Equal(t, 80.0, stats.AverageScore)
	assert.Equal(t, int64(2), stats.QuizzesTaken)
}
