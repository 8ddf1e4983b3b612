package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

// ============================================================================
// Моки для тестирования ResultService
// ============================================================================

// MockResultRepository реализует repository.ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Save(result *entity.Result) error {
	args := m.Called(result)
	return args.Error(0)
}

func (m *MockResultRepository) GetUserStats(userID uint) (float64, int64, error) {
	args := m.Called(userID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

// ============================================================================
// Тесты отправки результатов
// ============================================================================

func TestResultService_SubmitResult_HalfCorrect(t *testing.T) {
	// Arrange
	mockResultRepo := new(MockResultRepository)
	var saved *entity.Result
	mockResultRepo.On("Save", mock.AnythingOfType("*entity.Result")).Return(nil).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*entity.Result)
	})

	resultService, err := NewResultService(mockResultRepo)
	require.NoError(t, err)

	// Act
	summary, err := resultService.SubmitResult(5, []AnsweredItem{
		{QuizID: 11, IsCorrect: true},
		{QuizID: 12, IsCorrect: false},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 50.0, summary.Score)
	assert.Equal(t, 1, summary.Correct)
	assert.Equal(t, 2, summary.Total)

	require.NotNil(t, saved)
	assert.Equal(t, uint(5), saved.UserID)
	assert.Equal(t, uint(11), saved.QuizID, "Результат помечается quiz_id первого элемента пачки")
	assert.Equal(t, 50.0, saved.Score)
	assert.Equal(t, 2, saved.TotalQuestions)
	assert.WithinDuration(t, time.Now(), saved.CompletedAt, time.Minute)
	mockResultRepo.AssertExpectations(t)
}

func TestResultService_SubmitResult_AllCorrect(t *testing.T) {
	mockResultRepo := new(MockResultRepository)
	mockResultRepo.On("Save", mock.AnythingOfType("*entity.Result")).Return(nil)

	resultService, err := NewResultService(mockResultRepo)
	require.NoError(t, err)

	summary, err := resultService.SubmitResult(5, []AnsweredItem{{QuizID: 1, IsCorrect: true}})

	require.NoError(t, err)
	assert.Equal(t, 100.0, summary.Score)
	assert.Equal(t, 1, summary.Correct)
	assert.Equal(t, 1, summary.Total)
}

func TestResultService_SubmitResult_EmptyBatch(t *testing.T) {
	// Пустая пачка отклоняется до обращения к хранилищу
	mockResultRepo := new(MockResultRepository)

	resultService, err := NewResultService(mockResultRepo)
	require.NoError(t, err)

	summary, err := resultService.SubmitResult(5, nil)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockResultRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestResultService_SubmitResult_SaveError(t *testing.T) {
	mockResultRepo := new(MockResultRepository)
	mockResultRepo.On("Save", mock.AnythingOfType("*entity.Result")).Return(assert.AnError)

	resultService, err := NewResultService(mockResultRepo)
	require.NoError(t, err)

	summary, err := resultService.SubmitResult(5, []AnsweredItem{{QuizID: 1, IsCorrect: true}})

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, assert.AnError)
}
