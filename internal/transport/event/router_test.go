package event

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
	"github.com/yourusername/vocab-api/internal/service"
	"github.com/yourusername/vocab-api/pkg/auth"
)

// ============================================================================
// Стабы хранилищ в памяти для тестирования маршрутизатора конвертов
// ============================================================================

type stubUserRepo struct {
	users  map[string]*entity.User // username -> user
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*entity.User), nextID: 1}
}

func (r *stubUserRepo) Create(user *entity.User) error {
	if _, exists := r.users[user.Username]; exists {
		return apperrors.ErrConflict
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Username] = user
	return nil
}

func (r *stubUserRepo) GetByID(id uint) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubUserRepo) GetByCredentials(username, passwordHash string) (*entity.User, error) {
	u, exists := r.users[username]
	if !exists || u.Password != passwordHash {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

type stubTopicRepo struct {
	topics []entity.Topic
}

func (r *stubTopicRepo) GetAll() ([]entity.Topic, error) { return r.topics, nil }

func (r *stubTopicRepo) GetByName(name string) (*entity.Topic, error) {
	for i := range r.topics {
		if r.topics[i].Name == name {
			return &r.topics[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *stubTopicRepo) Create(topic *entity.Topic) error {
	topic.ID = uint(len(r.topics) + 1)
	r.topics = append(r.topics, *topic)
	return nil
}

type stubVocabRepo struct {
	vocabularies []entity.Vocabulary
}

func (r *stubVocabRepo) GetByTopic(topicID uint) ([]entity.Vocabulary, error) {
	var out []entity.Vocabulary
	for _, v := range r.vocabularies {
		if v.TopicID == topicID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *stubVocabRepo) Create(vocab *entity.Vocabulary) error {
	vocab.ID = uint(len(r.vocabularies) + 1)
	r.vocabularies = append(r.vocabularies, *vocab)
	return nil
}

type stubQuizRepo struct {
	quizzes []entity.Quiz
}

func (r *stubQuizRepo) GetByTopic(topicID uint) ([]entity.Quiz, error) {
	var out []entity.Quiz
	for _, q := range r.quizzes {
		if q.TopicID == topicID {
			out = append(out, q)
		}
	}
	return out, nil
}

type stubResultRepo struct {
	saved []entity.Result
}

func (r *stubResultRepo) Save(result *entity.Result) error {
	r.saved = append(r.saved, *result)
	return nil
}

func (r *stubResultRepo) GetUserStats(userID uint) (float64, int64, error) {
	var sum float64
	var count int64
	for _, res := range r.saved {
		if res.UserID == userID {
			sum += res.Score
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}

type stubProgressRepo struct {
	learned int64
}

func (r *stubProgressRepo) CountLearnedWords(userID uint) (int64, error) {
	return r.learned, nil
}

func newTestRouter(t *testing.T) (*Router, *auth.JWTService, *stubUserRepo, *stubResultRepo) {
	t.Helper()

	userRepo := newStubUserRepo()
	topicRepo := &stubTopicRepo{topics: []entity.Topic{{ID: 1, Name: "Family", Level: "A1"}}}
	vocabRepo := &stubVocabRepo{vocabularies: []entity.Vocabulary{
		{ID: 1, Word: "mother", Meaning: "mẹ", TopicID: 1},
	}}
	quizRepo := &stubQuizRepo{quizzes: []entity.Quiz{{
		ID: 1, TopicID: 1, Question: "What does 'mother' mean?",
		OptionA: "Mẹ", OptionB: "Bố", OptionC: "Anh trai", OptionD: "Chị gái",
		CorrectAnswer: "A",
	}}}
	resultRepo := &stubResultRepo{}
	progressRepo := &stubProgressRepo{learned: 3}

	jwtService, err := auth.NewJWTService("test-secret", 1)
	require.NoError(t, err)

	authService, err := service.NewAuthService(userRepo, jwtService)
	require.NoError(t, err)
	contentService, err := service.NewContentService(topicRepo, vocabRepo, quizRepo)
	require.NoError(t, err)
	resultService, err := service.NewResultService(resultRepo)
	require.NoError(t, err)
	progressService, err := service.NewProgressService(progressRepo, resultRepo)
	require.NoError(t, err)

	return NewRouter(authService, contentService, resultService, progressService, jwtService),
		jwtService, userRepo, resultRepo
}

func issueToken(t *testing.T, jwtService *auth.JWTService, userRepo *stubUserRepo) string {
	t.Helper()
	user := &entity.User{Username: "student", Email: "student@example.com", Password: auth.HashPassword("password123"), Role: entity.RoleUser}
	require.NoError(t, userRepo.Create(user))
	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)
	return token
}

// ============================================================================
// Тесты маршрутизации конвертов
// ============================================================================

func TestRouter_Options(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	resp := router.Handle(Request{HTTPMethod: http.MethodOptions, Path: "/api/topics"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Empty(t, resp.Body)
}

func TestRouter_Register(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	resp := router.Handle(Request{
		HTTPMethod: http.MethodPost,
		Path:       "/.netlify/functions/api/register",
		Body:       `{"username":"newuser","email":"new@example.com","password":"password123"}`,
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success": true, "user_id": 1}`, resp.Body)
}

func TestRouter_Register_Duplicate(t *testing.T) {
	router, jwtService, userRepo, _ := newTestRouter(t)
	issueToken(t, jwtService, userRepo) // создает пользователя student

	resp := router.Handle(Request{
		HTTPMethod: http.MethodPost,
		Path:       "/api/register",
		Body:       `{"username":"student","email":"student@example.com","password":"password123"}`,
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.JSONEq(t, `{"success": false, "message": "Username or email already exists"}`, resp.Body)
}

func TestRouter_Login(t *testing.T) {
	router, jwtService, userRepo, _ := newTestRouter(t)
	issueToken(t, jwtService, userRepo)

	resp := router.Handle(Request{
		HTTPMethod: http.MethodPost,
		Path:       "/api/login",
		Body:       `{"username":"student","password":"password123"}`,
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "student", body.User.Username)
	assert.Equal(t, entity.RoleUser, body.User.Role)
}

func TestRouter_Login_WrongPassword(t *testing.T) {
	router, jwtService, userRepo, _ := newTestRouter(t)
	issueToken(t, jwtService, userRepo)

	resp := router.Handle(Request{
		HTTPMethod: http.MethodPost,
		Path:       "/api/login",
		Body:       `{"username":"student","password":"wrong"}`,
	})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"success": false, "message": "Invalid credentials"}`, resp.Body)
}

func TestRouter_ListTopics(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	resp := router.Handle(Request{HTTPMethod: http.MethodGet, Path: "/api/topics"})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var topics []entity.Topic
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &topics))
	require.Len(t, topics, 1)
	assert.Equal(t, "Family", topics[0].Name)
}

func TestRouter_ListQuiz(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	resp := router.Handle(Request{HTTPMethod: http.MethodGet, Path: "/api/topics/1/quiz"})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var quizzes []struct {
		Options       map[string]string `json:"options"`
		CorrectAnswer string            `json:"correct_answer"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &quizzes))
	require.Len(t, quizzes, 1)
	assert.Equal(t, "Mẹ", quizzes[0].Options["A"])
	assert.Equal(t, "A", quizzes[0].CorrectAnswer)
}

func TestRouter_SubmitQuiz(t *testing.T) {
	router, jwtService, userRepo, resultRepo := newTestRouter(t)
	token := issueToken(t, jwtService, userRepo)

	resp := router.Handle(Request{
		HTTPMethod: http.MethodPost,
		Path:       "/api/quiz/submit",
		Headers:    map[string]string{"authorization": "Bearer " + token}, // регистр заголовка не важен
		Body:       `{"results":[{"quiz_id":1,"is_correct":true},{"quiz_id":2,"is_correct":false}]}`,
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"score": 50, "correct": 1, "total": 2}`, resp.Body)
	require.Len(t, resultRepo.saved, 1)
	assert.Equal(t, uint(1), resultRepo.saved[0].QuizID)
}

func TestRouter_SubmitQuiz_Unauthorized(t *testing.T) {
	router, _, _, resultRepo := newTestRouter(t)

	resp := router.Handle(Request{
		HTTPMethod: http.MethodPost,
		Path:       "/api/quiz/submit",
		Body:       `{"results":[{"quiz_id":1,"is_correct":true}]}`,
	})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resultRepo.saved)
}

func TestRouter_SubmitQuiz_EmptyBatch(t *testing.T) {
	router, jwtService, userRepo, resultRepo := newTestRouter(t)
	token := issueToken(t, jwtService, userRepo)

	resp := router.Handle(Request{
		HTTPMethod: http.MethodPost,
		Path:       "/api/quiz/submit",
		Headers:    map[string]string{"Authorization": "Bearer " + token},
		Body:       `{"results":[]}`,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, resultRepo.saved, "Пустая пачка не должна сохранять результат")
}

func TestRouter_Progress(t *testing.T) {
	router, jwtService, userRepo, resultRepo := newTestRouter(t)
	token := issueToken(t, jwtService, userRepo)
	resultRepo.saved = append(resultRepo.saved,
		entity.Result{UserID: 1, Score: 100},
		entity.Result{UserID: 1, Score: 50},
	)

	resp := router.Handle(Request{
		HTTPMethod: http.MethodGet,
		Path:       "/api/progress",
		Headers:    map[string]string{"Authorization": "Bearer " + token},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"learned_words": 3, "average_score": 75, "quizzes_taken": 2}`, resp.Body)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	resp := router.Handle(Request{HTTPMethod: http.MethodGet, Path: "/api/unknown"})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error": "Not found"}`, resp.Body)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
}
