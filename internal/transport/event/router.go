package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/internal/handler/dto"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
	"github.com/yourusername/vocab-api/internal/service"
	"github.com/yourusername/vocab-api/pkg/auth"
	"github.com/yourusername/vocab-api/pkg/logger"
)

// Префикс пути, который шлюз добавляет перед маршрутом функции
const functionPathPrefix = "/.netlify/functions/api"

// corsHeaders проставляются на каждый ответ конверта
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
	"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
	"Content-Type":                 "application/json",
}

// Router переводит конверты событий в вызовы тех же сервисов,
// что обслуживают HTTP-маршруты постоянного сервера
type Router struct {
	authService     *service.AuthService
	contentService  *service.ContentService
	resultService   *service.ResultService
	progressService *service.ProgressService
	jwtService      *auth.JWTService
}

// NewRouter создает новый маршрутизатор конвертов
func NewRouter(
	authService *service.AuthService,
	contentService *service.ContentService,
	resultService *service.ResultService,
	progressService *service.ProgressService,
	jwtService *auth.JWTService,
) *Router {
	return &Router{
		authService:     authService,
		contentService:  contentService,
		resultService:   resultService,
		progressService: progressService,
		jwtService:      jwtService,
	}
}

// Handle обрабатывает один конверт события и возвращает конверт ответа
func (r *Router) Handle(req Request) Response {
	// Preflight-запросы не несут полезной нагрузки
	if req.HTTPMethod == http.MethodOptions {
		return respond(http.StatusOK, nil)
	}

	path := strings.TrimPrefix(req.Path, functionPathPrefix)
	path = strings.TrimPrefix(path, "/api")
	path = strings.TrimSuffix(path, "/")

	switch {
	case path == "/register" && req.HTTPMethod == http.MethodPost:
		return r.register(req)
	case path == "/login" && req.HTTPMethod == http.MethodPost:
		return r.login(req)
	case path == "/topics" && req.HTTPMethod == http.MethodGet:
		return r.listTopics()
	case strings.HasPrefix(path, "/topics/") && strings.HasSuffix(path, "/vocabularies") && req.HTTPMethod == http.MethodGet:
		return r.listVocabularies(path)
	case strings.HasPrefix(path, "/topics/") && strings.HasSuffix(path, "/quiz") && req.HTTPMethod == http.MethodGet:
		return r.listQuiz(path)
	case path == "/quiz/submit" && req.HTTPMethod == http.MethodPost:
		return r.submitQuiz(req)
	case path == "/progress" && req.HTTPMethod == http.MethodGet:
		return r.progress(req)
	default:
		return respond(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
}

func (r *Router) register(req Request) Response {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return respond(http.StatusBadRequest, dto.ErrorResponse{Success: false, Message: "Invalid request data"})
	}

	user, err := r.authService.RegisterUser(body.Username, body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			return respond(http.StatusConflict, dto.ErrorResponse{Success: false, Message: "Username or email already exists"})
		case errors.Is(err, apperrors.ErrValidation):
			return respond(http.StatusBadRequest, dto.ErrorResponse{Success: false, Message: "Invalid request data"})
		default:
			return internalError("register failed", err)
		}
	}
	return respond(http.StatusOK, dto.RegisterResponse{Success: true, UserID: user.ID})
}

func (r *Router) login(req Request) Response {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return respond(http.StatusBadRequest, dto.ErrorResponse{Success: false, Message: "Invalid request data"})
	}

	out, err := r.authService.LoginUser(body.Username, body.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return respond(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Message: "Invalid credentials"})
		}
		return internalError("login failed", err)
	}
	return respond(http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   out.Token,
		User:    dto.NewUserDTO(out.User),
	})
}

func (r *Router) listTopics() Response {
	topics, err := r.contentService.ListTopics()
	if err != nil {
		return internalError("failed to list topics", err)
	}
	if topics == nil {
		topics = []entity.Topic{}
	}
	return respond(http.StatusOK, topics)
}

func (r *Router) listVocabularies(path string) Response {
	topicID, ok := topicIDFromPath(path)
	if !ok {
		return respond(http.StatusBadRequest, map[string]string{"error": "Invalid topic id"})
	}
	vocabularies, err := r.contentService.ListVocabulary(topicID)
	if err != nil {
		return internalError("failed to list vocabularies", err)
	}
	if vocabularies == nil {
		vocabularies = []entity.Vocabulary{}
	}
	return respond(http.StatusOK, vocabularies)
}

func (r *Router) listQuiz(path string) Response {
	topicID, ok := topicIDFromPath(path)
	if !ok {
		return respond(http.StatusBadRequest, map[string]string{"error": "Invalid topic id"})
	}
	quizzes, err := r.contentService.ListQuiz(topicID)
	if err != nil {
		return internalError("failed to list quiz questions", err)
	}
	return respond(http.StatusOK, dto.NewQuizDTOList(quizzes))
}

func (r *Router) submitQuiz(req Request) Response {
	claims, errResp := r.authenticate(req)
	if errResp != nil {
		return *errResp
	}

	var body struct {
		Results []struct {
			QuizID    uint `json:"quiz_id"`
			IsCorrect bool `json:"is_correct"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return respond(http.StatusBadRequest, map[string]string{"error": "Invalid request data"})
	}

	items := make([]service.AnsweredItem, 0, len(body.Results))
	for _, item := range body.Results {
		items = append(items, service.AnsweredItem{QuizID: item.QuizID, IsCorrect: item.IsCorrect})
	}

	summary, err := r.resultService.SubmitResult(claims.UserID, items)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return respond(http.StatusBadRequest, map[string]string{"error": "Result batch must not be empty"})
		}
		return internalError("failed to submit quiz result", err)
	}
	return respond(http.StatusOK, dto.SubmitQuizResponse{
		Score:   summary.Score,
		Correct: summary.Correct,
		Total:   summary.Total,
	})
}

func (r *Router) progress(req Request) Response {
	claims, errResp := r.authenticate(req)
	if errResp != nil {
		return *errResp
	}

	stats, err := r.progressService.GetProgress(claims.UserID)
	if err != nil {
		return internalError("failed to get progress", err)
	}
	return respond(http.StatusOK, dto.ProgressResponse{
		LearnedWords: stats.LearnedWords,
		AverageScore: stats.AverageScore,
		QuizzesTaken: stats.QuizzesTaken,
	})
}

// authenticate проверяет bearer-токен из заголовков конверта
func (r *Router) authenticate(req Request) (*auth.JWTCustomClaims, *Response) {
	authHeader := req.Header("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		resp := respond(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return nil, &resp
	}

	claims, err := r.jwtService.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		msg := "Invalid token"
		if errors.Is(err, apperrors.ErrExpiredToken) {
			msg = "Token is expired"
		}
		resp := respond(http.StatusUnauthorized, map[string]string{"error": msg})
		return nil, &resp
	}
	return claims, nil
}

// topicIDFromPath достает числовой id темы из пути вида /topics/{id}/...
func topicIDFromPath(path string) (uint, bool) {
	parts := strings.Split(path, "/")
	if len(parts) < 3 {
		return 0, false
	}
	id, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func respond(status int, body interface{}) Response {
	headers := make(map[string]string, len(corsHeaders))
	for k, v := range corsHeaders {
		headers[k] = v
	}

	encoded := ""
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return Response{
				StatusCode: http.StatusInternalServerError,
				Headers:    headers,
				Body:       `{"error":"internal server error"}`,
			}
		}
		encoded = string(raw)
	}
	return Response{StatusCode: status, Headers: headers, Body: encoded}
}

func internalError(msg string, err error) Response {
	logger.Log.Error(msg, zap.Error(err))
	return respond(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
