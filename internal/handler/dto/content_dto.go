package dto

import (
	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// QuizDTO представляет вопрос викторины с вариантами, сгруппированными
// по буквам. Поле correct_answer отдается клиенту вместе с вопросом:
// развернутый фронтенд проверяет ответы локально по этому полю.
type QuizDTO struct {
	ID            uint              `json:"id"`
	TopicID       uint              `json:"topic_id"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
}

// NewQuizDTO преобразует сущность вопроса в транспортное представление
func NewQuizDTO(q entity.Quiz) QuizDTO {
	return QuizDTO{
		ID:            q.ID,
		TopicID:       q.TopicID,
		Question:      q.Question,
		Options:       q.Options(),
		CorrectAnswer: q.CorrectAnswer,
	}
}

// NewQuizDTOList преобразует срез вопросов; всегда возвращает не-nil срез,
// чтобы пустая тема сериализовалась как [] а не null
func NewQuizDTOList(quizzes []entity.Quiz) []QuizDTO {
	out := make([]QuizDTO, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, NewQuizDTO(q))
	}
	return out
}
