package dto

// SubmitQuizResponse — итог подсчета очков за отправленную пачку ответов
type SubmitQuizResponse struct {
	Score   float64 `json:"score"`
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
}

// ProgressResponse — агрегированная статистика обучения пользователя
type ProgressResponse struct {
	LearnedWords int64   `json:"learned_words"`
	AverageScore float64 `json:"average_score"`
	QuizzesTaken int64   `json:"quizzes_taken"`
}
