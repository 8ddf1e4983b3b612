package entity

// Quiz представляет один вопрос викторины с четырьмя вариантами ответа
type Quiz struct {
	ID       uint   `gorm:"primaryKey" db:"id" json:"id"`
	TopicID  uint   `gorm:"not null;index" db:"topic_id" json:"topic_id"`
	Question string `gorm:"type:text;not null" db:"question" json:"question"`
	OptionA  string `gorm:"size:255;not null" db:"option_a" json:"option_a"`
	OptionB  string `gorm:"size:255;not null" db:"option_b" json:"option_b"`
	OptionC  string `gorm:"size:255;not null" db:"option_c" json:"option_c"`
	OptionD  string `gorm:"size:255;not null" db:"option_d" json:"option_d"`
	// CorrectAnswer — буква правильного варианта: "A", "B", "C" или "D"
	CorrectAnswer string `gorm:"size:1;not null" db:"correct_answer" json:"correct_answer"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}

// Options возвращает варианты ответа, сгруппированные по буквам
func (q *Quiz) Options() map[string]string {
	return map[string]string{
		"A": q.OptionA,
		"B": q.OptionB,
		"C": q.OptionC,
		"D": q.OptionD,
	}
}
