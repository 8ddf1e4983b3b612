package entity

// Vocabulary представляет словарную единицу внутри темы
type Vocabulary struct {
	ID            uint   `gorm:"primaryKey" db:"id" json:"id"`
	Word          string `gorm:"size:100;not null" db:"word" json:"word"`
	Meaning       string `gorm:"size:255;not null" db:"meaning" json:"meaning"`
	Example       string `gorm:"type:text" db:"example" json:"example"`
	Pronunciation string `gorm:"size:100" db:"pronunciation" json:"pronunciation"`
	TopicID       uint   `gorm:"not null;index" db:"topic_id" json:"topic_id"`
}

// TableName определяет имя таблицы для GORM
func (Vocabulary) TableName() string {
	return "vocabularies"
}
