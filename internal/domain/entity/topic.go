package entity

// Topic представляет тему — группу слов и вопросов одного уровня сложности
type Topic struct {
	ID   uint   `gorm:"primaryKey" db:"id" json:"id"`
	Name string `gorm:"size:100;not null" db:"name" json:"name"`
	// Level — текстовая метка уровня владения языком ("A1", "B2" и т.д.)
	Level       string `gorm:"size:10;not null" db:"level" json:"level"`
	Description string `gorm:"type:text" db:"description" json:"description"`
}

// TableName определяет имя таблицы для GORM
func (Topic) TableName() string {
	return "topics"
}
