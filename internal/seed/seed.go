package seed

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	"github.com/yourusername/vocab-api/pkg/auth"
)

// Apply наполняет базу стартовыми данными. Повторный вызов ничего не делает:
// наличие хотя бы одной темы считается признаком уже наполненной базы.
func Apply(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Topic{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing topics: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range SampleTopics {
			topic := SampleTopics[i]
			topic.ID = 0
			if err := tx.Create(&topic).Error; err != nil {
				return fmt.Errorf("failed to seed topic %q: %w", topic.Name, err)
			}
		}
		for i := range SampleVocabularies {
			vocab := SampleVocabularies[i]
			vocab.ID = 0
			if err := tx.Create(&vocab).Error; err != nil {
				return fmt.Errorf("failed to seed vocabulary %q: %w", vocab.Word, err)
			}
		}
		for i := range SampleQuizzes {
			quiz := SampleQuizzes[i]
			quiz.ID = 0
			if err := tx.Create(&quiz).Error; err != nil {
				return fmt.Errorf("failed to seed quiz %d: %w", i+1, err)
			}
		}

		admin := entity.User{
			Username:  AdminUsername,
			Email:     AdminEmail,
			Password:  auth.HashPassword(AdminPassword),
			Role:      entity.RoleAdmin,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		return nil
	})
}
