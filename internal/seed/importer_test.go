package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/vocab-api/internal/domain/entity"
	apperrors "github.com/yourusername/vocab-api/internal/pkg/errors"
)

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
	created []entity.Vocabulary
}

func (r *stubVocabRepo) GetByTopic(topicID uint) ([]entity.Vocabulary, error) {
	return nil, nil
}

func (r *stubVocabRepo) Create(vocab *entity.Vocabulary) error {
	vocab.ID = uint(len(r.created) + 1)
	r.created = append(r.created, *vocab)
	return nil
}

func TestParseRow(t *testing.T) {
	entry, ok := parseRow([]string{" mother ", "mẹ", "My mother is kind.", "/ˈmʌðər/", "Family", "A1"})
	require.True(t, ok)
	assert.Equal(t, "mother", entry.Word, "Значения колонок должны очищаться от пробелов")
	assert.Equal(t, "Family", entry.Topic)

	// Строка без обязательных колонок пропускается
	_, ok = parseRow([]string{"mother", "", "", "", "Family"})
	assert.False(t, ok)
	_, ok = parseRow([]string{"mother", "mẹ"})
	assert.False(t, ok, "Строка без темы не импортируется")
	_, ok = parseRow(nil)
	assert.False(t, ok)
}

func TestImporter_ImportCSV(t *testing.T) {
	// Arrange
	csvPath := filepath.Join(t.TempDir(), "vocab.csv")
	content := "word,meaning,example,pronunciation,topic,level\n" +
		"mother,mẹ,My mother is kind.,/ˈmʌðər/,Family,A1\n" +
		"father,bố,,,Family,A1\n" +
		",missing word,,,Family,A1\n" +
		"passport,hộ chiếu,,,Travel,A2\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	topicRepo := &stubTopicRepo{topics: []entity.Topic{{ID: 1, Name: "Family", Level: "A1"}}}
	vocabRepo := &stubVocabRepo{}
	importer := NewImporter(topicRepo, vocabRepo)

	// Act
	result, err := importer.Import(DefaultImportConfig(csvPath))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.TopicsCreated, "Тема Travel должна быть создана по ходу импорта")
	assert.Equal(t, 1, result.Skipped)

	require.Len(t, vocabRepo.created, 3)
	assert.Equal(t, uint(1), vocabRepo.created[0].TopicID)
	assert.Equal(t, uint(2), vocabRepo.created[2].TopicID)

	travel, err := topicRepo.GetByName("Travel")
	require.NoError(t, err)
	assert.Equal(t, "A2", travel.Level)
}

func TestImporter_UnsupportedFormat(t *testing.T) {
	importer := NewImporter(&stubTopicRepo{}, &stubVocabRepo{})

	_, err := importer.Import(DefaultImportConfig("/tmp/vocab.txt"))

	assert.Error(t, err)
}
