package seed

import (
	"github.com/yourusername/vocab-api/internal/domain/entity"
)

// Учетные данные администратора, создаваемого при первом наполнении
const (
	AdminUsername = "admin"
	AdminEmail    = "admin@example.com"
	AdminPassword = "admin123"
)

// SampleTopics — стартовый набор тем
var SampleTopics = []entity.Topic{
	{Name: "Family", Level: "A1", Description: "Basic family vocabulary"},
	{Name: "Travel", Level: "A2", Description: "Travel-related words"},
	{Name: "Business", Level: "B1", Description: "Business English vocabulary"},
	{Name: "Technology", Level: "B2", Description: "Technology terms"},
}

// SampleVocabularies — стартовый словарь; TopicID ссылается на порядковый
// номер темы из SampleTopics (нумерация с 1, как при первом наполнении)
var SampleVocabularies = []entity.Vocabulary{
	{Word: "father", Meaning: "bố", Example: "My father is a teacher.", Pronunciation: "/ˈfɑːðər/", TopicID: 1},
	{Word: "mother", Meaning: "mẹ", Example: "My mother cooks delicious food.", Pronunciation: "/ˈmʌðər/", TopicID: 1},
	{Word: "brother", Meaning: "anh/em trai", Example: "I have one brother.", Pronunciation: "/ˈbrʌðər/", TopicID: 1},
	{Word: "sister", Meaning: "chị/em gái", Example: "My sister is younger than me.", Pronunciation: "/ˈsɪstər/", TopicID: 1},
	{Word: "airport", Meaning: "sân bay", Example: "We arrived at the airport early.", Pronunciation: "/ˈeərpɔːrt/", TopicID: 2},
	{Word: "hotel", Meaning: "khách sạn", Example: "The hotel was very comfortable.", Pronunciation: "/hoʊˈtel/", TopicID: 2},
	{Word: "passport", Meaning: "hộ chiếu", Example: "Don't forget your passport.", Pronunciation: "/ˈpæspɔːrt/", TopicID: 2},
	{Word: "meeting", Meaning: "cuộc họp", Example: "We have a meeting at 3 PM.", Pronunciation: "/ˈmiːtɪŋ/", TopicID: 3},
	{Word: "computer", Meaning: "máy tính", Example: "I use my computer every day.", Pronunciation: "/kəmˈpjuːtər/", TopicID: 4},
}

// SampleQuizzes — стартовые вопросы викторин
var SampleQuizzes = []entity.Quiz{
	{TopicID: 1, Question: `What does "father" mean?`, OptionA: "bố", OptionB: "mẹ", OptionC: "anh trai", OptionD: "chị gái", CorrectAnswer: "A"},
	{TopicID: 1, Question: `What does "sister" mean?`, OptionA: "bố", OptionB: "mẹ", OptionC: "anh trai", OptionD: "chị/em gái", CorrectAnswer: "D"},
	{TopicID: 2, Question: `What does "airport" mean?`, OptionA: "khách sạn", OptionB: "sân bay", OptionC: "hộ chiếu", OptionD: "máy bay", CorrectAnswer: "B"},
	{TopicID: 3, Question: `What does "meeting" mean?`, OptionA: "cuộc họp", OptionB: "văn phòng", OptionC: "công ty", OptionD: "nhân viên", CorrectAnswer: "A"},
}
