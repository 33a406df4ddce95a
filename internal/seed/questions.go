package seed

import "deneme-api/internal/domain"

// Questions returns the initial question set: one mock exam ("Deneme 1")
// with one question per section.
func Questions() []domain.Question {
	return []domain.Question{
		{
			ID:           "e1_q1",
			ExamID:       "deneme-1",
			ExamTitle:    "Deneme 1",
			Section:      "Matematik",
			Text:         "3 × 4 = ?",
			Choices:      []string{"6", "7", "12", "14"},
			CorrectIndex: 2,
			Explanation:  "3 çarpı 4 = 12",
		},
		{
			ID:           "e1_q2",
			ExamID:       "deneme-1",
			ExamTitle:    "Deneme 1",
			Section:      "Fizik",
			Text:         "Işık hızı yaklaşık olarak kaçtır?",
			Choices:      []string{"3×10^8 m/s", "3×10^6 m/s", "3×10^5 km/s", "3000 km/s"},
			CorrectIndex: 0,
			Explanation:  "Yaklaşık 3×10^8 m/s",
		},
		{
			ID:           "e1_q3",
			ExamID:       "deneme-1",
			ExamTitle:    "Deneme 1",
			Section:      "Kimya",
			Text:         "Su molekülünün kimyasal formülü nedir?",
			Choices:      []string{"H2", "O2", "CO2", "H2O"},
			CorrectIndex: 3,
			Explanation:  "Su, H2O'dur.",
		},
	}
}
