package models

import "time"

const (
	QuestionTypeMultiple  = "multiple"
	QuestionTypeTrueFalse = "truefalse"
)

// Question is one question of a quiz, stored inline on the quiz record as
// JSON. CorrectAnswer is a zero-based index into Options. Type "truefalse"
// always carries exactly two options.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Type          string   `json:"type"`
}

// Quiz is a self-service quiz authored through the portal. Code is the
// short access code handed out at creation; it is stored uppercase and
// unique across all quizzes.
type Quiz struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Subject     string     `gorm:"size:20;not null;index" json:"subject"`
	Creator     string     `gorm:"size:100;not null" json:"creator"`
	Description string     `gorm:"size:1000" json:"description,omitempty"`
	Code        string     `gorm:"size:8;not null;uniqueIndex" json:"code"`
	Questions   []Question `gorm:"serializer:json" json:"questions"`
	CreatedAt   time.Time  `json:"createdAt"`
}
