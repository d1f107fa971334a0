package models

import "time"

// QuizAttempt is one completed, scored run of a quiz. Answers holds the
// selected option index per question, aligned with the quiz's question
// order. Attempts are never updated after creation and are removed only
// when their quiz is deleted.
type QuizAttempt struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	QuizID    uint      `gorm:"not null;index" json:"quizId"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Score     int       `gorm:"not null" json:"score"`
	MaxScore  int       `gorm:"not null" json:"maxScore"`
	Answers   []int     `gorm:"serializer:json" json:"answers"`
	CreatedAt time.Time `json:"createdAt"`
}
