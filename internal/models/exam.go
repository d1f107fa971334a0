package models

import "time"

// ExamWeek groups the exams of one calendar week. Deleting a week deletes
// its exams.
type ExamWeek struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// Exam is a single scheduled exam inside a week. Date is canonical
// YYYY-MM-DD; topics are stored as a JSON array column.
type Exam struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	WeekID  uint     `gorm:"not null;index" json:"weekId"`
	Day     string   `gorm:"size:50;not null" json:"day"`
	Subject string   `gorm:"size:20;not null" json:"subject"`
	Date    string   `gorm:"size:10;not null" json:"date"`
	Topics  []string `gorm:"serializer:json" json:"topics"`
}

// ExamDateLayout is the canonical exam date format.
const ExamDateLayout = "2006-01-02"
