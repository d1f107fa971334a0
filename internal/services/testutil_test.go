package services_test

import (
	"path/filepath"
	"testing"

	"github.com/mohamedahmed66972007/test2025/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.File{},
		&models.ExamWeek{},
		&models.Exam{},
		&models.Quiz{},
		&models.QuizAttempt{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func twoQuestionQuiz() []models.Question {
	return []models.Question{
		{
			Question:      "2+2?",
			Options:       []string{"3", "4", "5", "6"},
			CorrectAnswer: 1,
			Type:          models.QuestionTypeMultiple,
		},
		{
			Question:      "Water boils at 100C at sea level.",
			Options:       []string{"True", "False"},
			CorrectAnswer: 0,
			Type:          models.QuestionTypeTrueFalse,
		},
	}
}
