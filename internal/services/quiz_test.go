package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mohamedahmed66972007/test2025/internal/models"
	"github.com/mohamedahmed66972007/test2025/internal/services"
)

func TestCreateQuizAssignsCode(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewQuizService(db)

	quiz, err := svc.CreateQuiz(&services.CreateQuizRequest{
		Title:   "Algebra",
		Subject: models.SubjectMath,
		Creator: "A",
		Questions: []models.Question{
			{Question: "2+2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}

	if len(quiz.Code) != 8 {
		t.Errorf("code length = %d, want 8", len(quiz.Code))
	}
	if quiz.Code != strings.ToUpper(quiz.Code) {
		t.Errorf("code %q not stored uppercase", quiz.Code)
	}
	if quiz.ID == 0 {
		t.Error("expected assigned id")
	}
	// Untyped questions default to multiple choice.
	if quiz.Questions[0].Type != models.QuestionTypeMultiple {
		t.Errorf("question type = %q, want %q", quiz.Questions[0].Type, models.QuestionTypeMultiple)
	}

	got, err := svc.GetQuizByCode(quiz.Code)
	if err != nil {
		t.Fatalf("GetQuizByCode: %v", err)
	}
	if got.ID != quiz.ID || got.Title != "Algebra" {
		t.Errorf("fetched %+v, want the created quiz", got)
	}
}

func TestGetQuizByCodeCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewQuizService(db)

	quiz, err := svc.CreateQuiz(&services.CreateQuizRequest{
		Title:     "Physics",
		Subject:   models.SubjectPhysics,
		Creator:   "B",
		Questions: twoQuestionQuiz(),
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}

	got, err := svc.GetQuizByCode(strings.ToLower(quiz.Code))
	if err != nil {
		t.Fatalf("lowercase lookup failed: %v", err)
	}
	if got.ID != quiz.ID {
		t.Errorf("lowercase lookup returned quiz %d, want %d", got.ID, quiz.ID)
	}
}

func TestCreateQuizCodesUnique(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewQuizService(db)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		quiz, err := svc.CreateQuiz(&services.CreateQuizRequest{
			Title:     "Quiz",
			Subject:   models.SubjectEnglish,
			Creator:   "C",
			Questions: twoQuestionQuiz(),
		})
		if err != nil {
			t.Fatalf("CreateQuiz #%d: %v", i, err)
		}
		if seen[quiz.Code] {
			t.Fatalf("duplicate code %q", quiz.Code)
		}
		seen[quiz.Code] = true
	}
}

func TestCreateQuizValidation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewQuizService(db)

	base := func() *services.CreateQuizRequest {
		return &services.CreateQuizRequest{
			Title:     "Quiz",
			Subject:   models.SubjectMath,
			Creator:   "D",
			Questions: twoQuestionQuiz(),
		}
	}

	tests := []struct {
		name   string
		mutate func(*services.CreateQuizRequest)
	}{
		{"blank question text", func(r *services.CreateQuizRequest) { r.Questions[0].Question = "  " }},
		{"blank option", func(r *services.CreateQuizRequest) { r.Questions[0].Options[2] = "" }},
		{"single option", func(r *services.CreateQuizRequest) { r.Questions[0].Options = []string{"only"} }},
		{"correct answer out of range", func(r *services.CreateQuizRequest) { r.Questions[0].CorrectAnswer = 4 }},
		{"negative correct answer", func(r *services.CreateQuizRequest) { r.Questions[0].CorrectAnswer = -1 }},
		{"truefalse with three options", func(r *services.CreateQuizRequest) {
			r.Questions[1].Options = []string{"True", "False", "Maybe"}
		}},
		{"unknown question type", func(r *services.CreateQuizRequest) { r.Questions[0].Type = "essay" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)
			if _, err := svc.CreateQuiz(req); !errors.Is(err, services.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestDeleteQuizCascadesAttempts(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewQuizService(db)
	attempts := services.NewAttemptService(db, services.NewScoringService())

	quiz, err := svc.CreateQuiz(&services.CreateQuizRequest{
		Title:     "Chemistry",
		Subject:   models.SubjectChemistry,
		Creator:   "E",
		Questions: twoQuestionQuiz(),
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}

	if _, err := attempts.SubmitAttempt(&services.SubmitAttemptRequest{
		QuizID:  quiz.ID,
		Name:    "student",
		Answers: []int{1, 0},
	}); err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}

	if err := svc.DeleteQuiz(quiz.ID); err != nil {
		t.Fatalf("DeleteQuiz: %v", err)
	}

	var count int64
	db.Model(&models.QuizAttempt{}).Where("quiz_id = ?", quiz.ID).Count(&count)
	if count != 0 {
		t.Errorf("%d attempts survived quiz deletion", count)
	}
}

func TestDeleteQuizNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewQuizService(db)

	if err := svc.DeleteQuiz(999); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetQuizNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewQuizService(db)

	if _, err := svc.GetQuiz(42); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetQuizByCode("NOPE1234"); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
