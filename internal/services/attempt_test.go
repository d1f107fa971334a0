package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mohamedahmed66972007/test2025/internal/models"
	"github.com/mohamedahmed66972007/test2025/internal/services"
)

func newQuiz(t *testing.T, svc *services.QuizService) *models.Quiz {
	t.Helper()
	quiz, err := svc.CreateQuiz(&services.CreateQuizRequest{
		Title:     "Biology",
		Subject:   models.SubjectBiology,
		Creator:   "F",
		Questions: twoQuestionQuiz(),
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	return quiz
}

func TestSubmitAttemptRescoresServerSide(t *testing.T) {
	db := newTestDB(t)
	quizzes := services.NewQuizService(db)
	svc := services.NewAttemptService(db, services.NewScoringService())
	quiz := newQuiz(t, quizzes)

	// Client claims a perfect score; the answers only earn one point.
	attempt, err := svc.SubmitAttempt(&services.SubmitAttemptRequest{
		QuizID:   quiz.ID,
		Name:     "student",
		Answers:  []int{1, 1},
		Score:    2,
		MaxScore: 2,
	})
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}

	if attempt.Score != 1 {
		t.Errorf("score = %d, want server-computed 1", attempt.Score)
	}
	if attempt.MaxScore != 2 {
		t.Errorf("maxScore = %d, want 2", attempt.MaxScore)
	}
}

func TestSubmitAttemptValidation(t *testing.T) {
	db := newTestDB(t)
	quizzes := services.NewQuizService(db)
	svc := services.NewAttemptService(db, services.NewScoringService())
	quiz := newQuiz(t, quizzes)

	if _, err := svc.SubmitAttempt(&services.SubmitAttemptRequest{
		QuizID:  quiz.ID,
		Name:    "student",
		Answers: []int{1},
	}); !errors.Is(err, services.ErrValidation) {
		t.Errorf("short answers: expected ErrValidation, got %v", err)
	}

	if _, err := svc.SubmitAttempt(&services.SubmitAttemptRequest{
		QuizID:  quiz.ID,
		Name:    "   ",
		Answers: []int{1, 0},
	}); !errors.Is(err, services.ErrValidation) {
		t.Errorf("blank name: expected ErrValidation, got %v", err)
	}

	if _, err := svc.SubmitAttempt(&services.SubmitAttemptRequest{
		QuizID:  9999,
		Name:    "student",
		Answers: []int{1, 0},
	}); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("unknown quiz: expected ErrNotFound, got %v", err)
	}
}

func TestGetAttemptsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	quizzes := services.NewQuizService(db)
	svc := services.NewAttemptService(db, services.NewScoringService())
	quiz := newQuiz(t, quizzes)

	for _, name := range []string{"first", "second", "third"} {
		if _, err := svc.SubmitAttempt(&services.SubmitAttemptRequest{
			QuizID:  quiz.ID,
			Name:    name,
			Answers: []int{1, 0},
		}); err != nil {
			t.Fatalf("SubmitAttempt(%s): %v", name, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	attempts, err := svc.GetAttempts(quiz.ID)
	if err != nil {
		t.Fatalf("GetAttempts: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("got %d attempts, want 3", len(attempts))
	}
	if attempts[0].Name != "third" || attempts[2].Name != "first" {
		t.Errorf("attempts not newest-first: [%s %s %s]", attempts[0].Name, attempts[1].Name, attempts[2].Name)
	}
}

func TestGetAttemptsEmptyQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAttemptService(db, services.NewScoringService())

	attempts, err := svc.GetAttempts(123)
	if err != nil {
		t.Fatalf("GetAttempts: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("got %d attempts for unknown quiz, want 0", len(attempts))
	}
}

func TestGetResults(t *testing.T) {
	db := newTestDB(t)
	quizzes := services.NewQuizService(db)
	svc := services.NewAttemptService(db, services.NewScoringService())
	quiz := newQuiz(t, quizzes)

	// One perfect run, one zero run: mean 1.0, one of two passes.
	for _, answers := range [][]int{{1, 0}, {0, 1}} {
		if _, err := svc.SubmitAttempt(&services.SubmitAttemptRequest{
			QuizID:  quiz.ID,
			Name:    "student",
			Answers: answers,
		}); err != nil {
			t.Fatalf("SubmitAttempt: %v", err)
		}
	}

	results, err := svc.GetResults(quiz.ID)
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if results.AttemptCount != 2 {
		t.Errorf("attempt count = %d, want 2", results.AttemptCount)
	}
	if results.AverageScore != 1.0 {
		t.Errorf("average = %v, want 1.0", results.AverageScore)
	}
	if results.SuccessRate != 50 {
		t.Errorf("success rate = %d, want 50", results.SuccessRate)
	}

	if _, err := svc.GetResults(9999); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("unknown quiz: expected ErrNotFound, got %v", err)
	}
}
