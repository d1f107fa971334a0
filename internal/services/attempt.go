package services

import (
	"fmt"
	"strings"

	"github.com/mohamedahmed66972007/test2025/internal/models"

	"gorm.io/gorm"
)

type AttemptService struct {
	db      *gorm.DB
	scoring *ScoringService
}

func NewAttemptService(db *gorm.DB, scoring *ScoringService) *AttemptService {
	return &AttemptService{db: db, scoring: scoring}
}

type SubmitAttemptRequest struct {
	QuizID  uint   `json:"quizId" binding:"required"`
	Name    string `json:"name" binding:"required,max=100"`
	Answers []int  `json:"answers" binding:"required,min=1"`
	// Score and MaxScore are what the client computed for itself; the
	// server recomputes both from the stored quiz and persists its own
	// result.
	Score    int `json:"score"`
	MaxScore int `json:"maxScore"`
}

// SubmitAttempt scores the submitted answers against the quiz definition
// and records the attempt. The client-supplied score is not trusted.
func (s *AttemptService) SubmitAttempt(req *SubmitAttemptRequest) (*models.QuizAttempt, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be blank", ErrValidation)
	}

	var quiz models.Quiz
	if err := s.db.First(&quiz, req.QuizID).Error; err != nil {
		return nil, fmt.Errorf("quiz %d: %w", req.QuizID, ErrNotFound)
	}

	score, err := s.scoring.Score(req.Answers, quiz.Questions)
	if err != nil {
		return nil, err
	}

	attempt := models.QuizAttempt{
		QuizID:   quiz.ID,
		Name:     strings.TrimSpace(req.Name),
		Score:    score,
		MaxScore: len(quiz.Questions),
		Answers:  req.Answers,
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

// GetAttempts lists a quiz's attempts newest first. A quiz with no
// attempts yields an empty list, not an error.
func (s *AttemptService) GetAttempts(quizID uint) ([]models.QuizAttempt, error) {
	var attempts []models.QuizAttempt
	err := s.db.Where("quiz_id = ?", quizID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

// QuizResults bundles a quiz's attempts with their aggregate statistics.
type QuizResults struct {
	Attempts []models.QuizAttempt `json:"attempts"`
	ResultsSummary
}

// GetResults recomputes the aggregate statistics for one quiz from the
// full attempt set on every call.
func (s *AttemptService) GetResults(quizID uint) (*QuizResults, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, fmt.Errorf("quiz %d: %w", quizID, ErrNotFound)
	}

	attempts, err := s.GetAttempts(quizID)
	if err != nil {
		return nil, err
	}
	return &QuizResults{
		Attempts:       attempts,
		ResultsSummary: s.scoring.Summarize(attempts),
	}, nil
}
