package services

import (
	"fmt"
	"math"

	"github.com/mohamedahmed66972007/test2025/internal/models"
)

// passThreshold is the score fraction an attempt must reach to count as a
// pass in the success-rate summary.
const passThreshold = 0.5

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score counts the positions where the submitted answer matches the
// question's correct option. Answers must be index-aligned with the
// questions; a length mismatch or an option index out of range is a
// validation error.
func (s *ScoringService) Score(answers []int, questions []models.Question) (int, error) {
	if len(answers) != len(questions) {
		return 0, fmt.Errorf("%w: expected %d answers, got %d", ErrValidation, len(questions), len(answers))
	}

	score := 0
	for i, q := range questions {
		if answers[i] < 0 || answers[i] >= len(q.Options) {
			return 0, fmt.Errorf("%w: answer %d out of range for question %d", ErrValidation, answers[i], i+1)
		}
		if answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score, nil
}

// ResultsSummary aggregates all attempts of one quiz.
type ResultsSummary struct {
	AttemptCount int     `json:"attempt_count"`
	AverageScore float64 `json:"average_score"`
	SuccessRate  int     `json:"success_rate"`
}

// Summarize computes the mean score (one decimal place) and the percentage
// of attempts at or above the pass threshold (nearest integer). Both are
// zero for an empty attempt set.
func (s *ScoringService) Summarize(attempts []models.QuizAttempt) ResultsSummary {
	summary := ResultsSummary{AttemptCount: len(attempts)}
	if len(attempts) == 0 {
		return summary
	}

	sum := 0
	passed := 0
	for _, a := range attempts {
		sum += a.Score
		if a.MaxScore > 0 && float64(a.Score)/float64(a.MaxScore) >= passThreshold {
			passed++
		}
	}

	summary.AverageScore = math.Round(float64(sum)/float64(len(attempts))*10) / 10
	summary.SuccessRate = int(math.Round(float64(passed) / float64(len(attempts)) * 100))
	return summary
}
