package services

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/mohamedahmed66972007/test2025/internal/models"

	"gorm.io/gorm"
)

// codeAlphabet excludes 0, 1, I and O so codes stay readable when written
// on a whiteboard.
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 8
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	Title       string            `json:"title" binding:"required,max=255"`
	Subject     string            `json:"subject" binding:"required,subject"`
	Creator     string            `json:"creator" binding:"required,max=100"`
	Description string            `json:"description" binding:"max=1000"`
	Questions   []models.Question `json:"questions" binding:"required,min=1"`
}

func validateQuestion(i int, q models.Question) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("%w: question %d has no text", ErrValidation, i+1)
	}
	switch q.Type {
	case models.QuestionTypeTrueFalse:
		if len(q.Options) != 2 {
			return fmt.Errorf("%w: question %d is true/false and must have exactly 2 options", ErrValidation, i+1)
		}
	case models.QuestionTypeMultiple, "":
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: question %d needs at least 2 options", ErrValidation, i+1)
		}
	default:
		return fmt.Errorf("%w: question %d has unknown type %q", ErrValidation, i+1, q.Type)
	}
	for j, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("%w: question %d option %d is blank", ErrValidation, i+1, j+1)
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("%w: question %d correct answer index %d out of range", ErrValidation, i+1, q.CorrectAnswer)
	}
	return nil
}

func (s *QuizService) CreateQuiz(req *CreateQuizRequest) (*models.Quiz, error) {
	for i, q := range req.Questions {
		if err := validateQuestion(i, q); err != nil {
			return nil, err
		}
	}

	questions := make([]models.Question, len(req.Questions))
	copy(questions, req.Questions)
	for i := range questions {
		if questions[i].Type == "" {
			questions[i].Type = models.QuestionTypeMultiple
		}
	}

	code, err := s.generateUniqueCode()
	if err != nil {
		return nil, err
	}

	quiz := models.Quiz{
		Title:       req.Title,
		Subject:     req.Subject,
		Creator:     req.Creator,
		Description: req.Description,
		Code:        code,
		Questions:   questions,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) GetQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (s *QuizService) GetQuiz(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, id).Error; err != nil {
		return nil, fmt.Errorf("quiz %d: %w", id, ErrNotFound)
	}
	return &quiz, nil
}

// GetQuizByCode looks a quiz up by its access code, case-insensitively.
func (s *QuizService) GetQuizByCode(code string) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.Where("code = ?", strings.ToUpper(code)).First(&quiz).Error; err != nil {
		return nil, fmt.Errorf("quiz code %q: %w", code, ErrNotFound)
	}
	return &quiz, nil
}

// DeleteQuiz removes a quiz and all attempts recorded against it in one
// transaction.
func (s *QuizService) DeleteQuiz(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&models.QuizAttempt{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Quiz{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("quiz %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// generateUniqueCode draws random codes until one is free. The unique index
// on quizzes.code remains the final arbiter under concurrent creates.
func (s *QuizService) generateUniqueCode() (string, error) {
	for {
		code, err := randomCode()
		if err != nil {
			return "", err
		}
		var count int64
		if err := s.db.Model(&models.Quiz{}).Where("code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
}

func randomCode() (string, error) {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b), nil
}
