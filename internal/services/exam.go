package services

import (
	"fmt"
	"time"

	"github.com/mohamedahmed66972007/test2025/internal/models"

	"gorm.io/gorm"
)

type ExamService struct {
	db *gorm.DB
}

func NewExamService(db *gorm.DB) *ExamService {
	return &ExamService{db: db}
}

type CreateExamWeekRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

type CreateExamRequest struct {
	WeekID  uint     `json:"weekId" binding:"required"`
	Day     string   `json:"day" binding:"required,max=50"`
	Subject string   `json:"subject" binding:"required,subject"`
	Date    string   `json:"date" binding:"required"`
	Topics  []string `json:"topics"`
}

func (s *ExamService) GetExamWeeks() ([]models.ExamWeek, error) {
	var weeks []models.ExamWeek
	err := s.db.Order("created_at DESC").Find(&weeks).Error
	return weeks, err
}

func (s *ExamService) CreateExamWeek(req *CreateExamWeekRequest) (*models.ExamWeek, error) {
	week := models.ExamWeek{Title: req.Title}
	if err := s.db.Create(&week).Error; err != nil {
		return nil, err
	}
	return &week, nil
}

// DeleteExamWeek removes a week and every exam scheduled under it in one
// transaction.
func (s *ExamService) DeleteExamWeek(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("week_id = ?", id).Delete(&models.Exam{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ExamWeek{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("exam week %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

func (s *ExamService) GetExams() ([]models.Exam, error) {
	var exams []models.Exam
	err := s.db.Order("date ASC").Find(&exams).Error
	return exams, err
}

func (s *ExamService) GetExamsByWeek(weekID uint) ([]models.Exam, error) {
	var exams []models.Exam
	err := s.db.Where("week_id = ?", weekID).Order("date ASC").Find(&exams).Error
	return exams, err
}

// CreateExam validates the date against the canonical YYYY-MM-DD layout
// and checks the target week exists before inserting.
func (s *ExamService) CreateExam(req *CreateExamRequest) (*models.Exam, error) {
	if _, err := time.Parse(models.ExamDateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	var week models.ExamWeek
	if err := s.db.First(&week, req.WeekID).Error; err != nil {
		return nil, fmt.Errorf("exam week %d: %w", req.WeekID, ErrNotFound)
	}

	topics := req.Topics
	if topics == nil {
		topics = []string{}
	}

	exam := models.Exam{
		WeekID:  req.WeekID,
		Day:     req.Day,
		Subject: req.Subject,
		Date:    req.Date,
		Topics:  topics,
	}
	if err := s.db.Create(&exam).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (s *ExamService) DeleteExam(id uint) error {
	result := s.db.Delete(&models.Exam{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("exam %d: %w", id, ErrNotFound)
	}
	return nil
}
