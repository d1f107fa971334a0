package services

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mohamedahmed66972007/test2025/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileService owns both the metadata records and the bytes on disk under
// uploadDir. Records point at the public /uploads path.
type FileService struct {
	db        *gorm.DB
	uploadDir string
}

func NewFileService(db *gorm.DB, uploadDir string) (*FileService, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileService{db: db, uploadDir: uploadDir}, nil
}

type CreateFileRequest struct {
	Title    string
	Subject  string
	Semester string
	FileName string
}

// CreateFile writes the uploaded bytes to disk under a collision-free name
// and inserts the metadata record.
func (s *FileService) CreateFile(req *CreateFileRequest, src io.Reader) (*models.File, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !models.ValidSubject(req.Subject) {
		return nil, fmt.Errorf("%w: unknown subject %q", ErrValidation, req.Subject)
	}
	if !models.ValidSemester(req.Semester) {
		return nil, fmt.Errorf("%w: unknown semester %q", ErrValidation, req.Semester)
	}
	if strings.TrimSpace(req.FileName) == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrValidation)
	}

	stored := uuid.NewString() + "-" + filepath.Base(req.FileName)
	dst, err := os.Create(filepath.Join(s.uploadDir, stored))
	if err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("save upload: %w", err)
	}

	file := models.File{
		Title:    req.Title,
		Subject:  req.Subject,
		Semester: req.Semester,
		FileName: req.FileName,
		FilePath: "/uploads/" + stored,
	}
	if err := s.db.Create(&file).Error; err != nil {
		os.Remove(dst.Name())
		return nil, err
	}
	return &file, nil
}

// GetFiles lists files, optionally narrowed by subject and/or semester.
// The literal filter value "all" means unfiltered, matching the client.
func (s *FileService) GetFiles(subject, semester string) ([]models.File, error) {
	query := s.db.Order("uploaded_at DESC")
	if subject != "" && subject != "all" {
		query = query.Where("subject = ?", subject)
	}
	if semester != "" && semester != "all" {
		query = query.Where("semester = ?", semester)
	}

	var files []models.File
	err := query.Find(&files).Error
	return files, err
}

func (s *FileService) GetFile(id uint) (*models.File, error) {
	var file models.File
	if err := s.db.First(&file, id).Error; err != nil {
		return nil, fmt.Errorf("file %d: %w", id, ErrNotFound)
	}
	return &file, nil
}

// DeleteFile removes the record and then the bytes. A missing disk file is
// logged, not surfaced: the record is already gone and the caller can do
// nothing about stray bytes.
func (s *FileService) DeleteFile(id uint) error {
	file, err := s.GetFile(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&models.File{}, id).Error; err != nil {
		return err
	}

	stored := filepath.Join(s.uploadDir, filepath.Base(file.FilePath))
	if err := os.Remove(stored); err != nil && !os.IsNotExist(err) {
		log.Printf("delete file %d: removing %s: %v", id, stored, err)
	}
	return nil
}
