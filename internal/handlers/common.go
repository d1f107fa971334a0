package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/mohamedahmed66972007/test2025/internal/models"
	"github.com/mohamedahmed66972007/test2025/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type File = models.File
type ExamWeek = models.ExamWeek
type Exam = models.Exam
type Quiz = models.Quiz
type QuizAttempt = models.QuizAttempt

// respondError maps service errors onto HTTP statuses. Anything outside
// the known taxonomy is logged and surfaced as a generic 500 with no
// internal detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
