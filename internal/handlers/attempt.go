package handlers

import (
	"net/http"
	"strconv"

	"github.com/mohamedahmed66972007/test2025/internal/services"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	attemptService *services.AttemptService
}

func NewAttemptHandler(attemptService *services.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService}
}

// ListAttempts godoc
// @Summary      List a quiz's attempts
// @Description  Newest first
// @Tags         attempts
// @Produce      json
// @Param        quizId path int true "Quiz ID"
// @Success      200 {array} QuizAttempt
// @Router       /api/quiz-attempts/{quizId} [get]
func (h *AttemptHandler) ListAttempts(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("quizId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	attempts, err := h.attemptService.GetAttempts(uint(quizID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// SubmitAttempt godoc
// @Summary      Submit a completed quiz attempt
// @Description  The server rescores the answers against the quiz; the submitted score is not trusted
// @Tags         attempts
// @Accept       json
// @Produce      json
// @Param        request body services.SubmitAttemptRequest true "Attempt data"
// @Success      201 {object} QuizAttempt
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/quiz-attempts [post]
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	var req services.SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	attempt, err := h.attemptService.SubmitAttempt(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attempt)
}
