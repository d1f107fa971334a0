package handlers

import (
	"net/http"
	"strconv"

	"github.com/mohamedahmed66972007/test2025/internal/services"

	"github.com/gin-gonic/gin"
)

type ExamHandler struct {
	examService *services.ExamService
}

func NewExamHandler(examService *services.ExamService) *ExamHandler {
	return &ExamHandler{examService: examService}
}

// ListExamWeeks godoc
// @Summary      List exam weeks
// @Tags         exams
// @Produce      json
// @Success      200 {array} ExamWeek
// @Router       /api/exam-weeks [get]
func (h *ExamHandler) ListExamWeeks(c *gin.Context) {
	weeks, err := h.examService.GetExamWeeks()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, weeks)
}

// CreateExamWeek godoc
// @Summary      Create an exam week
// @Tags         exams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CreateExamWeekRequest true "Week data"
// @Success      201 {object} ExamWeek
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/exam-weeks [post]
func (h *ExamHandler) CreateExamWeek(c *gin.Context) {
	var req services.CreateExamWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	week, err := h.examService.CreateExamWeek(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, week)
}

// DeleteExamWeek godoc
// @Summary      Delete an exam week and its exams
// @Tags         exams
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Week ID"
// @Success      200 {object} MessageResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/exam-weeks/{id} [delete]
func (h *ExamHandler) DeleteExamWeek(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid exam week id"})
		return
	}

	if err := h.examService.DeleteExamWeek(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "exam week deleted successfully"})
}

// ListExams godoc
// @Summary      List exams
// @Description  List all exams, or only those of one week via weekId
// @Tags         exams
// @Produce      json
// @Param        weekId query int false "Week filter"
// @Success      200 {array} Exam
// @Router       /api/exams [get]
func (h *ExamHandler) ListExams(c *gin.Context) {
	if raw := c.Query("weekId"); raw != "" {
		weekID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid week id"})
			return
		}
		exams, err := h.examService.GetExamsByWeek(uint(weekID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, exams)
		return
	}

	exams, err := h.examService.GetExams()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exams)
}

// CreateExam godoc
// @Summary      Create an exam
// @Description  Date must be YYYY-MM-DD and the target week must exist
// @Tags         exams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CreateExamRequest true "Exam data"
// @Success      201 {object} Exam
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/exams [post]
func (h *ExamHandler) CreateExam(c *gin.Context) {
	var req services.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	exam, err := h.examService.CreateExam(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exam)
}

// DeleteExam godoc
// @Summary      Delete an exam
// @Tags         exams
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Exam ID"
// @Success      200 {object} MessageResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/exams/{id} [delete]
func (h *ExamHandler) DeleteExam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid exam id"})
		return
	}

	if err := h.examService.DeleteExam(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "exam deleted successfully"})
}
