package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/mohamedahmed66972007/test2025/internal/services"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	fileService *services.FileService
	maxUpload   int64
}

func NewFileHandler(fileService *services.FileService, maxUploadMB int64) *FileHandler {
	return &FileHandler{fileService: fileService, maxUpload: maxUploadMB << 20}
}

// ListFiles godoc
// @Summary      List study files
// @Description  List files, optionally filtered by subject and semester ("all" means unfiltered)
// @Tags         files
// @Produce      json
// @Param        subject query string false "Subject filter"
// @Param        semester query string false "Semester filter"
// @Success      200 {array} File
// @Router       /api/files [get]
func (h *FileHandler) ListFiles(c *gin.Context) {
	files, err := h.fileService.GetFiles(c.Query("subject"), c.Query("semester"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// GetFile godoc
// @Summary      Get a study file record
// @Tags         files
// @Produce      json
// @Param        id path int true "File ID"
// @Success      200 {object} File
// @Failure      404 {object} ErrorResponse
// @Router       /api/files/{id} [get]
func (h *FileHandler) GetFile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid file id"})
		return
	}

	file, err := h.fileService.GetFile(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, file)
}

// UploadFile godoc
// @Summary      Upload a study file
// @Description  Multipart upload with title, subject, semester and the file itself
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        subject formData string true "Subject"
// @Param        semester formData string true "Semester"
// @Param        file formData file true "File content"
// @Success      201 {object} File
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/files [post]
func (h *FileHandler) UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no file uploaded"})
		return
	}
	if header.Size > h.maxUpload {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("file too large (max %dMB)", h.maxUpload>>20)})
		return
	}

	src, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer src.Close()

	req := services.CreateFileRequest{
		Title:    c.PostForm("title"),
		Subject:  c.PostForm("subject"),
		Semester: c.PostForm("semester"),
		FileName: header.Filename,
	}
	file, err := h.fileService.CreateFile(&req, src)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, file)
}

// DeleteFile godoc
// @Summary      Delete a study file
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "File ID"
// @Success      200 {object} MessageResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/files/{id} [delete]
func (h *FileHandler) DeleteFile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid file id"})
		return
	}

	if err := h.fileService.DeleteFile(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "file deleted successfully"})
}
