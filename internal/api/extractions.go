package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/engine"
	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
	"github.com/LIT-Intel/logistics-intel-sub002/internal/service/excel"
)

// CreateExtraction accepts a workbook upload, runs the engine and
// stores the result.
// POST /api/extractions (multipart, field "file")
func (h *Handler) CreateExtraction(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing upload file"})
		return
	}
	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}
	defer f.Close()

	reader := excel.NewReader()
	if err := reader.LoadFile(f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a readable workbook"})
		return
	}
	defer reader.Close()

	sheets, err := reader.Sheets()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload := engine.New().Extract(sheets)

	id := uuid.New().String()
	if err := h.store.SaveExtraction(id, fileHeader.Filename, len(sheets), payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"payload": payload,
	})
}

// PreviewRequest carries sheets built by the caller, e.g. from a CSV
// or a form, bypassing workbook parsing and persistence.
type PreviewRequest struct {
	Sheets []model.Sheet `json:"sheets" binding:"required"`
}

// PreviewExtraction runs the engine on caller-supplied sheets.
// POST /api/extractions/preview
func (h *Handler) PreviewExtraction(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sheet list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payload": engine.New().Extract(req.Sheets)})
}

// ListExtractions returns stored run summaries, newest first.
// GET /api/extractions
func (h *Handler) ListExtractions(c *gin.Context) {
	list, err := h.store.ListExtractions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"extractions": list})
}

// GetExtraction returns one stored run with its full payload.
// GET /api/extractions/:id
func (h *Handler) GetExtraction(c *gin.Context) {
	rec, err := h.store.GetExtraction(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "extraction not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteExtraction removes one stored run.
// DELETE /api/extractions/:id
func (h *Handler) DeleteExtraction(c *gin.Context) {
	ok, err := h.store.DeleteExtraction(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "extraction not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
