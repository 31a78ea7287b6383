package api

import (
	"github.com/gin-gonic/gin"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/store"
)

// Handler wires the extraction endpoints to the store.
type Handler struct {
	store         *store.Store
	maxUploadSize int64
}

// NewHandler creates the API handler. maxUploadSize bounds workbook
// uploads in bytes; zero means no limit.
func NewHandler(st *store.Store, maxUploadSize int64) *Handler {
	return &Handler{
		store:         st,
		maxUploadSize: maxUploadSize,
	}
}

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.POST("/extractions", h.CreateExtraction)
	router.POST("/extractions/preview", h.PreviewExtraction)
	router.GET("/extractions", h.ListExtractions)
	router.GET("/extractions/:id", h.GetExtraction)
	router.DELETE("/extractions/:id", h.DeleteExtraction)
}
