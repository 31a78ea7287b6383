package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/engine"
)

// GetStatus reports service health and basic counters.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	count, err := h.store.CountExtractions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"dictionaryVersion": engine.DictionaryVersion,
		"extractions":       count,
	})
}
