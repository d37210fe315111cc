package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Healthz reports ok when a valid snapshot is loadable, along with how old
// the served snapshot is.
func (h *Handler) Healthz(c *gin.Context) {
	fetchedAt, err := h.catalogUC.FetchedAt(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"index_age_seconds": int64(time.Since(fetchedAt).Seconds()),
	})
}
