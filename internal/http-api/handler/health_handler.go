package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health is the liveness endpoint.
// GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   "game comment API is running",
	})
}
