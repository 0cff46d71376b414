package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"gamecomment/internal/http-api/middleware"
	"gamecomment/internal/http-api/models"
	"gamecomment/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service errors onto the response taxonomy:
// validation 400, unknown game/comment 404, everything else a generic 500
// with the detail kept server-side.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Error()})
	case errors.Is(err, service.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "game not found"})
	case errors.Is(err, service.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "comment not found"})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

// adminUsername reads the authenticated admin's username for audit logs.
func adminUsername(c *gin.Context) string {
	if value, ok := c.Get(middleware.ContextAdmin); ok {
		if admin, ok := value.(*models.AdminUser); ok {
			return admin.Username
		}
	}
	return "unknown"
}
