package handler

import (
	"log/slog"
	"net/http"

	"gamecomment/internal/http-api/dto"
	"gamecomment/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
	logger        *slog.Logger
}

func NewRatingHandler(ratingService service.RatingService, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		logger:        logger,
	}
}

// RegisterRoutes registers the public rating routes.
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup, readLimit, writeLimit gin.HandlerFunc) {
	router.GET("/ratings", readLimit, h.Stats)
	router.POST("/ratings", writeLimit, h.Submit)
}

// Stats returns the aggregate count and rounded mean for a game.
// GET /ratings?pageId=xxx
func (h *RatingHandler) Stats(c *gin.Context) {
	pageID := c.Query("pageId")
	if pageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "a valid pageId query parameter is required"})
		return
	}

	stats, err := h.ratingService.Stats(pageID)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Submit records a new rating and returns the refreshed aggregate.
// POST /ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	var req dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	stats, err := h.ratingService.Submit(req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, stats)
}
