package handler

import (
	"log/slog"
	"net/http"

	"gamecomment/internal/http-api/dto"
	"gamecomment/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
	logger         *slog.Logger
}

func NewCommentHandler(commentService service.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// RegisterRoutes registers the public comment routes. Reads and writes get
// separate rate-limit gates.
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup, readLimit, writeLimit gin.HandlerFunc) {
	router.GET("/comments", readLimit, h.List)
	router.POST("/comments", writeLimit, h.Create)
}

// List returns all comments for a game, newest first.
// GET /comments?pageId=xxx
func (h *CommentHandler) List(c *gin.Context) {
	pageID := c.Query("pageId")
	if pageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "a valid pageId query parameter is required"})
		return
	}

	comments, err := h.commentService.ListByGame(pageID)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Create submits a new public comment.
// POST /comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	comment, err := h.commentService.Create(req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
