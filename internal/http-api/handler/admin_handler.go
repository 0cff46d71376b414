package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gamecomment/internal/http-api/dto"
	"gamecomment/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler owns the authenticated data-management surface: the bulk
// dashboard view, rating replacement, and comment moderation.
type AdminHandler struct {
	adminData      service.AdminDataService
	commentService service.CommentService
	ratingService  service.RatingService
	logger         *slog.Logger
}

func NewAdminHandler(
	adminData service.AdminDataService,
	commentService service.CommentService,
	ratingService service.RatingService,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		adminData:      adminData,
		commentService: commentService,
		ratingService:  ratingService,
		logger:         logger,
	}
}

// RegisterRoutes registers the admin data routes; the caller has already
// applied the auth guard to the group.
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/comments", h.AllGameData)
	router.PUT("/ratings/:pageId", h.ReplaceRatings)
	router.DELETE("/comments/:pageId/:commentId", h.DeleteComment)
	router.POST("/comments/manual", h.CreateManualComment)
}

// AllGameData returns every game with its rating buckets and comments.
// GET /admin/comments
func (h *AdminHandler) AllGameData(c *gin.Context) {
	data, err := h.adminData.AllGameData()
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// ReplaceRatings swaps a game's rating distribution for the requested
// per-value counts.
// PUT /admin/ratings/:pageId
func (h *AdminHandler) ReplaceRatings(c *gin.Context) {
	pageID := c.Param("pageId")

	var counts map[string]interface{}
	if err := c.ShouldBindJSON(&counts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	result, err := h.ratingService.ReplaceCounts(pageID, counts)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	h.logger.Info("admin replaced rating counts", "page_id", pageID, "admin", adminUsername(c))
	c.JSON(http.StatusOK, result)
}

// DeleteComment removes one comment, scoped to the (comment, game) pair.
// DELETE /admin/comments/:pageId/:commentId
func (h *AdminHandler) DeleteComment(c *gin.Context) {
	pageID := c.Param("pageId")

	commentID, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid comment ID"})
		return
	}

	if err := h.commentService.Delete(pageID, commentID); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	h.logger.Info("admin deleted comment", "page_id", pageID, "comment_id", commentID, "admin", adminUsername(c))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "comment deleted successfully"})
}

// CreateManualComment inserts an admin-authored comment, optionally
// backdated.
// POST /admin/comments/manual
func (h *AdminHandler) CreateManualComment(c *gin.Context) {
	var req dto.ManualCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	comment, err := h.commentService.CreateManual(req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	h.logger.Info("admin added manual comment", "page_id", req.PageID, "admin", adminUsername(c))
	c.JSON(http.StatusCreated, comment)
}
