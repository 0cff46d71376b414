package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"gamecomment/internal/http-api/dto"
	"gamecomment/internal/http-api/middleware"
	"gamecomment/internal/http-api/models"
	"gamecomment/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// RegisterPublicRoutes registers the routes reachable without a token.
func (h *AuthHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/login", h.Login)
}

// RegisterProtectedRoutes registers the routes behind the admin guard.
func (h *AuthHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/change-password", h.ChangePassword)
	router.GET("/protected", h.Protected)
}

// Login authenticates an admin within the configured tenant and issues a
// signed token.
// POST /admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	token, admin, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid username or password"})
			return
		}
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:   token,
		Message: "login successful",
		User:    dto.FromModelToUserInfo(admin),
	})
}

// ChangePassword verifies the current password before storing a new hash.
// Previously issued tokens stay valid.
// POST /admin/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "current and new password are required"})
		return
	}

	adminID := c.GetInt64(middleware.ContextAdminID)

	if err := h.authService.ChangePassword(adminID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "current password is incorrect"})
		case errors.Is(err, service.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "admin account not found"})
		default:
			writeServiceError(c, h.logger, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "password changed successfully"})
}

// Protected is the SPA's session probe: it returns the identity resolved by
// the auth guard.
// GET /admin/protected
func (h *AuthHandler) Protected(c *gin.Context) {
	value, exists := c.Get(middleware.ContextAdmin)
	admin, ok := value.(*models.AdminUser)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication token required"})
		return
	}

	c.JSON(http.StatusOK, dto.ProtectedResponse{
		Message: "authenticated admin route",
		User:    dto.FromModelToUserInfo(admin),
	})
}
