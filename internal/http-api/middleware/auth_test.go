package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gamecomment/internal/http-api/models"
	"gamecomment/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(username, password string) (string, *models.AdminUser, error) {
	args := m.Called(username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.AdminUser), args.Error(2)
}

func (m *MockAuthService) VerifyToken(tokenString string) (*models.AdminUser, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAuthService) ChangePassword(adminID int64, currentPassword, newPassword string) error {
	args := m.Called(adminID, currentPassword, newPassword)
	return args.Error(0)
}

func guardedRouter(authService service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secret", RequireAdmin(authService), func(c *gin.Context) {
		admin := c.MustGet(ContextAdmin).(*models.AdminUser)
		c.JSON(http.StatusOK, gin.H{"username": admin.Username})
	})
	return r
}

func TestRequireAdminMissingHeader(t *testing.T) {
	r := guardedRouter(new(MockAuthService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminMalformedHeader(t *testing.T) {
	r := guardedRouter(new(MockAuthService))

	for _, header := range []string{"tokenwithoutscheme", "Basic abc123", "Bearer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q should be rejected", header)
	}
}

func TestRequireAdminInvalidToken(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("VerifyToken", "bad-token").Return(nil, service.ErrInvalidToken)

	r := guardedRouter(authService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminValidToken(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("VerifyToken", "good-token").Return(&models.AdminUser{ID: 1, Username: "admin"}, nil)

	r := guardedRouter(authService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}
