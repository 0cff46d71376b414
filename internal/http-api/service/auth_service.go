package service

import (
	"errors"
	"time"

	"gamecomment/internal/config"
	"gamecomment/internal/http-api/models"
	"gamecomment/internal/http-api/repository"
	"gamecomment/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrAccountNotFound    = errors.New("admin account not found")
)

// Claims are embedded in every issued token. The project id pins the token
// to one tenant; verification re-checks it against the configured tenant so
// a token minted elsewhere never resolves here.
type Claims struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ProjectID string `json:"project_id"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// Login verifies credentials within the configured tenant and returns a
	// signed token plus the authenticated identity.
	Login(username, password string) (string, *models.AdminUser, error)
	// VerifyToken checks signature and expiry, then re-fetches the identity
	// by (id, tenant). Every failure mode collapses into ErrInvalidToken.
	VerifyToken(tokenString string) (*models.AdminUser, error)
	// ChangePassword verifies the current password before storing a new
	// hash. Previously issued tokens stay valid; verification is stateless.
	ChangePassword(adminID int64, currentPassword, newPassword string) error
}

type authService struct {
	adminRepo repository.AdminRepository
	jwtSecret string
	jwtExpiry time.Duration
	projectID string
}

func NewAuthService(adminRepo repository.AdminRepository, cfg *config.Config) AuthService {
	return &authService{
		adminRepo: adminRepo,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiry,
		projectID: cfg.ProjectPrefix,
	}
}

func (s *authService) Login(username, password string) (string, *models.AdminUser, error) {
	admin, err := s.adminRepo.FindByUsername(username, s.projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Dummy compare to mitigate timing attacks (always take same time)
			auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := auth.VerifyPassword(admin.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return "", nil, err
	}

	if err := s.adminRepo.UpdateLastLogin(admin.ID); err != nil {
		return "", nil, err
	}

	return token, admin, nil
}

func (s *authService) generateToken(admin *models.AdminUser) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:        admin.ID,
		Username:  admin.Username,
		Role:      admin.Role,
		ProjectID: admin.ProjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) VerifyToken(tokenString string) (*models.AdminUser, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// The identity must still exist and still belong to this tenant. A
	// deleted account and a wrong-tenant token are deliberately
	// indistinguishable to the caller.
	admin, err := s.adminRepo.FindByID(claims.ID, s.projectID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return admin, nil
}

func (s *authService) ChangePassword(adminID int64, currentPassword, newPassword string) error {
	admin, err := s.adminRepo.FindByID(adminID, s.projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	if err := auth.VerifyPassword(admin.Password, currentPassword); err != nil {
		return ErrWrongPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.adminRepo.UpdatePassword(admin.ID, hash)
}
