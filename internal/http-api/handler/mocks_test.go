package handler

import (
	"io"
	"log/slog"

	"gamecomment/internal/http-api/dto"
	"gamecomment/internal/http-api/models"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockCommentService mocks service.CommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListByGame(pageID string) ([]dto.CommentResponse, error) {
	args := m.Called(pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) Create(req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) CreateManual(req dto.ManualCommentRequest) (*dto.CommentResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) Delete(pageID string, commentID int64) error {
	args := m.Called(pageID, commentID)
	return args.Error(0)
}

// MockRatingService mocks service.RatingService
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Stats(pageID string) (*dto.RatingStatsResponse, error) {
	args := m.Called(pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingStatsResponse), args.Error(1)
}

func (m *MockRatingService) Submit(req dto.SubmitRatingRequest) (*dto.RatingStatsResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingStatsResponse), args.Error(1)
}

func (m *MockRatingService) ReplaceCounts(pageID string, counts map[string]interface{}) (*dto.ReplaceRatingsResponse, error) {
	args := m.Called(pageID, counts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReplaceRatingsResponse), args.Error(1)
}

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

// MockAdminDataService mocks service.AdminDataService
type MockAdminDataService struct {
	mock.Mock
}

func (m *MockAdminDataService) AllGameData() (map[string]dto.GameData, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]dto.GameData), args.Error(1)
}
