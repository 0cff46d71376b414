package service

import (
	"gamecomment/internal/http-api/models"
	"gamecomment/internal/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// MockAdminRepository mocks the AdminRepository interface
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByUsername(username, projectID string) (*models.AdminUser, error) {
	args := m.Called(username, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) FindByID(id int64, projectID string) (*models.AdminUser, error) {
	args := m.Called(id, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) UpdateLastLogin(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdminRepository) UpdatePassword(id int64, passwordHash string) error {
	args := m.Called(id, passwordHash)
	return args.Error(0)
}

// MockGameRepository mocks the GameRepository interface
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Exists(addressBar string) (bool, error) {
	args := m.Called(addressBar)
	return args.Bool(0), args.Error(1)
}

func (m *MockGameRepository) ListWithStats() ([]repository.GameWithStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.GameWithStats), args.Error(1)
}

// MockCommentRepository mocks the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByGame(addressBar string) ([]models.Comment, error) {
	args := m.Called(addressBar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListAll() ([]models.Comment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(commentID int64, addressBar string) error {
	args := m.Called(commentID, addressBar)
	return args.Error(0)
}

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) StatsByGame(addressBar string) (*models.RatingStats, error) {
	args := m.Called(addressBar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RatingStats), args.Error(1)
}

func (m *MockRatingRepository) ReplaceCounts(addressBar string, counts map[int]int) error {
	args := m.Called(addressBar, counts)
	return args.Error(0)
}
