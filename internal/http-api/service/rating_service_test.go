package service

import (
	"testing"

	"gamecomment/internal/http-api/dto"
	"gamecomment/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestSubmitRatingSuccess(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	gameRepo := new(MockGameRepository)

	gameRepo.On("Exists", "snake").Return(true, nil)
	ratingRepo.On("Create", mock.AnythingOfType("*models.Rating")).Return(nil)
	ratingRepo.On("StatsByGame", "snake").Return(&models.RatingStats{
		GameAddressBar: "snake",
		TotalVotes:     3,
		AverageRating:  4.333333,
	}, nil)

	svc := NewRatingService(ratingRepo, gameRepo)

	stats, err := svc.Submit(dto.SubmitRatingRequest{PageID: "snake", Rating: floatPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Count)
	assert.Equal(t, 4.3, stats.Average, "mean rounded to one decimal")
	ratingRepo.AssertExpectations(t)
}

func TestSubmitRatingValidation(t *testing.T) {
	svc := NewRatingService(new(MockRatingRepository), new(MockGameRepository))

	cases := []struct {
		name   string
		rating *float64
	}{
		{"missing", nil},
		{"zero", floatPtr(0)},
		{"six", floatPtr(6)},
		{"negative", floatPtr(-1)},
		{"fractional", floatPtr(4.5)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(dto.SubmitRatingRequest{PageID: "snake", Rating: tc.rating})
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestSubmitRatingUnknownGame(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	gameRepo := new(MockGameRepository)
	gameRepo.On("Exists", "missing").Return(false, nil)

	svc := NewRatingService(ratingRepo, gameRepo)

	_, err := svc.Submit(dto.SubmitRatingRequest{PageID: "missing", Rating: floatPtr(4)})
	assert.ErrorIs(t, err, ErrGameNotFound)
	ratingRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestStatsEmptyGame(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	ratingRepo.On("StatsByGame", "snake").Return(&models.RatingStats{GameAddressBar: "snake"}, nil)

	svc := NewRatingService(ratingRepo, new(MockGameRepository))

	stats, err := svc.Stats("snake")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Count)
	assert.Equal(t, 0.0, stats.Average)
}

func TestReplaceCountsSuccess(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	gameRepo := new(MockGameRepository)

	gameRepo.On("Exists", "snake").Return(true, nil)
	ratingRepo.On("ReplaceCounts", "snake", map[int]int{1: 0, 2: 1, 3: 2, 4: 3, 5: 10}).Return(nil)
	ratingRepo.On("StatsByGame", "snake").Return(&models.RatingStats{
		GameAddressBar: "snake",
		TotalVotes:     16,
		AverageRating:  4.375,
		Rating2:        1,
		Rating3:        2,
		Rating4:        3,
		Rating5:        10,
	}, nil)

	svc := NewRatingService(ratingRepo, gameRepo)

	resp, err := svc.ReplaceCounts("snake", map[string]interface{}{
		"1": float64(0), "2": float64(1), "3": float64(2), "4": float64(3), "5": float64(10),
	})
	require.NoError(t, err)
	assert.Equal(t, dto.RatingBuckets{"1": 0, "2": 1, "3": 2, "4": 3, "5": 10}, resp.Ratings)
	ratingRepo.AssertExpectations(t)
}

func TestReplaceCountsValidation(t *testing.T) {
	svc := NewRatingService(new(MockRatingRepository), new(MockGameRepository))

	cases := []struct {
		name   string
		counts map[string]interface{}
	}{
		{"missing key", map[string]interface{}{"1": float64(1), "2": float64(1), "3": float64(1), "4": float64(1)}},
		{"negative", map[string]interface{}{"1": float64(-1), "2": float64(0), "3": float64(0), "4": float64(0), "5": float64(0)}},
		{"fractional", map[string]interface{}{"1": 1.5, "2": float64(0), "3": float64(0), "4": float64(0), "5": float64(0)}},
		{"non numeric", map[string]interface{}{"1": "three", "2": float64(0), "3": float64(0), "4": float64(0), "5": float64(0)}},
		{"null value", map[string]interface{}{"1": nil, "2": float64(0), "3": float64(0), "4": float64(0), "5": float64(0)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ReplaceCounts("snake", tc.counts)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestReplaceCountsAllZero(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	gameRepo := new(MockGameRepository)

	gameRepo.On("Exists", "snake").Return(true, nil)
	ratingRepo.On("ReplaceCounts", "snake", map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}).Return(nil)
	ratingRepo.On("StatsByGame", "snake").Return(&models.RatingStats{GameAddressBar: "snake"}, nil)

	svc := NewRatingService(ratingRepo, gameRepo)

	resp, err := svc.ReplaceCounts("snake", map[string]interface{}{
		"1": float64(0), "2": float64(0), "3": float64(0), "4": float64(0), "5": float64(0),
	})
	require.NoError(t, err)
	assert.Equal(t, dto.RatingBuckets{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}, resp.Ratings)
}
