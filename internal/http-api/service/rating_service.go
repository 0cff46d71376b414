package service

import (
	"math"
	"strconv"

	"gamecomment/internal/http-api/dto"
	"gamecomment/internal/http-api/models"
	"gamecomment/internal/http-api/repository"
)

type RatingService interface {
	Stats(pageID string) (*dto.RatingStatsResponse, error)
	Submit(req dto.SubmitRatingRequest) (*dto.RatingStatsResponse, error)
	// ReplaceCounts swaps a game's entire rating set for synthetic rows
	// matching the requested per-value counts and returns the refreshed
	// buckets. The raw map comes straight from the request body so missing
	// keys and non-integer values can be reported precisely.
	ReplaceCounts(pageID string, counts map[string]interface{}) (*dto.ReplaceRatingsResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	gameRepo   repository.GameRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, gameRepo repository.GameRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		gameRepo:   gameRepo,
	}
}

func (s *ratingService) Stats(pageID string) (*dto.RatingStatsResponse, error) {
	if err := validateInput(pageID, "page ID", 0); err != nil {
		return nil, err
	}

	stats, err := s.ratingRepo.StatsByGame(pageID)
	if err != nil {
		return nil, err
	}
	return statsResponse(stats), nil
}

func (s *ratingService) Submit(req dto.SubmitRatingRequest) (*dto.RatingStatsResponse, error) {
	if err := validateInput(req.PageID, "page ID", 0); err != nil {
		return nil, err
	}
	if req.Rating == nil || *req.Rating != math.Trunc(*req.Rating) || *req.Rating < 1 || *req.Rating > 5 {
		return nil, NewValidationError("rating must be an integer between 1 and 5")
	}

	exists, err := s.gameRepo.Exists(req.PageID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrGameNotFound
	}

	rating := &models.Rating{
		GameAddressBar: req.PageID,
		Rating:         int(*req.Rating),
	}
	if err := s.ratingRepo.Create(rating); err != nil {
		return nil, err
	}

	stats, err := s.ratingRepo.StatsByGame(req.PageID)
	if err != nil {
		return nil, err
	}
	return statsResponse(stats), nil
}

func (s *ratingService) ReplaceCounts(pageID string, counts map[string]interface{}) (*dto.ReplaceRatingsResponse, error) {
	if err := validateInput(pageID, "page ID", 0); err != nil {
		return nil, err
	}

	validated := make(map[int]int, 5)
	for value := 1; value <= 5; value++ {
		key := strconv.Itoa(value)
		raw, ok := counts[key]
		if !ok {
			return nil, NewValidationError("rating count '%s' must be a non-negative integer, received: none", key)
		}
		// JSON numbers arrive as float64; anything else is malformed.
		num, ok := raw.(float64)
		if !ok || num != math.Trunc(num) || num < 0 {
			return nil, NewValidationError("rating count '%s' must be a non-negative integer, received: %v", key, raw)
		}
		validated[value] = int(num)
	}

	exists, err := s.gameRepo.Exists(pageID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrGameNotFound
	}

	if err := s.ratingRepo.ReplaceCounts(pageID, validated); err != nil {
		return nil, err
	}

	stats, err := s.ratingRepo.StatsByGame(pageID)
	if err != nil {
		return nil, err
	}

	return &dto.ReplaceRatingsResponse{
		Message: "ratings updated successfully",
		Ratings: dto.FromStatsToRatingBuckets(stats),
	}, nil
}

// statsResponse rounds the mean to one decimal, matching the public stats
// payload. An empty stats row yields {0, 0}.
func statsResponse(stats *models.RatingStats) *dto.RatingStatsResponse {
	average := 0.0
	if stats.TotalVotes > 0 {
		average = math.Round(stats.AverageRating*10) / 10
	}
	return &dto.RatingStatsResponse{
		Count:   stats.TotalVotes,
		Average: average,
	}
}
