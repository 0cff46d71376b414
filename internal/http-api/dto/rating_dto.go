package dto

import "gamecomment/internal/http-api/models"

// SubmitRatingRequest carries the rating as a float pointer so the service
// can tell a missing value from zero and report non-integer values with a
// domain message instead of a bind error.
type SubmitRatingRequest struct {
	PageID string   `json:"pageId"`
	Rating *float64 `json:"rating"`
}

type RatingStatsResponse struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

// RatingBuckets is the per-value count map keyed "1".."5", as the admin
// dashboard consumes it.
type RatingBuckets map[string]int64

type ReplaceRatingsResponse struct {
	Message string        `json:"message"`
	Ratings RatingBuckets `json:"ratings"`
}

func FromStatsToRatingBuckets(stats *models.RatingStats) RatingBuckets {
	return RatingBuckets{
		"1": stats.Rating1,
		"2": stats.Rating2,
		"3": stats.Rating3,
		"4": stats.Rating4,
		"5": stats.Rating5,
	}
}
