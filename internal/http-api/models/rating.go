package models

import "time"

// Rating is a single anonymous vote on a 1..5 scale. Rows carry no voter
// identity; the admin replace-counts operation relies on that when it
// materializes synthetic rows.
type Rating struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	GameAddressBar string    `json:"game_address_bar" gorm:"size:100;not null;index"`
	Rating         int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// RatingStats is one row of the per-tenant rating_stats view: aggregate
// count, raw average and per-value buckets for a single game. It is derived,
// never written.
type RatingStats struct {
	GameAddressBar string  `gorm:"column:game_address_bar"`
	TotalVotes     int64   `gorm:"column:total_votes"`
	AverageRating  float64 `gorm:"column:average_rating"`
	Rating1        int64   `gorm:"column:rating_1"`
	Rating2        int64   `gorm:"column:rating_2"`
	Rating3        int64   `gorm:"column:rating_3"`
	Rating4        int64   `gorm:"column:rating_4"`
	Rating5        int64   `gorm:"column:rating_5"`
}

// Bucket returns the count for one rating value 1..5.
func (s RatingStats) Bucket(value int) int64 {
	switch value {
	case 1:
		return s.Rating1
	case 2:
		return s.Rating2
	case 3:
		return s.Rating3
	case 4:
		return s.Rating4
	case 5:
		return s.Rating5
	}
	return 0
}
