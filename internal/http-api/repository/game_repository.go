package repository

import (
	"fmt"

	"gamecomment/internal/http-api/models"

	"gorm.io/gorm"
)

// GameWithStats is one row of the admin bulk join: a game and its aggregate
// rating buckets, zeroed when the game has no ratings yet.
type GameWithStats struct {
	AddressBar    string  `gorm:"column:address_bar"`
	Title         string  `gorm:"column:title"`
	TotalVotes    int64   `gorm:"column:total_votes"`
	AverageRating float64 `gorm:"column:average_rating"`
	Rating1       int64   `gorm:"column:rating_1"`
	Rating2       int64   `gorm:"column:rating_2"`
	Rating3       int64   `gorm:"column:rating_3"`
	Rating4       int64   `gorm:"column:rating_4"`
	Rating5       int64   `gorm:"column:rating_5"`
}

// Bucket returns the count for one rating value 1..5.
func (g GameWithStats) Bucket(value int) int64 {
	switch value {
	case 1:
		return g.Rating1
	case 2:
		return g.Rating2
	case 3:
		return g.Rating3
	case 4:
		return g.Rating4
	case 5:
		return g.Rating5
	}
	return 0
}

type GameRepository interface {
	Exists(addressBar string) (bool, error)
	ListWithStats() ([]GameWithStats, error)
}

type gameRepository struct {
	db     *gorm.DB
	tables models.Tables
}

func NewGameRepository(db *gorm.DB, tables models.Tables) GameRepository {
	return &gameRepository{db: db, tables: tables}
}

// Exists reports whether a game with the given address bar is present.
func (r *gameRepository) Exists(addressBar string) (bool, error) {
	var count int64
	err := r.db.Table(r.tables.Games).
		Where("address_bar = ?", addressBar).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListWithStats joins every game with its rating aggregate, ordered by
// title. Games without ratings appear with zeroed buckets.
func (r *gameRepository) ListWithStats() ([]GameWithStats, error) {
	query := fmt.Sprintf(`
		SELECT
			g.address_bar,
			g.title,
			COALESCE(rs.total_votes, 0) AS total_votes,
			COALESCE(ROUND(rs.average_rating::numeric, 1), 0) AS average_rating,
			COALESCE(rs.rating_1, 0) AS rating_1,
			COALESCE(rs.rating_2, 0) AS rating_2,
			COALESCE(rs.rating_3, 0) AS rating_3,
			COALESCE(rs.rating_4, 0) AS rating_4,
			COALESCE(rs.rating_5, 0) AS rating_5
		FROM %s g
		LEFT JOIN %s rs ON g.address_bar = rs.game_address_bar
		ORDER BY g.title`, r.tables.Games, r.tables.RatingStats)

	var rows []GameWithStats
	if err := r.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
