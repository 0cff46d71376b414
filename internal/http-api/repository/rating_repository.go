package repository

import (
	"errors"

	"gamecomment/internal/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.Rating) error
	StatsByGame(addressBar string) (*models.RatingStats, error)
	ReplaceCounts(addressBar string, counts map[int]int) error
}

type ratingRepository struct {
	db     *gorm.DB
	tables models.Tables
}

func NewRatingRepository(db *gorm.DB, tables models.Tables) RatingRepository {
	return &ratingRepository{db: db, tables: tables}
}

// Create inserts a single rating row.
func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Table(r.tables.Ratings).Create(rating).Error
}

// StatsByGame reads the aggregate view for one game. A game with no ratings
// has no view row; that is returned as zeroed stats, not an error.
func (r *ratingRepository) StatsByGame(addressBar string) (*models.RatingStats, error) {
	var stats models.RatingStats
	err := r.db.Table(r.tables.RatingStats).
		Where("game_address_bar = ?", addressBar).
		Take(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.RatingStats{GameAddressBar: addressBar}, nil
		}
		return nil, err
	}
	return &stats, nil
}

// ReplaceCounts deletes every rating for the game and inserts synthetic rows
// matching the requested per-value counts, all inside one transaction so a
// reader never observes the game with zero ratings mid-replacement. The
// synthetic rows are deliberately indistinguishable placeholders; only the
// aggregate matters.
func (r *ratingRepository) ReplaceCounts(addressBar string, counts map[int]int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(r.tables.Ratings).
			Where("game_address_bar = ?", addressBar).
			Delete(&models.Rating{}).Error; err != nil {
			return err
		}

		var rows []models.Rating
		for value := 1; value <= 5; value++ {
			for i := 0; i < counts[value]; i++ {
				rows = append(rows, models.Rating{
					GameAddressBar: addressBar,
					Rating:         value,
				})
			}
		}
		if len(rows) == 0 {
			return nil
		}

		return tx.Table(r.tables.Ratings).CreateInBatches(rows, 500).Error
	})
}
