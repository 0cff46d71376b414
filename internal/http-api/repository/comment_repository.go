package repository

import (
	"gamecomment/internal/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByGame(addressBar string) ([]models.Comment, error)
	ListAll() ([]models.Comment, error)
	Delete(commentID int64, addressBar string) error
}

type commentRepository struct {
	db     *gorm.DB
	tables models.Tables
}

func NewCommentRepository(db *gorm.DB, tables models.Tables) CommentRepository {
	return &commentRepository{db: db, tables: tables}
}

// Create inserts a comment. A caller-set CreatedAt (admin manual insert)
// is preserved; a zero one is filled by gorm.
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Table(r.tables.Comments).Create(comment).Error
}

// ListByGame retrieves all comments for a game, newest first.
func (r *commentRepository) ListByGame(addressBar string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Table(r.tables.Comments).
		Where("game_address_bar = ?", addressBar).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// ListAll retrieves every comment across all games, newest first. Used by
// the admin bulk view.
func (r *commentRepository) ListAll() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Table(r.tables.Comments).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete removes a comment only when both id and game match; a mismatched
// pair reports gorm.ErrRecordNotFound.
func (r *commentRepository) Delete(commentID int64, addressBar string) error {
	result := r.db.Table(r.tables.Comments).
		Where("id = ? AND game_address_bar = ?", commentID, addressBar).
		Delete(&models.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
