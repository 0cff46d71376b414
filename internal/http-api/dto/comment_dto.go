package dto

import (
	"time"

	"gamecomment/internal/http-api/models"
)

type CreateCommentRequest struct {
	PageID string  `json:"pageId"`
	Name   string  `json:"name"`
	Text   string  `json:"text"`
	Email  *string `json:"email"`
}

// ManualCommentRequest is the admin variant of comment creation; the
// optional timestamp backdates the comment and must parse strictly.
type ManualCommentRequest struct {
	PageID    string  `json:"pageId"`
	Name      string  `json:"name"`
	Text      string  `json:"text"`
	Email     *string `json:"email"`
	Timestamp *string `json:"timestamp"`
}

type CommentResponse struct {
	ID             int64     `json:"id"`
	GameAddressBar string    `json:"game_address_bar,omitempty"`
	Name           string    `json:"name"`
	Email          *string   `json:"email"`
	Text           string    `json:"text"`
	AddedByAdmin   bool      `json:"added_by_admin"`
	Timestamp      time.Time `json:"timestamp"`
}

// FromModelToCommentResponse maps a comment for the public list/create
// responses, which do not repeat the game address.
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:           comment.ID,
		Name:         comment.Name,
		Email:        comment.Email,
		Text:         comment.Text,
		AddedByAdmin: comment.AddedByAdmin,
		Timestamp:    comment.CreatedAt,
	}
}

// FromModelToAdminCommentResponse maps a comment for the admin bulk view,
// which includes the owning game.
func FromModelToAdminCommentResponse(comment *models.Comment) *CommentResponse {
	resp := FromModelToCommentResponse(comment)
	resp.GameAddressBar = comment.GameAddressBar
	return resp
}
