package service

import (
	"errors"
	"strings"
	"time"

	"gamecomment/internal/http-api/dto"
	"gamecomment/internal/http-api/models"
	"gamecomment/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrCommentNotFound = errors.New("comment not found")
)

const (
	maxNameLength = 100
	maxTextLength = 500
)

type CommentService interface {
	ListByGame(pageID string) ([]dto.CommentResponse, error)
	Create(req dto.CreateCommentRequest) (*dto.CommentResponse, error)
	// CreateManual is the admin path: the comment is flagged as
	// admin-authored and may carry an explicit timestamp.
	CreateManual(req dto.ManualCommentRequest) (*dto.CommentResponse, error)
	// Delete removes the comment only when (commentID, pageID) match.
	Delete(pageID string, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	gameRepo    repository.GameRepository
}

func NewCommentService(commentRepo repository.CommentRepository, gameRepo repository.GameRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		gameRepo:    gameRepo,
	}
}

func (s *commentService) ListByGame(pageID string) ([]dto.CommentResponse, error) {
	if err := validateInput(pageID, "page ID", 0); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByGame(pageID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comments[i]))
	}
	return responses, nil
}

func (s *commentService) Create(req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if err := s.validateFields(req.PageID, req.Name, req.Text, req.Email); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		GameAddressBar: req.PageID,
		Name:           strings.TrimSpace(req.Name),
		Email:          normalizeEmail(req.Email),
		Text:           strings.TrimSpace(req.Text),
		AddedByAdmin:   false,
	}

	return s.insert(comment)
}

func (s *commentService) CreateManual(req dto.ManualCommentRequest) (*dto.CommentResponse, error) {
	if err := s.validateFields(req.PageID, req.Name, req.Text, req.Email); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		GameAddressBar: req.PageID,
		Name:           strings.TrimSpace(req.Name),
		Email:          normalizeEmail(req.Email),
		Text:           strings.TrimSpace(req.Text),
		AddedByAdmin:   true,
	}

	// An explicit timestamp must parse; silently defaulting would hide
	// operator mistakes when backdating comments.
	if req.Timestamp != nil && *req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			return nil, NewValidationError("invalid timestamp format, use ISO 8601 (e.g. 2006-01-02T15:04:05Z)")
		}
		comment.CreatedAt = parsed
	}

	return s.insert(comment)
}

func (s *commentService) insert(comment *models.Comment) (*dto.CommentResponse, error) {
	exists, err := s.gameRepo.Exists(comment.GameAddressBar)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrGameNotFound
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

func (s *commentService) Delete(pageID string, commentID int64) error {
	err := s.commentRepo.Delete(commentID, pageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}

func (s *commentService) validateFields(pageID, name, text string, email *string) error {
	if err := validateInput(pageID, "page ID", 0); err != nil {
		return err
	}
	if err := validateInput(name, "name", maxNameLength); err != nil {
		return err
	}
	if err := validateInput(text, "comment text", maxTextLength); err != nil {
		return err
	}
	return validateEmail(email)
}
