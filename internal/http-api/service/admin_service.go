package service

import (
	"gamecomment/internal/http-api/dto"
	"gamecomment/internal/http-api/repository"
)

type AdminDataService interface {
	// AllGameData joins every game with its rating buckets and full comment
	// list, keyed by address bar, for the admin dashboard.
	AllGameData() (map[string]dto.GameData, error)
}

type adminDataService struct {
	gameRepo    repository.GameRepository
	commentRepo repository.CommentRepository
}

func NewAdminDataService(gameRepo repository.GameRepository, commentRepo repository.CommentRepository) AdminDataService {
	return &adminDataService{
		gameRepo:    gameRepo,
		commentRepo: commentRepo,
	}
}

func (s *adminDataService) AllGameData() (map[string]dto.GameData, error) {
	games, err := s.gameRepo.ListWithStats()
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListAll()
	if err != nil {
		return nil, err
	}

	// Group comments by game up front; ListAll is already newest-first and
	// grouping preserves that order.
	byGame := make(map[string][]dto.CommentResponse)
	for i := range comments {
		c := &comments[i]
		byGame[c.GameAddressBar] = append(byGame[c.GameAddressBar], *dto.FromModelToAdminCommentResponse(c))
	}

	result := make(map[string]dto.GameData, len(games))
	for _, game := range games {
		gameComments := byGame[game.AddressBar]
		if gameComments == nil {
			gameComments = []dto.CommentResponse{}
		}
		result[game.AddressBar] = dto.GameData{
			Title: game.Title,
			Ratings: dto.RatingBuckets{
				"1": game.Bucket(1),
				"2": game.Bucket(2),
				"3": game.Bucket(3),
				"4": game.Bucket(4),
				"5": game.Bucket(5),
			},
			Comments: gameComments,
		}
	}

	return result, nil
}
