package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/internal/repository"
)

var ErrShipNotFound = errors.New("ship not found")

type RatingService interface {
	Submit(ctx context.Context, shipID, userID string, categories map[string]float64, comment string) (*model.Rating, error)
	ListByShip(ctx context.Context, shipID string) ([]*model.Rating, error)
}

type ratingService struct {
	ships    repository.ShipRepository
	ratings  repository.RatingRepository
	profiles repository.ProfileRepository
}

func NewRatingService(repos *repository.Set) RatingService {
	return &ratingService{ships: repos.Ships, ratings: repos.Ratings, profiles: repos.Profiles}
}

// Submit stores a new rating for the requester. New records always carry
// the stable user id; the handle is denormalized in as well so records
// stay readable by clients that predate ids.
func (s *ratingService) Submit(ctx context.Context, shipID, userID string, categories map[string]float64, comment string) (*model.Rating, error) {
	if _, err := s.ships.Get(ctx, shipID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrShipNotFound
		}
		return nil, fmt.Errorf("rating: load ship: %w", err)
	}

	handle := ""
	if profile, err := s.profiles.Get(ctx, userID); err == nil {
		handle = profile.Handle
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("rating: load profile: %w", err)
	}

	rating := &model.Rating{
		ID:        uuid.NewString(),
		ShipID:    shipID,
		UserID:    userID,
		UserName:  handle,
		Scores:    model.NewScores(categories),
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		return nil, fmt.Errorf("rating: store: %w", err)
	}
	return rating, nil
}

func (s *ratingService) ListByShip(ctx context.Context, shipID string) ([]*model.Rating, error) {
	return s.ratings.ListByShip(ctx, shipID)
}
