package repository

import (
	"context"
	"errors"

	"github.com/shiprate/shiprate-server/internal/model"
)

// ErrNotFound is returned by single-record lookups across all backends.
// Callers that tolerate missing records (profile handle resolution) check
// for it explicitly; anything else is a store failure.
var ErrNotFound = errors.New("record not found")

type ShipRepository interface {
	ListAll(ctx context.Context) ([]*model.Ship, error)
	Search(ctx context.Context, query string, limit int) ([]*model.Ship, error)
	Get(ctx context.Context, id string) (*model.Ship, error)
	Create(ctx context.Context, ship *model.Ship) error
}

type RatingRepository interface {
	ListByShip(ctx context.Context, shipID string) ([]*model.Rating, error)
	Create(ctx context.Context, rating *model.Rating) error
}

type ProfileRepository interface {
	Get(ctx context.Context, id string) (*model.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*model.UserProfile, error)
	Create(ctx context.Context, profile *model.UserProfile) error
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *model.Feedback) error
}

// Set bundles the four repositories a configured backend provides.
type Set struct {
	Ships    ShipRepository
	Ratings  RatingRepository
	Profiles ProfileRepository
	Feedback FeedbackRepository
}
