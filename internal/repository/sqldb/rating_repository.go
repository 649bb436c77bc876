package sqldb

import (
	"context"

	"gorm.io/gorm"

	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/internal/repository"
)

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) repository.RatingRepository { return &ratingRepository{db: db} }

func (r *ratingRepository) ListByShip(ctx context.Context, shipID string) ([]*model.Rating, error) {
	var ratings []*model.Rating
	err := r.db.WithContext(ctx).
		Where("ship_id = ?", shipID).
		Order("created_at").
		Find(&ratings).Error
	return ratings, err
}

func (r *ratingRepository) Create(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}
