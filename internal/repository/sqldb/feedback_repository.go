package sqldb

import (
	"context"

	"gorm.io/gorm"

	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/internal/repository"
)

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *model.Feedback) error {
	return r.db.WithContext(ctx).Create(fb).Error
}
