package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/internal/repository"
)

type feedbackRepository struct {
	coll *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) repository.FeedbackRepository {
	return &feedbackRepository{coll: db.Collection(collFeedback)}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *model.Feedback) error {
	_, err := r.coll.InsertOne(ctx, fb)
	return err
}
