package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/internal/repository"
)

type ratingRepository struct {
	coll *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) repository.RatingRepository {
	return &ratingRepository{coll: db.Collection(collRatings)}
}

func (r *ratingRepository) ListByShip(ctx context.Context, shipID string) ([]*model.Rating, error) {
	cur, err := r.coll.Find(ctx, bson.M{"shipId": shipID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var ratings []*model.Rating
	if err := cur.All(ctx, &ratings); err != nil {
		return nil, err
	}
	// Old records carry score values as raw bson containers; flatten them
	// so the scoring code only ever sees plain maps.
	for _, rt := range ratings {
		if rt.Scores != nil {
			rt.Scores = model.ScoreMap(plainMap(rt.Scores))
		}
	}
	return ratings, nil
}

func (r *ratingRepository) Create(ctx context.Context, rating *model.Rating) error {
	_, err := r.coll.InsertOne(ctx, rating)
	return err
}
