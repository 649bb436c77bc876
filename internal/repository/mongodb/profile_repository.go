package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/internal/repository"
)

type profileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &profileRepository{coll: db.Collection(collProfiles)}
}

func (r *profileRepository) Get(ctx context.Context, id string) (*model.UserProfile, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *profileRepository) findOne(ctx context.Context, filter bson.M) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.coll.FindOne(ctx, filter).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *model.UserProfile) error {
	_, err := r.coll.InsertOne(ctx, profile)
	return err
}
