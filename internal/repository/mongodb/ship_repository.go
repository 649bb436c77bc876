package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/internal/repository"
)

type shipRepository struct {
	coll *mongo.Collection
}

func NewShipRepository(db *mongo.Database) repository.ShipRepository {
	return &shipRepository{coll: db.Collection(collShips)}
}

func (r *shipRepository) ListAll(ctx context.Context) ([]*model.Ship, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var ships []*model.Ship
	if err := cur.All(ctx, &ships); err != nil {
		return nil, err
	}
	return ships, nil
}

func (r *shipRepository) Search(ctx context.Context, query string, limit int) ([]*model.Ship, error) {
	filter := bson.M{}
	if query != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: regexEscape(query), Options: "i"}}
	}
	cur, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	var ships []*model.Ship
	if err := cur.All(ctx, &ships); err != nil {
		return nil, err
	}
	return ships, nil
}

func (r *shipRepository) Get(ctx context.Context, id string) (*model.Ship, error) {
	var ship model.Ship
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ship)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ship, nil
}

func (r *shipRepository) Create(ctx context.Context, ship *model.Ship) error {
	_, err := r.coll.InsertOne(ctx, ship)
	return err
}

// regexEscape keeps user search terms literal inside the $regex filter.
func regexEscape(s string) string {
	const special = `\.+*?()|[]{}^$`
	out := make([]rune, 0, len(s))
	for _, c := range s {
		for _, sp := range special {
			if c == sp {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, c)
	}
	return string(out)
}
