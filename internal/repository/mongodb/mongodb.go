package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shiprate/shiprate-server/internal/model"
)

const (
	collShips    = "ships"
	collRatings  = "ratings"
	collProfiles = "users"
	collFeedback = "feedback"
)

// Connect opens and pings a client. The caller owns the returned client
// and is responsible for Disconnect on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// plainValue rewrites bson container types into plain Go maps/slices so the
// layers above never see driver types inside rating score maps.
func plainValue(v any) any {
	switch t := v.(type) {
	case primitive.M:
		return plainMap(t)
	case model.ScoreMap:
		return plainMap(t)
	case map[string]any:
		return plainMap(t)
	case primitive.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plainValue(e.Value)
		}
		return m
	case primitive.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}

func plainMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plainValue(v)
	}
	return out
}
