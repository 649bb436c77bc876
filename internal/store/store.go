package store

import (
	"context"
	"fmt"

	"github.com/shiprate/shiprate-server/internal/config"
	"github.com/shiprate/shiprate-server/internal/repository"
	"github.com/shiprate/shiprate-server/internal/repository/mongodb"
	"github.com/shiprate/shiprate-server/internal/repository/sqldb"
)

// Open builds the repository set for the configured backend. The variant is
// fixed at process start; nothing downstream knows which store it talks to.
// The returned close function releases the underlying connection.
func Open(ctx context.Context, cfg config.StoreConfig) (*repository.Set, func(context.Context) error, error) {
	switch cfg.Driver {
	case "mongo":
		client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		db := client.Database(cfg.Mongo.Database)
		set := &repository.Set{
			Ships:    mongodb.NewShipRepository(db),
			Ratings:  mongodb.NewRatingRepository(db),
			Profiles: mongodb.NewProfileRepository(db),
			Feedback: mongodb.NewFeedbackRepository(db),
		}
		return set, client.Disconnect, nil

	case "postgres", "sqlite":
		db, err := sqldb.Open(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
		}
		set := &repository.Set{
			Ships:    sqldb.NewShipRepository(db),
			Ratings:  sqldb.NewRatingRepository(db),
			Profiles: sqldb.NewProfileRepository(db),
			Feedback: sqldb.NewFeedbackRepository(db),
		}
		closeFn := func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return set, closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
