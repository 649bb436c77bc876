package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/internal/repository"
)

// recentLimit caps the requester's most-recent ratings list.
const recentLimit = 3

// DashboardService computes the per-request dashboard snapshot. Every call
// re-reads the store from scratch: no cache, no partial results, safe to
// re-invoke after a failure.
type DashboardService interface {
	Snapshot(ctx context.Context, userID string) (*model.DashboardSnapshot, error)
}

type dashboardService struct {
	ships       repository.ShipRepository
	ratings     repository.RatingRepository
	profiles    repository.ProfileRepository
	concurrency int
	log         *zap.Logger
}

func NewDashboardService(repos *repository.Set, concurrency int, log *zap.Logger) DashboardService {
	if concurrency <= 0 {
		concurrency = 8
	}
	return &dashboardService{
		ships:       repos.Ships,
		ratings:     repos.Ratings,
		profiles:    repos.Profiles,
		concurrency: concurrency,
		log:         log,
	}
}

func (s *dashboardService) Snapshot(ctx context.Context, userID string) (*model.DashboardSnapshot, error) {
	// Anonymous requester: all-zero snapshot, no store reads at all.
	if userID == "" {
		return model.EmptySnapshot(), nil
	}

	handle, err := s.resolveHandle(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: resolve profile: %w", err)
	}

	ships, err := s.ships.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: list ships: %w", err)
	}

	// Per-ship rating reads are independent, so fan them out. Results land
	// in a slot per ship, keeping store order deterministic for ranking.
	perShip := make([][]*model.Rating, len(ships))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, ship := range ships {
		g.Go(func() error {
			ratings, err := s.ratings.ListByShip(gctx, ship.ID)
			if err != nil {
				return fmt.Errorf("ship %s: %w", ship.ID, err)
			}
			perShip[i] = ratings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: load ratings: %w", err)
	}

	snap := &model.DashboardSnapshot{TotalShips: len(ships)}
	var owned []ownedRating
	for i, ship := range ships {
		snap.TotalRatings += len(perShip[i])
		for _, r := range perShip[i] {
			if ownedBy(r, userID, handle) {
				owned = append(owned, ownedRating{rating: r, shipName: ship.Name})
			}
		}
	}
	snap.UserRatings = len(owned)
	snap.Recent = topRecent(owned, recentLimit)

	s.log.Debug("dashboard snapshot built",
		zap.String("user_id", userID),
		zap.Int("total_ships", snap.TotalShips),
		zap.Int("total_ratings", snap.TotalRatings),
		zap.Int("user_ratings", snap.UserRatings),
	)
	return snap, nil
}

// resolveHandle looks up the requester's display handle once. A missing
// profile is not an error (handle stays empty, legacy matching disabled);
// any other failure aborts the aggregation.
func (s *dashboardService) resolveHandle(ctx context.Context, userID string) (string, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return profile.Handle, nil
}

// ownedBy is the ownership predicate: the stable user id wins; records
// written before ids existed match on the free-text handle instead. The
// handle path only applies when the record has no user id, so a rating is
// never counted twice.
func ownedBy(r *model.Rating, userID, handle string) bool {
	if r.UserID != "" {
		return r.UserID == userID
	}
	return handle != "" && r.UserName == handle
}
