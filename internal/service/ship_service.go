package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/internal/repository"
)

const defaultSearchLimit = 20

type ShipService interface {
	Search(ctx context.Context, query string, limit int) ([]*model.Ship, error)
	Get(ctx context.Context, id string) (*model.Ship, error)
	Create(ctx context.Context, name, imo string) (*model.Ship, error)
}

type shipService struct {
	repo  repository.ShipRepository
	cache *redis.Client
	ttl   time.Duration
}

// NewShipService wires the catalog over the store with a read-through
// search cache. cache may be nil; the service then always hits the store.
func NewShipService(repo repository.ShipRepository, cache *redis.Client, ttl time.Duration) ShipService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &shipService{repo: repo, cache: cache, ttl: ttl}
}

func (s *shipService) Search(ctx context.Context, query string, limit int) ([]*model.Ship, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultSearchLimit
	}

	key := fmt.Sprintf("ships:search:%s:%d", query, limit)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var ships []*model.Ship
			if uErr := json.Unmarshal(data, &ships); uErr == nil {
				return ships, nil
			}
		}
	}

	ships, err := s.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if payload, err := json.Marshal(ships); err == nil {
			_ = s.cache.Set(ctx, key, payload, s.ttl).Err()
		}
	}
	return ships, nil
}

func (s *shipService) Get(ctx context.Context, id string) (*model.Ship, error) {
	return s.repo.Get(ctx, id)
}

func (s *shipService) Create(ctx context.Context, name, imo string) (*model.Ship, error) {
	now := time.Now().UTC()
	ship := &model.Ship{
		ID:        uuid.NewString(),
		Name:      name,
		IMO:       imo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, ship); err != nil {
		return nil, err
	}
	return ship, nil
}
