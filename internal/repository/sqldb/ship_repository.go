package sqldb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/internal/repository"
)

type shipRepository struct {
	db *gorm.DB
}

func NewShipRepository(db *gorm.DB) repository.ShipRepository { return &shipRepository{db: db} }

func (r *shipRepository) ListAll(ctx context.Context) ([]*model.Ship, error) {
	var ships []*model.Ship
	err := r.db.WithContext(ctx).Order("name").Find(&ships).Error
	return ships, err
}

func (r *shipRepository) Search(ctx context.Context, query string, limit int) ([]*model.Ship, error) {
	var ships []*model.Ship
	tx := r.db.WithContext(ctx).Order("name").Limit(limit)
	if query != "" {
		tx = tx.Where("name LIKE ?", "%"+query+"%")
	}
	err := tx.Find(&ships).Error
	return ships, err
}

func (r *shipRepository) Get(ctx context.Context, id string) (*model.Ship, error) {
	var ship model.Ship
	err := r.db.WithContext(ctx).First(&ship, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ship, nil
}

func (r *shipRepository) Create(ctx context.Context, ship *model.Ship) error {
	return r.db.WithContext(ctx).Create(ship).Error
}
