package sqldb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/internal/repository"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	return db
}

func TestShipRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewShipRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &model.Ship{ID: "s1", Name: "MV Boreas", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repo.Create(ctx, &model.Ship{ID: "s2", Name: "MV Aurora", IMO: "9321483", CreatedAt: now, UpdatedAt: now}))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "MV Aurora", all[0].Name, "listed in name order")

	found, err := repo.Search(ctx, "aurora", 10)
	require.NoError(t, err)
	if assert.Len(t, found, 1) {
		assert.Equal(t, "s2", found[0].ID)
	}

	ship, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "MV Boreas", ship.Name)

	_, err = repo.Get(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRatingRepositoryScoresRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	rating := &model.Rating{
		ID:        "r1",
		ShipID:    "s1",
		UserID:    "u1",
		UserName:  "capt.jansen",
		Scores:    model.NewScores(map[string]float64{"cabin": 4, "bridge": 2}),
		Comment:   "tidy bridge",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, rating))

	// legacy record: no user id, no createdAt, string date only
	legacy := &model.Rating{
		ID:       "r2",
		ShipID:   "s1",
		UserName: "old.hand",
		Date:     "2019-08-14",
		Scores:   model.ScoreMap{"food": map[string]any{"score": "n/a"}},
	}
	require.NoError(t, repo.Create(ctx, legacy))

	got, err := repo.ListByShip(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	byID := map[string]*model.Rating{got[0].ID: got[0], got[1].ID: got[1]}

	r1 := byID["r1"]
	require.NotNil(t, r1)
	cabin, ok := r1.Scores["cabin"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 4.0, cabin["score"].(float64), 1e-9)
	assert.Equal(t, "capt.jansen", r1.UserName)

	r2 := byID["r2"]
	require.NotNil(t, r2)
	assert.Empty(t, r2.UserID)
	assert.Equal(t, "2019-08-14", r2.Date)
	assert.True(t, r2.CreatedAt.IsZero(), "legacy record keeps its zero createdAt")
	food, ok := r2.Scores["food"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "n/a", food["score"])

	none, err := repo.ListByShip(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProfileRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	profile := &model.UserProfile{
		ID:           "u1",
		Email:        "jansen@pilots.example",
		Handle:       "capt.jansen",
		PasswordHash: "x",
	}
	require.NoError(t, repo.Create(ctx, profile))

	byID, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "capt.jansen", byID.Handle)

	byEmail, err := repo.GetByEmail(ctx, "jansen@pilots.example")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.GetByEmail(ctx, "missing@pilots.example")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFeedbackRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewFeedbackRepository(db)

	err := repo.Create(context.Background(), &model.Feedback{
		ID:        "f1",
		Subject:   "chart overlay",
		Message:   "the berth overview misses the eastern quay",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Feedback{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
