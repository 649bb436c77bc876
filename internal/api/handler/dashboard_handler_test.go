package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shiprate/shiprate-server/internal/api/middleware"
	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/pkg/response"
)

type stubDashboardService struct {
	snap *model.DashboardSnapshot
	err  error
	seen string
}

func (s *stubDashboardService) Snapshot(ctx context.Context, userID string) (*model.DashboardSnapshot, error) {
	s.seen = userID
	if s.err != nil {
		return nil, s.err
	}
	return s.snap, nil
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	return c, w
}

func TestDashboardHandler(t *testing.T) {
	stub := &stubDashboardService{snap: &model.DashboardSnapshot{
		TotalShips:   2,
		TotalRatings: 3,
		UserRatings:  2,
		Recent:       []model.RecentRating{{ShipName: "MV Aurora", Average: 4.5}},
	}}
	h := New(stub, nil, nil, nil, nil, nil, zap.NewNop())

	c, w := newTestContext(t)
	c.Set(middleware.ContextUserID, "u1")
	h.Dashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", stub.seen)

	var env response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var snap model.DashboardSnapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, 2, snap.TotalShips)
	assert.Equal(t, "MV Aurora", snap.Recent[0].ShipName)
}

func TestDashboardHandlerAnonymous(t *testing.T) {
	stub := &stubDashboardService{snap: model.EmptySnapshot()}
	h := New(stub, nil, nil, nil, nil, nil, zap.NewNop())

	c, w := newTestContext(t)
	h.Dashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, stub.seen, "no user id reaches the service for anonymous requests")
}

func TestDashboardHandlerFailure(t *testing.T) {
	stub := &stubDashboardService{err: errors.New("store down")}
	h := New(stub, nil, nil, nil, nil, nil, zap.NewNop())

	c, w := newTestContext(t)
	c.Set(middleware.ContextUserID, "u1")
	h.Dashboard(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
