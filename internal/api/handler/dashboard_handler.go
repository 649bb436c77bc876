package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shiprate/shiprate-server/internal/api/middleware"
	"github.com/shiprate/shiprate-server/pkg/response"
)

// Dashboard returns the requester's dashboard snapshot.
// @Summary Dashboard statistics
// @Description Ship/rating totals plus the requester's three most recent ratings. Anonymous requests get an all-zero snapshot.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=model.DashboardSnapshot}
// @Failure 500 {object} response.Response
// @Router /api/v1/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	snap, err := h.dashboards.Snapshot(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		// Fail-fast contract: no partial snapshot. The client shows a
		// retry affordance and re-requests; the computation is idempotent.
		h.log.Error("dashboard aggregation failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, snap)
}
