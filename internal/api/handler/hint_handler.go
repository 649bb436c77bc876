package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shiprate/shiprate-server/pkg/response"
)

// InstallHint returns the install banner for the configured platform.
// @Summary Install hint
// @Tags platform
// @Produce json
// @Success 200 {object} response.Response{data=model.InstallHint}
// @Router /api/v1/install-hint [get]
func (h *Handler) InstallHint(c *gin.Context) {
	response.Success(c, h.hints.Hint())
}
