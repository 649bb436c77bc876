package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shiprate/shiprate-server/internal/api/middleware"
	"github.com/shiprate/shiprate-server/internal/service"
	"github.com/shiprate/shiprate-server/pkg/response"
)

type submitRatingRequest struct {
	// Scores maps category name to a 1..5 value, e.g.
	// {"cabin": 4, "bridge": 5, "food": 3, "crew": 4}.
	Scores  map[string]float64 `json:"scores" binding:"required,min=1,dive,keys,scorecategory,endkeys,gte=1,lte=5"`
	Comment string             `json:"comment" binding:"max=2000"`
}

// SubmitRating stores the requester's rating for a ship.
// @Summary Submit rating
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ship ID"
// @Param request body submitRatingRequest true "Category scores"
// @Success 201 {object} response.Response{data=model.Rating}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/ships/{id}/ratings [post]
func (h *Handler) SubmitRating(c *gin.Context) {
	var req submitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	rating, err := h.ratings.Submit(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.Scores, req.Comment)
	if errors.Is(err, service.ErrShipNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, rating)
}

// ListRatings returns all ratings of a ship.
// @Summary List ship ratings
// @Tags ratings
// @Produce json
// @Param id path string true "Ship ID"
// @Success 200 {object} response.Response
// @Router /api/v1/ships/{id}/ratings [get]
func (h *Handler) ListRatings(c *gin.Context) {
	ratings, err := h.ratings.ListByShip(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"list": ratings})
}
