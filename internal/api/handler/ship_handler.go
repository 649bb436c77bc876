package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shiprate/shiprate-server/internal/repository"
	"github.com/shiprate/shiprate-server/pkg/response"
)

type createShipRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
	IMO  string `json:"imo" binding:"omitempty,numeric,len=7"`
}

// SearchShips lists ships, optionally filtered by name.
// @Summary Search ships
// @Tags ships
// @Produce json
// @Param q query string false "Name filter"
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} response.Response
// @Router /api/v1/ships [get]
func (h *Handler) SearchShips(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	ships, err := h.ships.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"list": ships})
}

// GetShip returns one ship by id.
// @Summary Get ship
// @Tags ships
// @Produce json
// @Param id path string true "Ship ID"
// @Success 200 {object} response.Response{data=model.Ship}
// @Failure 404 {object} response.Response
// @Router /api/v1/ships/{id} [get]
func (h *Handler) GetShip(c *gin.Context) {
	ship, err := h.ships.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "ship not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, ship)
}

// CreateShip registers a new ship.
// @Summary Create ship
// @Tags ships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createShipRequest true "Ship"
// @Success 201 {object} response.Response{data=model.Ship}
// @Failure 400 {object} response.Response
// @Router /api/v1/ships [post]
func (h *Handler) CreateShip(c *gin.Context) {
	var req createShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ship, err := h.ships.Create(c.Request.Context(), req.Name, req.IMO)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, ship)
}
