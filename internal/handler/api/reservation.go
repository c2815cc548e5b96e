package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "dormgate/internal/handler/dto/response"
	"dormgate/internal/usecase/commands"
	"dormgate/internal/usecase/queries"
)

// ReservationHandler serves the resident-facing read side plus the
// reference lists the booking form cascades over.
type ReservationHandler struct {
	queries  queries.ReservationQueries
	commands commands.BookingCommands
}

func NewReservationHandler(q queries.ReservationQueries, cmds commands.BookingCommands) *ReservationHandler {
	return &ReservationHandler{
		queries:  q,
		commands: cmds,
	}
}

// @Summary List my reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	reservations, err := h.queries.ListMine(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservations(reservations))
}

// @Summary Cancel one of my reservations
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	if err := h.commands.CancelOwn(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List all buildings
// @Tags reference
// @Produce json
// @Success 200 {array} resdto.BuildingResponse
// @Router /buildings [get]
func (h *ReservationHandler) ListBuildings(c *gin.Context) {
	buildings, err := h.queries.ListBuildings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBuildings(buildings))
}

// @Summary List resources in a building
// @Tags reference
// @Produce json
// @Param id path string true "Building ID"
// @Success 200 {array} resdto.ResourceResponse
// @Router /buildings/{id}/resources [get]
func (h *ReservationHandler) ListResources(c *gin.Context) {
	resources, err := h.queries.ListResources(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResources(resources))
}
