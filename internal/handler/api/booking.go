package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "dormgate/internal/handler/dto/request"
	resdto "dormgate/internal/handler/dto/response"
	"dormgate/internal/handler/middleware"
	"dormgate/internal/usecase/commands"
	"dormgate/internal/usecase/selection"
)

// BookingHandler drives one resident's booking session: the cascading
// building → resource → date → time selection, and its submission.
type BookingHandler struct {
	sessions *selection.Store
	commands commands.BookingCommands
}

func NewBookingHandler(sessions *selection.Store, cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		sessions: sessions,
		commands: cmds,
	}
}

// @Summary Open a booking session
// @Tags booking
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Router /booking/sessions [post]
func (h *BookingHandler) CreateSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, flow := h.sessions.Create(userID, middleware.GetUserBuildingID(c))
	c.JSON(http.StatusCreated, resdto.FromFlowView(id, flow.View()))
}

// @Summary Get booking session state
// @Tags booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /booking/sessions/{id} [get]
func (h *BookingHandler) GetSession(c *gin.Context) {
	id, flow, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlowView(id, flow.View()))
}

// @Summary Choose a building
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SetBuildingRequest true "Building choice"
// @Success 200 {object} resdto.SessionResponse
// @Router /booking/sessions/{id}/building [put]
func (h *BookingHandler) SetBuilding(c *gin.Context) {
	id, flow, ok := h.lookup(c)
	if !ok {
		return
	}

	var req reqdto.SetBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := flow.SetBuilding(c.Request.Context(), req.BuildingID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlowView(id, flow.View()))
}

// @Summary Choose a resource
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SetResourceRequest true "Resource choice"
// @Success 200 {object} resdto.SessionResponse
// @Router /booking/sessions/{id}/resource [put]
func (h *BookingHandler) SetResource(c *gin.Context) {
	id, flow, ok := h.lookup(c)
	if !ok {
		return
	}

	var req reqdto.SetResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := flow.SetResource(req.ResourceID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlowView(id, flow.View()))
}

// @Summary Choose a date (laundry branch)
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SetDateRequest true "Date choice, empty clears"
// @Success 200 {object} resdto.SessionResponse
// @Router /booking/sessions/{id}/date [put]
func (h *BookingHandler) SetDate(c *gin.Context) {
	id, flow, ok := h.lookup(c)
	if !ok {
		return
	}

	var req reqdto.SetDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := flow.SetDate(c.Request.Context(), req.Date); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlowView(id, flow.View()))
}

// @Summary Pick an offered laundry slot
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.ChooseSlotRequest true "Verbatim slot timestamps"
// @Success 200 {object} resdto.SessionResponse
// @Router /booking/sessions/{id}/slot [put]
func (h *BookingHandler) ChooseSlot(c *gin.Context) {
	id, flow, ok := h.lookup(c)
	if !ok {
		return
	}

	var req reqdto.ChooseSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := flow.ChooseSlot(req.StartTime, req.EndTime); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlowView(id, flow.View()))
}

// @Summary Set the free time range (standard branch)
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SetTimeRangeRequest true "Local start/end"
// @Success 200 {object} resdto.SessionResponse
// @Router /booking/sessions/{id}/times [put]
func (h *BookingHandler) SetTimeRange(c *gin.Context) {
	id, flow, ok := h.lookup(c)
	if !ok {
		return
	}

	var req reqdto.SetTimeRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := flow.SetLocalRange(req.StartTime, req.EndTime); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlowView(id, flow.View()))
}

// @Summary Submit the completed selection
// @Tags booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking/sessions/{id}/submit [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.commands.Submit(c.Request.Context(), id, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(*result.Reservation))
}

// @Summary Abandon a booking session
// @Tags booking
// @Param id path string true "Session ID"
// @Success 204
// @Router /booking/sessions/{id} [delete]
func (h *BookingHandler) DeleteSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.sessions.Delete(id, userID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookingHandler) lookup(c *gin.Context) (uuid.UUID, *selection.Flow, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, nil, false
	}
	id, ok := h.sessionID(c)
	if !ok {
		return uuid.Nil, nil, false
	}
	flow, err := h.sessions.Get(id, userID)
	if err != nil {
		writeError(c, err)
		return uuid.Nil, nil, false
	}
	return id, flow, true
}
