package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dormgate/internal/domain/booking"
	resdto "dormgate/internal/handler/dto/response"
	"dormgate/internal/handler/middleware"
	"dormgate/internal/usecase/queries"
)

// AdminHandler exposes the building-wide reservation list. Each admin gets
// their own coordinator, so one admin paging forward never disturbs another
// admin's filters.
type AdminHandler struct {
	registry *queries.Registry
}

func NewAdminHandler(registry *queries.Registry) *AdminHandler {
	return &AdminHandler{registry: registry}
}

// @Summary List reservations across all residents
// @Tags admin
// @Produce json
// @Param page query int false "Page number, zero based"
// @Param size query int false "Page size"
// @Param sortDirection query string false "ASC or DESC"
// @Param buildingId query string false "Filter by building"
// @Param resourceId query string false "Filter by resource"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param search query string false "Resident name search"
// @Success 200 {object} resdto.AdminReservationPageResponse
// @Router /admin/reservations [get]
func (h *AdminHandler) List(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	filter, err := parseAdminFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	snap, err := h.registry.For(adminID).Query(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListSnapshot(snap))
}

// @Summary Cancel any reservation
// @Tags admin
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.AdminReservationPageResponse
// @Failure 404 {object} map[string]string
// @Router /admin/reservations/{id} [delete]
func (h *AdminHandler) Cancel(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	snap, err := h.registry.For(adminID).Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListSnapshot(snap))
}

func parseAdminFilter(c *gin.Context) (booking.AdminFilter, error) {
	filter := booking.AdminFilter{
		Size:          queries.DefaultPageSize,
		SortDirection: "DESC",
	}

	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 0 {
			return booking.AdminFilter{}, errInvalidQuery
		}
		filter.Page = page
	}
	if v := c.Query("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return booking.AdminFilter{}, errInvalidQuery
		}
		filter.Size = size
	}
	if v := c.Query("sortDirection"); v != "" {
		if v != "ASC" && v != "DESC" {
			return booking.AdminFilter{}, errInvalidQuery
		}
		filter.SortDirection = v
	}
	filter.BuildingID = c.Query("buildingId")
	filter.ResourceID = c.Query("resourceId")
	filter.Date = c.Query("date")
	filter.Search = c.Query("search")
	return filter, nil
}
