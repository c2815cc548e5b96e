package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainbooking "dormgate/internal/domain/booking"
	"dormgate/internal/pkg/errs"
)

var errInvalidQuery = errors.New("invalid query parameter")

// writeError maps usecase/gateway errors onto HTTP statuses. Server-reported
// messages are surfaced verbatim; the generic fallback only covers errors
// without a structured cause.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrSessionNotFound):
		status, msg = http.StatusNotFound, "Booking session not found"
	case errors.Is(err, errs.ErrReservationGone):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrUnknownBuilding),
		errors.Is(err, errs.ErrUnknownResource),
		errors.Is(err, errs.ErrSlotNotOffered):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, errs.ErrSubmitInFlight):
		status, msg = http.StatusConflict, "Submission already in progress"
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrUserConflict):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, domainbooking.ErrEndBeforeStart),
		errors.Is(err, domainbooking.ErrIncompleteSelection),
		errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrInvalidTime),
		errors.Is(err, errs.ErrOutsideHours),
		errors.Is(err, errs.ErrReservationTooLong),
		errors.Is(err, errs.ErrPastReservation):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, errs.ErrSuperseded):
		// The caller's request was replaced by a newer one; nothing to render.
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrNetwork):
		status, msg = http.StatusBadGateway, "Upstream service unavailable"
	}

	c.JSON(status, gin.H{"error": msg})
}
