package errs

import "errors"

// Sentinel errors shared between the gateway boundary and the usecase layers.
var (
	// Client-detected validation failures; never reach the network.
	ErrValidation = errors.New("validation error")

	// Selection / flow errors
	ErrUnknownBuilding = errors.New("building is not selectable")
	ErrUnknownResource = errors.New("resource is not selectable")
	ErrSlotNotOffered  = errors.New("slot is not in the offered set")
	ErrSubmitInFlight  = errors.New("submission already in progress")
	ErrSessionNotFound = errors.New("booking session not found")
	ErrSuperseded      = errors.New("result superseded by a newer request")

	// Remote-reported errors, mapped from upstream error codes.
	ErrConflict           = errors.New("resource already reserved in the selected time slot")
	ErrUserConflict       = errors.New("user already has a reservation in this time slot")
	ErrInvalidTime        = errors.New("invalid reservation time")
	ErrOutsideHours       = errors.New("reservation outside allowed hours")
	ErrReservationTooLong = errors.New("reservation exceeds maximum duration")
	ErrPastReservation    = errors.New("cannot reserve time slots in the past")
	ErrNotFound           = errors.New("resource not found")
	ErrReservationGone    = errors.New("reservation not found")

	// Transport failures; retryable by re-triggering the action.
	ErrNetwork = errors.New("upstream request failed")
)
