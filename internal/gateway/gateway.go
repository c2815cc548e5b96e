package gateway

import (
	"context"

	"dormgate/internal/domain/booking"
)

//go:generate mockgen -source=gateway.go -destination=../../tests/mock/gateway/gateway_mock.go -package=gatewaymock

// Gateway is the typed boundary to the remote dormitory API. All reservation
// state lives behind it; the service never mutates reservations directly,
// only requests creation/cancellation and re-reads afterward.
type Gateway interface {
	ListBuildings(ctx context.Context) ([]booking.Building, error)
	ListResourcesByBuilding(ctx context.Context, buildingID string) ([]booking.Resource, error)
	// ListAvailableSlots enumerates the legally bookable windows for a
	// laundry resource on the given date (YYYY-MM-DD).
	ListAvailableSlots(ctx context.Context, resourceID, date string) ([]booking.TimeSlot, error)
	CreateReservation(ctx context.Context, in booking.CreateReservationInput) (*booking.Reservation, error)
	CancelReservation(ctx context.Context, reservationID string) error
	ListMyReservations(ctx context.Context) ([]booking.Reservation, error)
	ListAdminReservations(ctx context.Context, filter booking.AdminFilter) (*booking.ReservationPage, error)
}
