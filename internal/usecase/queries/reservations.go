package queries

import (
	"context"

	"dormgate/internal/domain/booking"
	"dormgate/internal/gateway"
)

//go:generate mockgen -source=reservations.go -destination=../../../tests/mock/queries/reservations_mock.go -package=queriesmock

// ReservationQueries serves the resident-facing read side. The list is a
// read-through of the remote source of truth: it is re-fetched after every
// mutation the caller initiates and never patched locally.
type ReservationQueries interface {
	ListMine(ctx context.Context) ([]booking.Reservation, error)
	ListBuildings(ctx context.Context) ([]booking.Building, error)
	ListResources(ctx context.Context, buildingID string) ([]booking.Resource, error)
}

type reservationQueriesImpl struct {
	gw gateway.Gateway
}

func NewReservationQueries(gw gateway.Gateway) ReservationQueries {
	return &reservationQueriesImpl{gw: gw}
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context) ([]booking.Reservation, error) {
	return q.gw.ListMyReservations(ctx)
}

func (q *reservationQueriesImpl) ListBuildings(ctx context.Context) ([]booking.Building, error) {
	return q.gw.ListBuildings(ctx)
}

func (q *reservationQueriesImpl) ListResources(ctx context.Context, buildingID string) ([]booking.Resource, error) {
	return q.gw.ListResourcesByBuilding(ctx, buildingID)
}
