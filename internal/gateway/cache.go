package gateway

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"dormgate/internal/domain/booking"
	"dormgate/internal/pkg/config"
)

const (
	buildingsCacheKey  = "buildings"
	resourcesKeyPrefix = "resources:"
)

// CachedGateway memoizes the immutable-ish reference data (buildings, and
// resources per building) in front of another Gateway. Slot availability and
// reservation calls always hit upstream: they are the data whose freshness
// the whole coordination protocol is about.
type CachedGateway struct {
	next      Gateway
	buildings *gocache.Cache
	resources *gocache.Cache
	group     singleflight.Group
}

func NewCachedGateway(next Gateway, cfg config.UpstreamConfig) *CachedGateway {
	return &CachedGateway{
		next:      next,
		buildings: gocache.New(cfg.BuildingsTTL, 2*cfg.BuildingsTTL),
		resources: gocache.New(cfg.ResourcesTTL, 2*cfg.ResourcesTTL),
	}
}

func (g *CachedGateway) ListBuildings(ctx context.Context) ([]booking.Building, error) {
	if cached, ok := g.buildings.Get(buildingsCacheKey); ok {
		return cached.([]booking.Building), nil
	}

	v, err, _ := g.group.Do(buildingsCacheKey, func() (any, error) {
		buildings, err := g.next.ListBuildings(ctx)
		if err != nil {
			return nil, err
		}
		g.buildings.Set(buildingsCacheKey, buildings, gocache.DefaultExpiration)
		return buildings, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]booking.Building), nil
}

func (g *CachedGateway) ListResourcesByBuilding(ctx context.Context, buildingID string) ([]booking.Resource, error) {
	key := resourcesKeyPrefix + buildingID
	if cached, ok := g.resources.Get(key); ok {
		return cached.([]booking.Resource), nil
	}

	v, err, _ := g.group.Do(key, func() (any, error) {
		resources, err := g.next.ListResourcesByBuilding(ctx, buildingID)
		if err != nil {
			return nil, err
		}
		g.resources.Set(key, resources, gocache.DefaultExpiration)
		return resources, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]booking.Resource), nil
}

func (g *CachedGateway) ListAvailableSlots(ctx context.Context, resourceID, date string) ([]booking.TimeSlot, error) {
	return g.next.ListAvailableSlots(ctx, resourceID, date)
}

func (g *CachedGateway) CreateReservation(ctx context.Context, in booking.CreateReservationInput) (*booking.Reservation, error) {
	return g.next.CreateReservation(ctx, in)
}

func (g *CachedGateway) CancelReservation(ctx context.Context, reservationID string) error {
	return g.next.CancelReservation(ctx, reservationID)
}

func (g *CachedGateway) ListMyReservations(ctx context.Context) ([]booking.Reservation, error) {
	return g.next.ListMyReservations(ctx)
}

func (g *CachedGateway) ListAdminReservations(ctx context.Context, filter booking.AdminFilter) (*booking.ReservationPage, error) {
	return g.next.ListAdminReservations(ctx, filter)
}

// Flush drops all cached reference data. Handy when an admin edits
// facilities and the change must show up before the TTL lapses.
func (g *CachedGateway) Flush() {
	g.buildings.Flush()
	g.resources.Flush()
}

var _ Gateway = (*CachedGateway)(nil)
