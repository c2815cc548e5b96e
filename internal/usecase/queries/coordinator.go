package queries

import (
	"context"
	"sync"
	"time"

	"dormgate/internal/domain/booking"
	"dormgate/internal/gateway"
	"dormgate/internal/pkg/clock"
	"dormgate/internal/pkg/errs"
)

const DefaultPageSize = 10

type ListStatus string

const (
	ListStatusIdle    ListStatus = "IDLE"
	ListStatusLoading ListStatus = "LOADING"
	ListStatusLoaded  ListStatus = "LOADED"
	ListStatusFailed  ListStatus = "FAILED"
)

// ListSnapshot couples the filter with the status and data produced for it.
// One immutable value per fetch cycle, replaced atomically, so a filter
// change and an in-flight fetch completion can never interleave into a
// half-updated view.
type ListSnapshot struct {
	Filter    booking.AdminFilter
	Status    ListStatus
	Page      *booking.ReservationPage
	Err       error
	FetchedAt time.Time
}

// Coordinator keeps one admin's paginated, filtered reservation list
// consistent under concurrent filter changes and cancellations. Each fetch
// cycle gets a generation; a response whose generation is no longer current
// belongs to filters the admin has already left behind and is discarded.
type Coordinator struct {
	mu    sync.Mutex
	gw    gateway.Gateway
	clock clock.Clock
	cur   ListSnapshot
	gen   uint64
}

func NewCoordinator(gw gateway.Gateway, clk clock.Clock) *Coordinator {
	return &Coordinator{
		gw:    gw,
		clock: clk,
		cur:   ListSnapshot{Status: ListStatusIdle, Filter: booking.AdminFilter{Size: DefaultPageSize}},
	}
}

// Query fetches the page for the requested filter. Changing any dimension
// other than the page number resets the page to 0 first, so a narrower
// result set can never be asked for a page it no longer has.
func (c *Coordinator) Query(ctx context.Context, filter booking.AdminFilter) (ListSnapshot, error) {
	c.mu.Lock()
	if filter.Size <= 0 {
		filter.Size = DefaultPageSize
	}
	if !filter.SameDimensions(c.cur.Filter) {
		filter.Page = 0
	}
	c.gen++
	gen := c.gen
	c.cur = ListSnapshot{Filter: filter, Status: ListStatusLoading, FetchedAt: c.clock.Now()}
	c.mu.Unlock()

	page, err := c.gw.ListAdminReservations(ctx, filter)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer query replaced this one while it was in flight; its
		// result must not be applied to filters that no longer match.
		return c.cur, errs.ErrSuperseded
	}
	if err != nil {
		c.cur = ListSnapshot{Filter: filter, Status: ListStatusFailed, Err: err, FetchedAt: c.clock.Now()}
		return c.cur, err
	}
	c.cur = ListSnapshot{Filter: filter, Status: ListStatusLoaded, Page: page, FetchedAt: c.clock.Now()}
	return c.cur, nil
}

// Cancel issues the cancellation and then re-fetches the current page.
// Refetching beats removing the row locally: a removal shifts page
// boundaries and totals that only the server knows.
func (c *Coordinator) Cancel(ctx context.Context, reservationID string) (ListSnapshot, error) {
	if err := c.gw.CancelReservation(ctx, reservationID); err != nil {
		return c.Snapshot(), err
	}

	c.mu.Lock()
	filter := c.cur.Filter
	c.mu.Unlock()
	return c.Query(ctx, filter)
}

func (c *Coordinator) Snapshot() ListSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

// Registry hands out one coordinator per admin so concurrent admins never
// share filter state.
type Registry struct {
	mu           sync.Mutex
	gw           gateway.Gateway
	clock        clock.Clock
	coordinators map[string]*Coordinator
}

func NewRegistry(gw gateway.Gateway, clk clock.Clock) *Registry {
	return &Registry{
		gw:           gw,
		clock:        clk,
		coordinators: make(map[string]*Coordinator),
	}
}

func (r *Registry) For(adminID string) *Coordinator {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.coordinators[adminID]; ok {
		return c
	}
	c := NewCoordinator(r.gw, r.clock)
	r.coordinators[adminID] = c
	return c
}
