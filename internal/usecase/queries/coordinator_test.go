//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"dormgate/internal/domain/booking"
	"dormgate/internal/pkg/clock"
	"dormgate/internal/pkg/errs"
	"dormgate/internal/usecase/queries"
	gatewaymock "dormgate/tests/mock/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCoordinator(t *testing.T) (*queries.Coordinator, *gatewaymock.MockGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := gatewaymock.NewMockGateway(ctrl)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return queries.NewCoordinator(gw, clk), gw
}

func pageFor(filter booking.AdminFilter, total int) *booking.ReservationPage {
	return &booking.ReservationPage{
		Content:       []booking.AdminReservation{{ID: "rsv-1", LastName: "Kowalski"}},
		TotalElements: total,
		TotalPages:    (total + filter.Size - 1) / filter.Size,
		CurrentPage:   filter.Page,
		PageSize:      filter.Size,
	}
}

func TestCoordinatorQuery(t *testing.T) {
	t.Run("successful fetch is loaded", func(t *testing.T) {
		coord, gw := newTestCoordinator(t)
		filter := booking.AdminFilter{Size: 10, SortDirection: "DESC"}
		gw.EXPECT().ListAdminReservations(gomock.Any(), filter).Return(pageFor(filter, 42), nil)

		snap, err := coord.Query(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, queries.ListStatusLoaded, snap.Status)
		assert.Equal(t, 42, snap.Page.TotalElements)
	})

	t.Run("failure is kept alongside the filter", func(t *testing.T) {
		coord, gw := newTestCoordinator(t)
		filter := booking.AdminFilter{Size: 10}
		gw.EXPECT().ListAdminReservations(gomock.Any(), filter).Return(nil, errs.ErrNetwork)

		_, err := coord.Query(context.Background(), filter)
		assert.ErrorIs(t, err, errs.ErrNetwork)

		snap := coord.Snapshot()
		assert.Equal(t, queries.ListStatusFailed, snap.Status)
		assert.ErrorIs(t, snap.Err, errs.ErrNetwork)
	})

	t.Run("zero size falls back to the default", func(t *testing.T) {
		coord, gw := newTestCoordinator(t)
		want := booking.AdminFilter{Size: queries.DefaultPageSize}
		gw.EXPECT().ListAdminReservations(gomock.Any(), want).Return(pageFor(want, 1), nil)

		_, err := coord.Query(context.Background(), booking.AdminFilter{})
		require.NoError(t, err)
	})
}

func TestCoordinatorPageReset(t *testing.T) {
	coord, gw := newTestCoordinator(t)

	deep := booking.AdminFilter{Page: 7, Size: 10}
	gw.EXPECT().ListAdminReservations(gomock.Any(), deep).Return(pageFor(deep, 100), nil)
	_, err := coord.Query(context.Background(), deep)
	require.NoError(t, err)

	// Narrowing the filter on page 7 must land on page 0, never request a
	// page the smaller result set may not have.
	narrowed := booking.AdminFilter{Page: 7, Size: 10, Search: "kowalski"}
	wantFetched := narrowed
	wantFetched.Page = 0
	gw.EXPECT().ListAdminReservations(gomock.Any(), wantFetched).Return(pageFor(wantFetched, 3), nil)

	snap, err := coord.Query(context.Background(), narrowed)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Filter.Page)

	// Paging within the same dimensions keeps the requested page.
	next := wantFetched
	next.Page = 1
	gw.EXPECT().ListAdminReservations(gomock.Any(), next).Return(pageFor(next, 3), nil)
	snap, err = coord.Query(context.Background(), next)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Filter.Page)
}

func TestCoordinatorSupersession(t *testing.T) {
	coord, gw := newTestCoordinator(t)

	staleStarted := make(chan struct{})
	releaseStale := make(chan struct{})
	staleDone := make(chan struct{})

	stale := booking.AdminFilter{Size: 10, Date: "2025-06-01"}
	fresh := booking.AdminFilter{Size: 10, Date: "2025-06-02"}

	gw.EXPECT().ListAdminReservations(gomock.Any(), stale).
		DoAndReturn(func(context.Context, booking.AdminFilter) (*booking.ReservationPage, error) {
			close(staleStarted)
			<-releaseStale
			return pageFor(stale, 50), nil
		})
	gw.EXPECT().ListAdminReservations(gomock.Any(), fresh).Return(pageFor(fresh, 5), nil)

	go func() {
		defer close(staleDone)
		_, err := coord.Query(context.Background(), stale)
		assert.ErrorIs(t, err, errs.ErrSuperseded)
	}()
	<-staleStarted

	snap, err := coord.Query(context.Background(), fresh)
	require.NoError(t, err)
	assert.Equal(t, 5, snap.Page.TotalElements)

	// The stale response resolves after the fresh one and must not win.
	close(releaseStale)
	<-staleDone
	final := coord.Snapshot()
	assert.Equal(t, "2025-06-02", final.Filter.Date)
	assert.Equal(t, 5, final.Page.TotalElements)
}

func TestCoordinatorCancel(t *testing.T) {
	coord, gw := newTestCoordinator(t)

	filter := booking.AdminFilter{Size: 10, BuildingID: "bld-1"}
	gw.EXPECT().ListAdminReservations(gomock.Any(), filter).Return(pageFor(filter, 11), nil)
	_, err := coord.Query(context.Background(), filter)
	require.NoError(t, err)

	t.Run("successful cancel refetches the current page", func(t *testing.T) {
		gw.EXPECT().CancelReservation(gomock.Any(), "rsv-1").Return(nil)
		gw.EXPECT().ListAdminReservations(gomock.Any(), filter).Return(pageFor(filter, 10), nil)

		snap, err := coord.Cancel(context.Background(), "rsv-1")
		require.NoError(t, err)
		assert.Equal(t, 10, snap.Page.TotalElements)
	})

	t.Run("failed cancel leaves the list untouched", func(t *testing.T) {
		gw.EXPECT().CancelReservation(gomock.Any(), "rsv-gone").Return(errs.ErrReservationGone)

		snap, err := coord.Cancel(context.Background(), "rsv-gone")
		assert.ErrorIs(t, err, errs.ErrReservationGone)
		assert.Equal(t, queries.ListStatusLoaded, snap.Status)
		assert.Equal(t, 10, snap.Page.TotalElements)
	})
}

func TestRegistryIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := gatewaymock.NewMockGateway(ctrl)
	registry := queries.NewRegistry(gw, clock.NewMockClock(time.Now()))

	a := registry.For("admin-a")
	b := registry.For("admin-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, registry.For("admin-a"))
}
