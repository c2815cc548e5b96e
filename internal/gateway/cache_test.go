//go:build unit

package gateway_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"dormgate/internal/domain/booking"
	"dormgate/internal/gateway"
	"dormgate/internal/pkg/config"
	gatewaymock "dormgate/tests/mock/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCachedGateway(t *testing.T) (*gateway.CachedGateway, *gatewaymock.MockGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	next := gatewaymock.NewMockGateway(ctrl)
	return gateway.NewCachedGateway(next, config.NewTestConfig().Upstream), next
}

func TestCachedGatewayBuildings(t *testing.T) {
	cached, next := newCachedGateway(t)
	buildings := []booking.Building{{ID: "bld-1", Name: "Dom A"}}
	next.EXPECT().ListBuildings(gomock.Any()).Return(buildings, nil).Times(1)

	for range 3 {
		got, err := cached.ListBuildings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, buildings, got)
	}
}

func TestCachedGatewayResourcesPerBuilding(t *testing.T) {
	cached, next := newCachedGateway(t)
	aRes := []booking.Resource{{ID: "res-a", BuildingID: "bld-a"}}
	bRes := []booking.Resource{{ID: "res-b", BuildingID: "bld-b"}}
	next.EXPECT().ListResourcesByBuilding(gomock.Any(), "bld-a").Return(aRes, nil).Times(1)
	next.EXPECT().ListResourcesByBuilding(gomock.Any(), "bld-b").Return(bRes, nil).Times(1)

	for range 2 {
		got, err := cached.ListResourcesByBuilding(context.Background(), "bld-a")
		require.NoError(t, err)
		assert.Equal(t, aRes, got)

		got, err = cached.ListResourcesByBuilding(context.Background(), "bld-b")
		require.NoError(t, err)
		assert.Equal(t, bRes, got)
	}
}

func TestCachedGatewayErrorsAreNotCached(t *testing.T) {
	cached, next := newCachedGateway(t)
	gomock.InOrder(
		next.EXPECT().ListBuildings(gomock.Any()).Return(nil, assert.AnError),
		next.EXPECT().ListBuildings(gomock.Any()).Return([]booking.Building{{ID: "bld-1"}}, nil),
	)

	_, err := cached.ListBuildings(context.Background())
	assert.Error(t, err)

	got, err := cached.ListBuildings(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCachedGatewayCollapsesConcurrentFetches(t *testing.T) {
	cached, next := newCachedGateway(t)

	var calls atomic.Int32
	release := make(chan struct{})
	next.EXPECT().ListBuildings(gomock.Any()).
		DoAndReturn(func(context.Context) ([]booking.Building, error) {
			calls.Add(1)
			<-release
			return []booking.Building{{ID: "bld-1"}}, nil
		}).Times(1)

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := cached.ListBuildings(context.Background())
			assert.NoError(t, err)
			assert.Len(t, got, 1)
		}()
	}
	close(release)
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestCachedGatewayFlush(t *testing.T) {
	cached, next := newCachedGateway(t)
	next.EXPECT().ListBuildings(gomock.Any()).Return([]booking.Building{{ID: "bld-1"}}, nil).Times(2)

	_, err := cached.ListBuildings(context.Background())
	require.NoError(t, err)

	cached.Flush()
	_, err = cached.ListBuildings(context.Background())
	require.NoError(t, err)
}

func TestCachedGatewayPassesThroughLiveCalls(t *testing.T) {
	cached, next := newCachedGateway(t)

	slots := []booking.TimeSlot{}
	next.EXPECT().ListAvailableSlots(gomock.Any(), "res-1", "2025-06-01").Return(slots, nil).Times(2)

	// Availability is never cached; every call hits upstream.
	for range 2 {
		_, err := cached.ListAvailableSlots(context.Background(), "res-1", "2025-06-01")
		require.NoError(t, err)
	}
}
