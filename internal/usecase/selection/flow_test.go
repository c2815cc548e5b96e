//go:build unit

package selection_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"dormgate/internal/domain/booking"
	"dormgate/internal/pkg/errs"
	"dormgate/internal/usecase/selection"
	gatewaymock "dormgate/tests/mock/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	ownBuildingID   = "bld-own"
	otherBuildingID = "bld-other"
)

var (
	testBuildings = []booking.Building{
		{ID: ownBuildingID, Name: "Dom Studencki A"},
		{ID: otherBuildingID, Name: "Dom Studencki B"},
	}
	ownResources = []booking.Resource{
		{ID: "res-washer", Name: "Washer", ResourceType: booking.ResourceTypeLaundry, BuildingID: ownBuildingID},
		{ID: "res-gym", Name: "Gym", ResourceType: booking.ResourceTypeStandard, BuildingID: ownBuildingID},
	}
	otherResources = []booking.Resource{
		{ID: "res-other-washer", Name: "Washer", ResourceType: booking.ResourceTypeLaundry, BuildingID: otherBuildingID},
		{ID: "res-lounge", Name: "Lounge", ResourceType: booking.ResourceTypeStandard, BuildingID: otherBuildingID},
	}
)

func mustSlot(t *testing.T, start, end string) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func newTestFlow(t *testing.T) (*selection.Flow, *gatewaymock.MockGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := gatewaymock.NewMockGateway(ctrl)
	return selection.NewFlow(gw, slog.New(slog.DiscardHandler), ownBuildingID), gw
}

func expectOwnBuilding(gw *gatewaymock.MockGateway) {
	gw.EXPECT().ListBuildings(gomock.Any()).Return(testBuildings, nil)
	gw.EXPECT().ListResourcesByBuilding(gomock.Any(), ownBuildingID).Return(ownResources, nil)
}

func waitForSlotStatus(t *testing.T, flow *selection.Flow, status selection.SlotStatus) selection.SlotAvailability {
	t.Helper()
	require.Eventually(t, func() bool {
		return flow.View().Slots.Status == status
	}, time.Second, time.Millisecond)
	return flow.View().Slots
}

func TestFlowSetBuilding(t *testing.T) {
	t.Run("unknown building is rejected", func(t *testing.T) {
		flow, gw := newTestFlow(t)
		gw.EXPECT().ListBuildings(gomock.Any()).Return(testBuildings, nil)

		err := flow.SetBuilding(context.Background(), "bld-nope")
		assert.ErrorIs(t, err, errs.ErrUnknownBuilding)
		assert.Equal(t, booking.StageEmpty, flow.View().Stage)
	})

	t.Run("own building keeps laundry resources", func(t *testing.T) {
		flow, gw := newTestFlow(t)
		expectOwnBuilding(gw)

		require.NoError(t, flow.SetBuilding(context.Background(), ownBuildingID))
		view := flow.View()
		assert.Equal(t, booking.StageBuildingChosen, view.Stage)
		assert.Len(t, view.Resources, 2)
	})

	t.Run("foreign building hides laundry resources", func(t *testing.T) {
		flow, gw := newTestFlow(t)
		gw.EXPECT().ListBuildings(gomock.Any()).Return(testBuildings, nil)
		gw.EXPECT().ListResourcesByBuilding(gomock.Any(), otherBuildingID).Return(otherResources, nil)

		require.NoError(t, flow.SetBuilding(context.Background(), otherBuildingID))
		view := flow.View()
		require.Len(t, view.Resources, 1)
		assert.Equal(t, "res-lounge", view.Resources[0].ID)
	})
}

func TestFlowSetResource(t *testing.T) {
	flow, gw := newTestFlow(t)
	expectOwnBuilding(gw)
	require.NoError(t, flow.SetBuilding(context.Background(), ownBuildingID))

	assert.ErrorIs(t, flow.SetResource("res-unknown"), errs.ErrUnknownResource)

	require.NoError(t, flow.SetResource("res-washer"))
	assert.Equal(t, booking.StageResourceChosen, flow.View().Stage)
}

func laundryFlow(t *testing.T) (*selection.Flow, *gatewaymock.MockGateway) {
	t.Helper()
	flow, gw := newTestFlow(t)
	expectOwnBuilding(gw)
	require.NoError(t, flow.SetBuilding(context.Background(), ownBuildingID))
	require.NoError(t, flow.SetResource("res-washer"))
	return flow, gw
}

func TestFlowSlotLifecycle(t *testing.T) {
	t.Run("loaded slots become choosable", func(t *testing.T) {
		flow, gw := laundryFlow(t)
		offered := []booking.TimeSlot{
			mustSlot(t, "2025-06-01T08:00:00+02:00", "2025-06-01T11:00:00+02:00"),
			mustSlot(t, "2025-06-01T11:00:00+02:00", "2025-06-01T14:00:00+02:00"),
		}
		gw.EXPECT().ListAvailableSlots(gomock.Any(), "res-washer", "2025-06-01").Return(offered, nil)

		require.NoError(t, flow.SetDate(context.Background(), "2025-06-01"))
		slots := waitForSlotStatus(t, flow, selection.SlotStatusLoaded)
		assert.Len(t, slots.Slots, 2)

		require.NoError(t, flow.ChooseSlot("2025-06-01T08:00:00+02:00", "2025-06-01T11:00:00+02:00"))
		assert.Equal(t, booking.StageLaundryDateChosen, flow.View().Stage)
	})

	t.Run("an answered empty day is loaded, not idle", func(t *testing.T) {
		flow, gw := laundryFlow(t)
		gw.EXPECT().ListAvailableSlots(gomock.Any(), "res-washer", "2025-06-01").Return([]booking.TimeSlot{}, nil)

		require.NoError(t, flow.SetDate(context.Background(), "2025-06-01"))
		slots := waitForSlotStatus(t, flow, selection.SlotStatusLoaded)
		assert.Empty(t, slots.Slots)
	})

	t.Run("fetch failure is reported, not treated as empty", func(t *testing.T) {
		flow, gw := laundryFlow(t)
		gw.EXPECT().ListAvailableSlots(gomock.Any(), "res-washer", "2025-06-01").Return(nil, errs.ErrNetwork)

		require.NoError(t, flow.SetDate(context.Background(), "2025-06-01"))
		slots := waitForSlotStatus(t, flow, selection.SlotStatusFailed)
		assert.ErrorIs(t, slots.Err, errs.ErrNetwork)
	})

	t.Run("clearing the date discards pending slots", func(t *testing.T) {
		flow, gw := laundryFlow(t)
		release := make(chan struct{})
		gw.EXPECT().ListAvailableSlots(gomock.Any(), "res-washer", "2025-06-01").
			DoAndReturn(func(context.Context, string, string) ([]booking.TimeSlot, error) {
				<-release
				return []booking.TimeSlot{mustSlot(t, "2025-06-01T08:00:00Z", "2025-06-01T11:00:00Z")}, nil
			})

		require.NoError(t, flow.SetDate(context.Background(), "2025-06-01"))
		assert.Equal(t, selection.SlotStatusLoading, flow.View().Slots.Status)

		require.NoError(t, flow.SetDate(context.Background(), ""))
		close(release)

		// The late response must never resurface.
		assert.Never(t, func() bool {
			return flow.View().Slots.Status != selection.SlotStatusIdle
		}, 50*time.Millisecond, 5*time.Millisecond)
	})
}

func TestFlowSlotSupersession(t *testing.T) {
	flow, gw := laundryFlow(t)

	staleStarted := make(chan struct{})
	releaseStale := make(chan struct{})
	staleSlots := []booking.TimeSlot{mustSlot(t, "2025-06-01T08:00:00Z", "2025-06-01T11:00:00Z")}
	freshSlots := []booking.TimeSlot{mustSlot(t, "2025-06-02T08:00:00Z", "2025-06-02T11:00:00Z")}

	gw.EXPECT().ListAvailableSlots(gomock.Any(), "res-washer", "2025-06-01").
		DoAndReturn(func(context.Context, string, string) ([]booking.TimeSlot, error) {
			close(staleStarted)
			<-releaseStale
			return staleSlots, nil
		})
	gw.EXPECT().ListAvailableSlots(gomock.Any(), "res-washer", "2025-06-02").Return(freshSlots, nil)

	require.NoError(t, flow.SetDate(context.Background(), "2025-06-01"))
	<-staleStarted

	// The date changes while the first request is still in flight.
	require.NoError(t, flow.SetDate(context.Background(), "2025-06-02"))
	slots := waitForSlotStatus(t, flow, selection.SlotStatusLoaded)
	require.Len(t, slots.Slots, 1)
	assert.Equal(t, "2025-06-02T08:00:00Z", slots.Slots[0].StartTime())

	// The stale response arrives last and must be discarded.
	close(releaseStale)
	assert.Never(t, func() bool {
		cur := flow.View().Slots
		return len(cur.Slots) != 1 || cur.Slots[0].StartTime() != "2025-06-02T08:00:00Z"
	}, 50*time.Millisecond, 5*time.Millisecond)
}

func TestFlowChooseSlot(t *testing.T) {
	t.Run("rejected before slots are loaded", func(t *testing.T) {
		flow, _ := laundryFlow(t)
		err := flow.ChooseSlot("2025-06-01T08:00:00Z", "2025-06-01T11:00:00Z")
		assert.ErrorIs(t, err, errs.ErrSlotNotOffered)
	})

	t.Run("verbatim mismatch is rejected", func(t *testing.T) {
		flow, gw := laundryFlow(t)
		offered := []booking.TimeSlot{mustSlot(t, "2025-06-01T08:00:00+02:00", "2025-06-01T11:00:00+02:00")}
		gw.EXPECT().ListAvailableSlots(gomock.Any(), "res-washer", "2025-06-01").Return(offered, nil)

		require.NoError(t, flow.SetDate(context.Background(), "2025-06-01"))
		waitForSlotStatus(t, flow, selection.SlotStatusLoaded)

		// Same instant, different representation: not the offered window.
		err := flow.ChooseSlot("2025-06-01T06:00:00Z", "2025-06-01T09:00:00Z")
		assert.ErrorIs(t, err, errs.ErrSlotNotOffered)
	})
}

func TestFlowSubmitWindow(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	standardReadyFlow := func(t *testing.T) *selection.Flow {
		flow, gw := newTestFlow(t)
		expectOwnBuilding(gw)
		require.NoError(t, flow.SetBuilding(context.Background(), ownBuildingID))
		require.NoError(t, flow.SetResource("res-gym"))
		require.NoError(t, flow.SetLocalRange("2025-06-01T08:00", "2025-06-01T10:00"))
		return flow
	}

	t.Run("incomplete selection never opens the window", func(t *testing.T) {
		flow, gw := newTestFlow(t)
		expectOwnBuilding(gw)
		require.NoError(t, flow.SetBuilding(context.Background(), ownBuildingID))
		require.NoError(t, flow.SetResource("res-gym"))

		_, err := flow.BeginSubmit(warsaw)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.False(t, flow.View().InFlight)
	})

	t.Run("second submit is rejected until the first settles", func(t *testing.T) {
		flow := standardReadyFlow(t)

		input, err := flow.BeginSubmit(warsaw)
		require.NoError(t, err)
		assert.Equal(t, "res-gym", input.ResourceID)
		assert.Equal(t, "2025-06-01T08:00:00+02:00", input.StartTime)

		_, err = flow.BeginSubmit(warsaw)
		assert.ErrorIs(t, err, errs.ErrSubmitInFlight)
	})

	t.Run("failure keeps the selection for retry", func(t *testing.T) {
		flow := standardReadyFlow(t)
		_, err := flow.BeginSubmit(warsaw)
		require.NoError(t, err)

		flow.EndSubmit(false)
		view := flow.View()
		assert.False(t, view.InFlight)
		assert.Equal(t, booking.StageStandardReady, view.Stage)

		_, err = flow.BeginSubmit(warsaw)
		assert.NoError(t, err)
	})

	t.Run("success resets the flow", func(t *testing.T) {
		flow := standardReadyFlow(t)
		_, err := flow.BeginSubmit(warsaw)
		require.NoError(t, err)

		flow.EndSubmit(true)
		view := flow.View()
		assert.False(t, view.InFlight)
		assert.Equal(t, booking.StageEmpty, view.Stage)
		assert.Empty(t, view.Resources)
	})
}
