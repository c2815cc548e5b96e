package selection

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dormgate/internal/domain/booking"
	"dormgate/internal/gateway"
	"dormgate/internal/pkg/errs"
)

// SlotStatus distinguishes "not asked yet", "asked but not answered",
// "answered (possibly with zero slots)" and "failed". Collapsing any two of
// these into one boolean is how the empty-vs-loading bug happens.
type SlotStatus string

const (
	SlotStatusIdle    SlotStatus = "IDLE"
	SlotStatusLoading SlotStatus = "LOADING"
	SlotStatusLoaded  SlotStatus = "LOADED"
	SlotStatusFailed  SlotStatus = "FAILED"
)

type SlotAvailability struct {
	Status SlotStatus
	Slots  []booking.TimeSlot
	Err    error
}

// View is an immutable snapshot of a flow for rendering.
type View struct {
	Stage     booking.Stage
	Fields    map[booking.Field]booking.FieldState
	Resources []booking.Resource
	Slots     SlotAvailability
	InFlight  bool
}

// Flow owns one resident's in-progress Selection together with the candidate
// resource list and the slot availability for the chosen (resource, date).
// A flow belongs to exactly one booking session; all mutation goes through
// its lock, and slot responses carry a generation so a response for a
// superseded (resource, date) pair is discarded, never merged.
type Flow struct {
	mu             sync.Mutex
	gw             gateway.Gateway
	logger         *slog.Logger
	userBuildingID string

	sel       *booking.Selection
	resources []booking.Resource
	slots     SlotAvailability
	slotGen   uint64
	inFlight  bool
}

func NewFlow(gw gateway.Gateway, logger *slog.Logger, userBuildingID string) *Flow {
	return &Flow{
		gw:             gw,
		logger:         logger,
		userBuildingID: userBuildingID,
		sel:            booking.NewSelection(),
		slots:          SlotAvailability{Status: SlotStatusIdle},
	}
}

// SetBuilding validates the building against the cached reference list,
// loads its resources and resets everything downstream. Laundry machines in
// a building other than the resident's own are filtered out: residents may
// book common rooms anywhere but only their own building's laundry.
func (f *Flow) SetBuilding(ctx context.Context, buildingID string) error {
	buildings, err := f.gw.ListBuildings(ctx)
	if err != nil {
		return err
	}
	known := false
	for _, b := range buildings {
		if b.ID == buildingID {
			known = true
			break
		}
	}
	if !known {
		return errs.ErrUnknownBuilding
	}

	resources, err := f.gw.ListResourcesByBuilding(ctx, buildingID)
	if err != nil {
		return err
	}
	if buildingID != f.userBuildingID {
		// Copy rather than filter in place: the slice may be shared by the
		// reference-data cache.
		filtered := make([]booking.Resource, 0, len(resources))
		for _, r := range resources {
			if r.ResourceType != booking.ResourceTypeLaundry {
				filtered = append(filtered, r)
			}
		}
		resources = filtered
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.sel.SetBuilding(buildingID)
	f.resources = resources
	f.dropPendingSlots()
	return nil
}

func (f *Flow) SetResource(resourceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var resource *booking.Resource
	for i := range f.resources {
		if f.resources[i].ID == resourceID {
			resource = &f.resources[i]
			break
		}
	}
	if resource == nil {
		return errs.ErrUnknownResource
	}
	if err := f.sel.SetResource(*resource); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}
	f.dropPendingSlots()
	return nil
}

// SetDate moves the laundry branch forward and kicks off the slot fetch.
// The fetch outlives the triggering request on purpose; its result is only
// applied if no newer fetch has started since.
func (f *Flow) SetDate(ctx context.Context, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.sel.SetDate(date); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}
	f.dropPendingSlots()

	if date == "" {
		return nil
	}

	resourceID := f.sel.Resource().ID
	gen := f.slotGen
	f.slots = SlotAvailability{Status: SlotStatusLoading}
	go f.fetchSlots(context.WithoutCancel(ctx), gen, resourceID, date)
	return nil
}

func (f *Flow) fetchSlots(ctx context.Context, gen uint64, resourceID, date string) {
	slots, err := f.gw.ListAvailableSlots(ctx, resourceID, date)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.slotGen {
		// The user moved on to another (resource, date) pair while this
		// request was in flight.
		f.logger.Debug("discarding superseded slot response",
			"resource_id", resourceID, "date", date)
		return
	}
	if err != nil {
		f.slots = SlotAvailability{Status: SlotStatusFailed, Err: err}
		return
	}
	f.slots = SlotAvailability{Status: SlotStatusLoaded, Slots: slots}
}

// ChooseSlot accepts only a window the server actually offered, matched on
// the verbatim timestamps, so the submitted slot cannot drift from what was
// displayed.
func (f *Flow) ChooseSlot(startTime, endTime string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.slots.Status != SlotStatusLoaded {
		return errs.ErrSlotNotOffered
	}
	for _, slot := range f.slots.Slots {
		if slot.StartTime() == startTime && slot.EndTime() == endTime {
			if err := f.sel.SetSlot(slot); err != nil {
				return errs.Mark(err, errs.ErrValidation)
			}
			return nil
		}
	}
	return errs.ErrSlotNotOffered
}

func (f *Flow) SetLocalRange(start, end string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.sel.SetLocalRange(start, end); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}
	return nil
}

func (f *Flow) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	resources := make([]booking.Resource, len(f.resources))
	copy(resources, f.resources)

	slots := f.slots
	slots.Slots = make([]booking.TimeSlot, len(f.slots.Slots))
	copy(slots.Slots, f.slots.Slots)

	return View{
		Stage:     f.sel.Stage(),
		Fields:    f.sel.Fields(),
		Resources: resources,
		Slots:     slots,
		InFlight:  f.inFlight,
	}
}

// dropPendingSlots invalidates any in-flight slot fetch and clears the
// candidate set. Callers must hold f.mu.
func (f *Flow) dropPendingSlots() {
	f.slotGen++
	f.slots = SlotAvailability{Status: SlotStatusIdle}
}

// BeginSubmit validates the active branch synchronously and, if complete,
// normalizes it into the upstream input while marking the flow as
// submitting. A second submit before EndSubmit is rejected so one flow can
// never produce duplicate bookings. No network call happens here.
func (f *Flow) BeginSubmit(loc *time.Location) (booking.CreateReservationInput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inFlight {
		return booking.CreateReservationInput{}, errs.ErrSubmitInFlight
	}

	start, end, err := f.sel.NormalizedRange(loc)
	if err != nil {
		return booking.CreateReservationInput{}, errs.Mark(err, errs.ErrValidation)
	}

	f.inFlight = true
	return booking.CreateReservationInput{
		ResourceID: f.sel.Resource().ID,
		StartTime:  start,
		EndTime:    end,
	}, nil
}

// EndSubmit closes the submission window. On success the Selection returns
// to Empty; on failure it is left intact so the user can adjust and retry.
func (f *Flow) EndSubmit(success bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.inFlight = false
	if success {
		f.sel.Reset()
		f.resources = nil
		f.dropPendingSlots()
	}
}
