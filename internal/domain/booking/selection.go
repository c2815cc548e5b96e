package booking

import (
	"errors"
	"time"
)

var (
	ErrNoBuildingChosen      = errors.New("no building has been chosen yet")
	ErrNoResourceChosen      = errors.New("no resource has been chosen yet")
	ErrNoDateChosen          = errors.New("no date has been chosen yet")
	ErrResourceOutsideChoice = errors.New("resource does not belong to the chosen building")
	ErrNotLaundryResource    = errors.New("slot selection applies to laundry resources only")
	ErrNotStandardResource   = errors.New("free time range applies to standard resources only")
	ErrMalformedLocalTime    = errors.New("local time must use the YYYY-MM-DDTHH:MM format")
	ErrEndBeforeStart        = errors.New("end time must be after start time")
	ErrIncompleteSelection   = errors.New("active booking branch is incomplete")
)

// localTimeLayout is the shape of the raw start/end inputs for standard
// resources. They stay local until submission, where they are converted to
// absolute timestamps exactly once.
const localTimeLayout = "2006-01-02T15:04"

type Stage int

const (
	StageEmpty Stage = iota
	StageBuildingChosen
	StageResourceChosen
	StageLaundryDateChosen
	StageStandardReady
)

func (s Stage) String() string {
	switch s {
	case StageEmpty:
		return "EMPTY"
	case StageBuildingChosen:
		return "BUILDING_CHOSEN"
	case StageResourceChosen:
		return "RESOURCE_CHOSEN"
	case StageLaundryDateChosen:
		return "LAUNDRY_DATE_CHOSEN"
	case StageStandardReady:
		return "STANDARD_READY"
	}
	return "UNKNOWN"
}

type Field string

const (
	FieldBuilding Field = "building"
	FieldResource Field = "resource"
	FieldDate     Field = "date"
	FieldSlot     Field = "slot"
	FieldStart    Field = "startTime"
	FieldEnd      Field = "endTime"
)

/// FieldState is what the surrounding UI renders for one input: whether it
// accepts input, whether it blocks submission while empty, and its value.
type FieldState struct {
	Enabled  bool   `json:"enabled"`
	Required bool   `json:"required"`
	Value    string `json:"value"`
}

// Selection is the client-held, in-progress choice of building, resource and
// time. The enabled/required state of every field is derived from the stage,
// never stored, so contradictory states (both branches required, a disabled
// field still required) cannot be represented.
type Selection struct {
	buildingID string
	resource   *Resource
	date       string
	slot       TimeSlot
	startLocal string
	endLocal   string
}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) Stage() Stage {
	switch {
	case s.buildingID == "":
		return StageEmpty
	case s.resource == nil:
		return StageBuildingChosen
	case s.resource.ResourceType == ResourceTypeStandard:
		return StageStandardReady
	case s.date != "":
		return StageLaundryDateChosen
	default:
		return StageResourceChosen
	}
}

func (s *Selection) BuildingID() string  { return s.buildingID }
func (s *Selection) Resource() *Resource { return s.resource }
func (s *Selection) Date() string        { return s.date }
func (s *Selection) Slot() TimeSlot      { return s.slot }

func (s *Selection) LocalRange() (start, end string) {
	return s.startLocal, s.endLocal
}

// SetBuilding clears every downstream field regardless of its prior value.
func (s *Selection) SetBuilding(buildingID string) {
	s.buildingID = buildingID
	s.resource = nil
	s.clearTimeFields()
}

func (s *Selection) SetResource(r Resource) error {
	if s.buildingID == "" {
		return ErrNoBuildingChosen
	}
	if r.BuildingID != s.buildingID {
		return ErrResourceOutsideChoice
	}
	res := r
	s.resource = &res
	s.clearTimeFields()
	return nil
}

// SetDate applies to the laundry branch; an empty date drops back to
// ResourceChosen and disables the slot field again.
func (s *Selection) SetDate(date string) error {
	if s.resource == nil {
		return ErrNoResourceChosen
	}
	if s.resource.ResourceType != ResourceTypeLaundry {
		return ErrNotLaundryResource
	}
	s.date = date
	s.slot = TimeSlot{}
	return nil
}

// SetSlot records one of the server-offered windows verbatim.
func (s *Selection) SetSlot(slot TimeSlot) error {
	if s.resource == nil {
		return ErrNoResourceChosen
	}
	if s.resource.ResourceType != ResourceTypeLaundry {
		return ErrNotLaundryResource
	}
	if s.date == "" {
		return ErrNoDateChosen
	}
	s.slot = slot
	return nil
}

// SetLocalRange records the raw start/end inputs for a standard resource.
// Ordering is only verified by Validate, so a half-typed range is not an
// error; an unparseable value is.
func (s *Selection) SetLocalRange(start, end string) error {
	if s.resource == nil {
		return ErrNoResourceChosen
	}
	if s.resource.ResourceType != ResourceTypeStandard {
		return ErrNotStandardResource
	}
	for _, v := range []string{start, end} {
		if v == "" {
			continue
		}
		if _, err := time.Parse(localTimeLayout, v); err != nil {
			return ErrMalformedLocalTime
		}
	}
	s.startLocal = start
	s.endLocal = end
	return nil
}

func (s *Selection) Reset() {
	s.buildingID = ""
	s.resource = nil
	s.clearTimeFields()
}

func (s *Selection) clearTimeFields() {
	s.date = ""
	s.slot = TimeSlot{}
	s.startLocal = ""
	s.endLocal = ""
}

// Fields derives the full per-field UI state for the current stage. Exactly
// one of {slot required, start/end required} can ever hold.
func (s *Selection) Fields() map[Field]FieldState {
	stage := s.Stage()

	resourceID := ""
	if s.resource != nil {
		resourceID = s.resource.ID
	}
	slotValue := ""
	if !s.slot.IsZero() {
		slotValue = s.slot.StartTime()
	}

	fields := map[Field]FieldState{
		FieldBuilding: {Enabled: true, Required: true, Value: s.buildingID},
		FieldResource: {Value: resourceID},
		FieldDate:     {Value: s.date},
		FieldSlot:     {Value: slotValue},
		FieldStart:    {Value: s.startLocal},
		FieldEnd:      {Value: s.endLocal},
	}

	enable := func(f Field) {
		fs := fields[f]
		fs.Enabled = true
		fs.Required = true
		fields[f] = fs
	}

	if stage >= StageBuildingChosen {
		enable(FieldResource)
	}
	switch stage {
	case StageResourceChosen:
		enable(FieldDate)
	case StageLaundryDateChosen:
		enable(FieldDate)
		enable(FieldSlot)
	case StageStandardReady:
		enable(FieldStart)
		enable(FieldEnd)
	}
	return fields
}

// Validate reports whether the active branch is complete and well ordered.
// It never issues network calls; submission is rejected locally on error.
func (s *Selection) Validate() error {
	if s.buildingID == "" || s.resource == nil {
		return ErrIncompleteSelection
	}

	switch s.resource.ResourceType {
	case ResourceTypeLaundry:
		if s.date == "" || s.slot.IsZero() {
			return ErrIncompleteSelection
		}
	case ResourceTypeStandard:
		if s.startLocal == "" || s.endLocal == "" {
			return ErrIncompleteSelection
		}
		start, err := time.Parse(localTimeLayout, s.startLocal)
		if err != nil {
			return ErrMalformedLocalTime
		}
		end, err := time.Parse(localTimeLayout, s.endLocal)
		if err != nil {
			return ErrMalformedLocalTime
		}
		if !end.After(start) {
			return ErrEndBeforeStart
		}
	default:
		return ErrIncompleteSelection
	}
	return nil
}

// NormalizedRange produces the absolute timestamps submitted upstream.
// Laundry slots are forwarded verbatim; standard local inputs are converted
// in the dormitory timezone exactly once, here.
func (s *Selection) NormalizedRange(loc *time.Location) (start, end string, err error) {
	if err := s.Validate(); err != nil {
		return "", "", err
	}

	if s.resource.ResourceType == ResourceTypeLaundry {
		return s.slot.StartTime(), s.slot.EndTime(), nil
	}

	startLocal, _ := time.ParseInLocation(localTimeLayout, s.startLocal, loc)
	endLocal, _ := time.ParseInLocation(localTimeLayout, s.endLocal, loc)
	return startLocal.Format(time.RFC3339), endLocal.Format(time.RFC3339), nil
}
