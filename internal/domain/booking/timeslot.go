package booking

import (
	"errors"
	"time"
)

var (
	ErrMalformedSlotTime = errors.New("slot time is not a valid RFC 3339 timestamp")
	ErrSlotEndNotAfter   = errors.New("slot end time must be after start time")
)

// TimeSlot is a server-enumerated bookable window. The raw timestamp strings
// are carried verbatim from the remote API and forwarded unchanged on
// submission, so no local timezone or precision drift can occur.
type TimeSlot struct {
	startTime string
	endTime   string
}

func NewTimeSlot(startTime, endTime string) (TimeSlot, error) {
	start, err := time.Parse(time.RFC3339, startTime)
	if err != nil {
		return TimeSlot{}, ErrMalformedSlotTime
	}
	end, err := time.Parse(time.RFC3339, endTime)
	if err != nil {
		return TimeSlot{}, ErrMalformedSlotTime
	}
	if !end.After(start) {
		return TimeSlot{}, ErrSlotEndNotAfter
	}
	return TimeSlot{startTime: startTime, endTime: endTime}, nil
}

func (ts TimeSlot) StartTime() string { return ts.startTime }
func (ts TimeSlot) EndTime() string   { return ts.endTime }

func (ts TimeSlot) IsZero() bool {
	return ts.startTime == "" && ts.endTime == ""
}

// Equal compares the verbatim representation, not the parsed instants.
func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.startTime == other.startTime && ts.endTime == other.endTime
}

func (ts TimeSlot) Start() time.Time {
	t, _ := time.Parse(time.RFC3339, ts.startTime)
	return t
}

func (ts TimeSlot) End() time.Time {
	t, _ := time.Parse(time.RFC3339, ts.endTime)
	return t
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.End().Sub(ts.Start())
}
