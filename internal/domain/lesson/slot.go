package lesson

import (
	"errors"
	"time"
)

// The daily grid is the single source of truth for slot boundaries.
// Booking, availability listing and tests all derive times from it.
const (
	DayStartHour = 8
	SlotDuration = 2 * time.Hour
	SlotsPerDay  = 6
)

var ErrInvalidSlot = errors.New("invalid slot number")

// Slot is one bookable unit on an instructor's daily grid. Derived, never
// persisted.
type Slot struct {
	start time.Time
	end   time.Time
}

func (s Slot) Start() time.Time        { return s.start }
func (s Slot) End() time.Time          { return s.end }
func (s Slot) Duration() time.Duration { return s.end.Sub(s.start) }

// Overlaps uses half-open interval semantics: [start, end) intervals
// conflict iff existing.start < end && existing.end > start.
func (s Slot) Overlaps(start, end time.Time) bool {
	return s.start.Before(end) && s.end.After(start)
}

// SlotAt maps (date, number) to the slot's time interval. The number is
// 1-based: slot 1 starts at 08:00, slot 6 at 18:00.
func SlotAt(date time.Time, number int) (Slot, error) {
	if number < 1 || number > SlotsPerDay {
		return Slot{}, ErrInvalidSlot
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), DayStartHour, 0, 0, 0, date.Location())
	start := dayStart.Add(time.Duration(number-1) * SlotDuration)
	return Slot{start: start, end: start.Add(SlotDuration)}, nil
}

// DaySlots enumerates the full grid for a date in ascending order.
func DaySlots(date time.Time) []Slot {
	slots := make([]Slot, 0, SlotsPerDay)
	for n := 1; n <= SlotsPerDay; n++ {
		slot, _ := SlotAt(date, n)
		slots = append(slots, slot)
	}
	return slots
}
