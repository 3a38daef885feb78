// Package slots computes bookable appointment start times for a single day.
//
// The clinic operates on a fixed daily window (08:00-17:00) with candidates
// generated on a fixed 15-minute grid. The computation is a pure function of
// (day, duration, existing appointments); it performs no I/O and is safe to
// call from any goroutine.
package slots

import (
	"fmt"
	"time"
)

// Times are handled as minutes from midnight so the overlap math stays
// integer-only and independent of DST edge cases inside a single day.
const (
	WindowOpenMinutes  = 8 * 60  // 08:00
	WindowCloseMinutes = 17 * 60 // 17:00

	StepMinutes = 15

	// DefaultDurationMinutes is assumed for appointments stored without an
	// explicit end time.
	DefaultDurationMinutes = 30
)

// Busy is an existing appointment's occupied interval. End is nil when the
// appointment was booked without an explicit end time.
type Busy struct {
	Start time.Time
	End   *time.Time
}

// Slot is a bookable start time. Value is the machine form ("HH:MM", 24-hour);
// Label is the display form ("3:04 PM").
type Slot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type interval struct {
	start int
	end   int
}

// AvailableSlots returns the ordered start times within the operating window at
// which an appointment of the requested duration would not overlap any existing
// appointment on the given day.
//
// A zero day yields no slots. A non-positive duration falls back to the step
// size. Existing intervals are clamped to the operating window on both ends and
// open-ended ones are assumed to run DefaultDurationMinutes. Overlap uses
// half-open semantics: a candidate ending exactly when an appointment starts
// (or starting exactly when one ends) does not conflict.
func AvailableSlots(day time.Time, durationMinutes int, existing []Busy) []Slot {
	if day.IsZero() {
		return nil
	}

	if durationMinutes <= 0 {
		durationMinutes = StepMinutes
	}

	busy := make([]interval, 0, len(existing))

	for _, b := range existing {
		start := minutesIntoDay(b.Start)

		end := start + DefaultDurationMinutes
		if b.End != nil {
			end = minutesIntoDay(*b.End)

			// An end on a later date runs past close on this day.
			if b.End.Year() != b.Start.Year() || b.End.YearDay() != b.Start.YearDay() {
				end = WindowCloseMinutes
			}
		}

		if start < WindowOpenMinutes {
			start = WindowOpenMinutes
		}

		if end > WindowCloseMinutes {
			end = WindowCloseMinutes
		}

		if end <= start {
			continue
		}

		busy = append(busy, interval{start: start, end: end})
	}

	var slots []Slot

	for start := WindowOpenMinutes; start+durationMinutes <= WindowCloseMinutes; start += StepMinutes {
		if overlapsAny(start, start+durationMinutes, busy) {
			continue
		}

		slots = append(slots, Slot{
			Value: formatValue(start),
			Label: formatLabel(day, start),
		})
	}

	return slots
}

func overlapsAny(start, end int, busy []interval) bool {
	for _, b := range busy {
		// Half-open intervals: [start,end) overlaps [b.start,b.end) iff start < b.end && b.start < end.
		if start < b.end && b.start < end {
			return true
		}
	}

	return false
}

func minutesIntoDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func formatValue(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func formatLabel(day time.Time, minutes int) string {
	at := time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())

	return at.Format("3:04 PM")
}
