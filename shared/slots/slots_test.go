package slots_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"atria/shared/slots"
)

func day() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func values(result []slots.Slot) []string {
	out := make([]string, 0, len(result))
	for _, s := range result {
		out = append(out, s.Value)
	}

	return out
}

func TestAvailableSlots_EmptyDay(t *testing.T) {
	result := slots.AvailableSlots(day(), 30, nil)

	// 08:00 through 16:30 inclusive on a 15-minute grid.
	assert.Len(t, result, 35)
	assert.Equal(t, "08:00", result[0].Value)
	assert.Equal(t, "8:00 AM", result[0].Label)
	assert.Equal(t, "16:30", result[len(result)-1].Value)
	assert.Equal(t, "4:30 PM", result[len(result)-1].Label)
}

func TestAvailableSlots_ZeroDay(t *testing.T) {
	result := slots.AvailableSlots(time.Time{}, 30, nil)

	assert.Nil(t, result)
}

func TestAvailableSlots_NonPositiveDurationFallsBackToStep(t *testing.T) {
	result := slots.AvailableSlots(day(), 0, nil)

	// With a 15-minute duration the last start is 16:45.
	assert.Len(t, result, 36)
	assert.Equal(t, "16:45", result[len(result)-1].Value)

	negative := slots.AvailableSlots(day(), -10, nil)
	assert.Equal(t, result, negative)
}

func TestAvailableSlots_ExcludesOverlaps(t *testing.T) {
	existing := []slots.Busy{
		{Start: at(9, 0), End: timePtr(at(9, 30))},
	}

	result := values(slots.AvailableSlots(day(), 15, existing))

	assert.NotContains(t, result, "09:00")
	assert.NotContains(t, result, "09:15")

	// Half-open intervals: touching boundaries do not conflict.
	assert.Contains(t, result, "08:45")
	assert.Contains(t, result, "09:30")
}

func TestAvailableSlots_LongerDurationBlocksEarlierStarts(t *testing.T) {
	existing := []slots.Busy{
		{Start: at(10, 0), End: timePtr(at(10, 30))},
	}

	result := values(slots.AvailableSlots(day(), 60, existing))

	// A 60-minute appointment starting 09:15 through 09:45 would run into 10:00.
	assert.Contains(t, result, "09:00")
	assert.NotContains(t, result, "09:15")
	assert.NotContains(t, result, "09:30")
	assert.NotContains(t, result, "09:45")
	assert.Contains(t, result, "10:30")
}

func TestAvailableSlots_OpenEndedAssumesDefaultDuration(t *testing.T) {
	existing := []slots.Busy{
		{Start: at(14, 0)},
	}

	result := values(slots.AvailableSlots(day(), 15, existing))

	assert.NotContains(t, result, "14:00")
	assert.NotContains(t, result, "14:15")
	assert.Contains(t, result, "13:45")
	assert.Contains(t, result, "14:30")
}

func TestAvailableSlots_ClampsToOperatingWindow(t *testing.T) {
	existing := []slots.Busy{
		{Start: at(7, 0), End: timePtr(at(8, 30))},
		{Start: at(16, 45), End: timePtr(at(19, 0))},
	}

	result := values(slots.AvailableSlots(day(), 15, existing))

	assert.NotContains(t, result, "08:00")
	assert.NotContains(t, result, "08:15")
	assert.Contains(t, result, "08:30")
	assert.NotContains(t, result, "16:45")
	assert.Contains(t, result, "16:30")
}

func TestAvailableSlots_IntervalOutsideWindowIgnored(t *testing.T) {
	existing := []slots.Busy{
		{Start: at(6, 0), End: timePtr(at(7, 0))},
	}

	result := slots.AvailableSlots(day(), 15, existing)

	assert.Len(t, result, 36)
}

func TestAvailableSlots_DurationLargerThanWindow(t *testing.T) {
	result := slots.AvailableSlots(day(), 10*60, nil)

	assert.Empty(t, result)
}

func TestAvailableSlots_EndPastMidnightBlocksThroughClose(t *testing.T) {
	// An appointment running 16:00 to 01:00 the next day occupies the rest of
	// this day's window, not a folded one-hour interval.
	existing := []slots.Busy{
		{Start: at(16, 0), End: timePtr(time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC))},
	}

	result := values(slots.AvailableSlots(day(), 15, existing))

	assert.NotContains(t, result, "16:00")
	assert.NotContains(t, result, "16:15")
	assert.NotContains(t, result, "16:30")
	assert.NotContains(t, result, "16:45")
	assert.Contains(t, result, "15:45")
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	existing := []slots.Busy{
		{Start: at(9, 0), End: timePtr(at(10, 0))},
		{Start: at(14, 0)},
	}

	first := slots.AvailableSlots(day(), 30, existing)
	second := slots.AvailableSlots(day(), 30, existing)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestAvailableSlots_FullyBookedDay(t *testing.T) {
	existing := []slots.Busy{
		{Start: at(8, 0), End: timePtr(at(17, 0))},
	}

	result := slots.AvailableSlots(day(), 15, existing)

	assert.Empty(t, result)
}
