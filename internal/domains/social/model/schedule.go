package model

import (
	"time"

	"atria/shared/timezone"
)

// DefaultPostHour is the time-of-day a post lands on when dropped onto a
// calendar day: the drop carries a date only, never a new time.
const DefaultPostHour = 10

// CombineDateWithDefaultTime returns the target date at the default posting
// hour in the clinic's timezone.
func CombineDateWithDefaultTime(target time.Time) time.Time {
	return time.Date(target.Year(), target.Month(), target.Day(), DefaultPostHour, 0, 0, 0, timezone.GetLocation())
}
