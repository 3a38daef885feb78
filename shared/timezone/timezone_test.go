package timezone_test

import (
	"testing"
	"time"

	"atria/shared/timezone"
)

func TestNowAndLocation(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}

	if now.Location().String() != loc.String() {
		t.Errorf("Now() location %s does not match GetLocation() %s", now.Location(), loc)
	}
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if !appTime.Equal(utcTime) {
		t.Error("ToAppTime must not change the instant")
	}

	if appTime.Location().String() != timezone.GetLocation().String() {
		t.Error("ToAppTime must convert to the application location")
	}
}

func TestParse(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2025-03-10")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if parsed.Year() != 2025 || parsed.Month() != time.March || parsed.Day() != 10 {
		t.Errorf("unexpected parsed date: %v", parsed)
	}

	if parsed.Location().String() != timezone.GetLocation().String() {
		t.Error("Parse must interpret values in the application location")
	}

	if _, err := timezone.Parse("2006-01-02", "10/03/2025"); err == nil {
		t.Error("expected parse error for mismatched layout")
	}
}
