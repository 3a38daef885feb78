package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"atria/internal/domains/social/model"
	"atria/shared/timezone"
)

func TestCombineDateWithDefaultTime(t *testing.T) {
	target := time.Date(2025, 6, 20, 23, 45, 12, 999, time.UTC)

	combined := model.CombineDateWithDefaultTime(target)

	assert.Equal(t, 2025, combined.Year())
	assert.Equal(t, time.June, combined.Month())
	assert.Equal(t, 20, combined.Day())
	assert.Equal(t, model.DefaultPostHour, combined.Hour())
	assert.Zero(t, combined.Minute())
	assert.Zero(t, combined.Second())
	assert.Equal(t, timezone.GetLocation(), combined.Location())
}

func TestCombineDateWithDefaultTime_DropsOriginalTime(t *testing.T) {
	morning := time.Date(2025, 6, 20, 7, 0, 0, 0, timezone.GetLocation())
	evening := time.Date(2025, 6, 20, 22, 30, 0, 0, timezone.GetLocation())

	assert.Equal(t, model.CombineDateWithDefaultTime(morning), model.CombineDateWithDefaultTime(evening))
}
