package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atria/internal/domains/catalog/model"
)

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}

func TestClampDiscount(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "within range",
			input:    25,
			expected: 25,
		},
		{
			name:     "negative clamps to zero",
			input:    -5,
			expected: 0,
		},
		{
			name:     "above hundred clamps to hundred",
			input:    150,
			expected: 100,
		},
		{
			name:     "zero stays zero",
			input:    0,
			expected: 0,
		},
		{
			name:     "hundred stays hundred",
			input:    100,
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.ClampDiscount(tt.input))
		})
	}
}

func TestEffectiveDiscount(t *testing.T) {
	tests := []struct {
		name         string
		override     *float64
		groupDefault float64
		expected     float64
	}{
		{
			name:         "override wins over group default",
			override:     floatPtr(10),
			groupDefault: 20,
			expected:     10,
		},
		{
			name:         "zero override still wins",
			override:     floatPtr(0),
			groupDefault: 20,
			expected:     0,
		},
		{
			name:         "nil override falls back to group default",
			override:     nil,
			groupDefault: 20,
			expected:     20,
		},
		{
			name:         "override is clamped",
			override:     floatPtr(120),
			groupDefault: 20,
			expected:     100,
		},
		{
			name:         "group default is clamped",
			override:     nil,
			groupDefault: -3,
			expected:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.EffectiveDiscount(tt.override, tt.groupDefault))
		})
	}
}

func TestLineQuantity(t *testing.T) {
	assert.Equal(t, 1, model.LineQuantity(nil))
	assert.Equal(t, 1, model.LineQuantity(intPtr(0)))
	assert.Equal(t, 1, model.LineQuantity(intPtr(-2)))
	assert.Equal(t, 3, model.LineQuantity(intPtr(3)))
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name         string
		unitPrice    float64
		quantity     *int
		override     *float64
		groupDefault float64
		expected     float64
	}{
		{
			name:         "group default applied",
			unitPrice:    100,
			quantity:     intPtr(2),
			override:     nil,
			groupDefault: 10,
			expected:     180,
		},
		{
			name:         "override applied",
			unitPrice:    100,
			quantity:     intPtr(2),
			override:     floatPtr(50),
			groupDefault: 10,
			expected:     100,
		},
		{
			name:         "nil quantity counts as one",
			unitPrice:    80,
			quantity:     nil,
			override:     nil,
			groupDefault: 0,
			expected:     80,
		},
		{
			name:         "full discount zeroes the line",
			unitPrice:    99,
			quantity:     intPtr(4),
			override:     floatPtr(100),
			groupDefault: 0,
			expected:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, model.LineTotal(tt.unitPrice, tt.quantity, tt.override, tt.groupDefault), 0.0001)
		})
	}
}

func TestGroupTotal(t *testing.T) {
	lines := []model.PricedLine{
		{UnitPrice: 100, Quantity: intPtr(2), DiscountPercent: nil},         // 180 at 10% default
		{UnitPrice: 50, Quantity: nil, DiscountPercent: floatPtr(0)},        // 50, override disables discount
		{UnitPrice: 200, Quantity: intPtr(1), DiscountPercent: floatPtr(25)}, // 150
	}

	assert.InDelta(t, 380, model.GroupTotal(10, lines), 0.0001)
	assert.Zero(t, model.GroupTotal(10, nil))
}
