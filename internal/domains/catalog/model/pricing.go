package model

// ClampDiscount bounds a discount percentage to [0, 100].
func ClampDiscount(pct float64) float64 {
	if pct < 0 {
		return 0
	}

	if pct > 100 {
		return 100
	}

	return pct
}

// EffectiveDiscount resolves the discount for a group line: the item override
// when present, otherwise the group default, clamped either way.
func EffectiveDiscount(override *float64, groupDefault float64) float64 {
	if override != nil {
		return ClampDiscount(*override)
	}

	return ClampDiscount(groupDefault)
}

// LineQuantity resolves an optional quantity; unset counts as one.
func LineQuantity(quantity *int) int {
	if quantity == nil || *quantity < 1 {
		return 1
	}

	return *quantity
}

// LineTotal prices one group line: unit price x quantity x (1 - discount/100).
func LineTotal(unitPrice float64, quantity *int, override *float64, groupDefault float64) float64 {
	discount := EffectiveDiscount(override, groupDefault)

	return unitPrice * float64(LineQuantity(quantity)) * (1 - discount/100)
}

// PricedLine is the pricing-relevant slice of a group link joined to its service.
type PricedLine struct {
	UnitPrice       float64
	Quantity        *int
	DiscountPercent *float64
}

// GroupTotal sums LineTotal over every line of a group.
func GroupTotal(groupDefault float64, lines []PricedLine) float64 {
	var total float64

	for _, line := range lines {
		total += LineTotal(line.UnitPrice, line.Quantity, line.DiscountPercent, groupDefault)
	}

	return total
}
