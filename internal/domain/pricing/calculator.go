// Package pricing computes line item amounts. All functions are pure.
package pricing

import "delivery_cart/internal/domain/entities"

// Subtotal is (unit price + modifiers) x quantity, without discount.
func Subtotal(item entities.LineItem) int64 {
	return lineAmount(nonNegative(item.UnitPrice), item)
}

// Total is like Subtotal but the per-unit discount is taken from the base
// unit price first. The discounted base never goes below zero and modifiers
// are never discounted.
func Total(item entities.LineItem) int64 {
	base := nonNegative(item.UnitPrice) - nonNegative(item.DiscountPerUnit)
	return lineAmount(nonNegative(base), item)
}

// Discount is the amount taken off the item, discount x quantity.
func Discount(item entities.LineItem) int64 {
	return nonNegative(item.DiscountPerUnit) * quantity(item.Quantity)
}

// ModifiersPerUnit sums price x quantity over the item's modifiers.
func ModifiersPerUnit(modifiers []entities.Modifier) int64 {
	var sum int64
	for _, m := range modifiers {
		sum += nonNegative(m.Price) * quantity(m.Quantity)
	}
	return sum
}

func lineAmount(base int64, item entities.LineItem) int64 {
	return (base + ModifiersPerUnit(item.Modifiers)) * quantity(item.Quantity)
}

// quantity treats a missing (non-positive) quantity as one unit.
func quantity(q int) int64 {
	if q <= 0 {
		return 1
	}
	return int64(q)
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
