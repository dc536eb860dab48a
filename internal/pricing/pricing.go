// Package pricing computes order totals for a selected phone and quantity.
// Quotes are pure functions of (price, stock, requested quantity) and are
// recomputed on every quantity change.
package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// ShippingFee is charged on small orders; orders above FreeShippingAbove
// units ship free.
const (
	ShippingFee       = 9.99
	FreeShippingAbove = 2
)

// Quote is the totals breakdown shown in the order summary.
type Quote struct {
	EffectiveQuantity int
	Subtotal          float64
	Shipping          float64
	Total             float64
	// Clamped is set when the requested quantity exceeded available stock
	// and a warning must be surfaced.
	Clamped bool
}

// Calculate clamps the requested quantity to [1, stock] and derives the
// order totals. Stock of zero yields an effective quantity of zero and an
// empty quote; callers disable ordering for out-of-stock phones before this
// point.
func Calculate(price float64, stock, requested int) Quote {
	if stock <= 0 {
		return Quote{}
	}

	q := Quote{EffectiveQuantity: requested}
	if requested > stock {
		q.EffectiveQuantity = stock
		q.Clamped = true
	}
	if q.EffectiveQuantity < 1 {
		q.EffectiveQuantity = 1
	}

	q.Subtotal = price * float64(q.EffectiveQuantity)
	if q.EffectiveQuantity <= FreeShippingAbove {
		q.Shipping = ShippingFee
	}
	q.Total = q.Subtotal + q.Shipping
	return q
}

// ParseQuantity reads a quantity form field, defaulting to 1 when the value
// is missing or unparseable.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return n
}

// FreeShipping reports whether the quote ships free.
func (q Quote) FreeShipping() bool {
	return q.Shipping == 0
}

// Currency renders an amount as a two-decimal dollar string.
func Currency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// ShippingLabel renders the shipping line, using FREE for zero shipping.
func (q Quote) ShippingLabel() string {
	if q.FreeShipping() {
		return "FREE"
	}
	return Currency(q.Shipping)
}
