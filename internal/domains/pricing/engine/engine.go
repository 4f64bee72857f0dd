// Package engine holds the booking price arithmetic. Every amount is an
// integer in minor currency units (paise); conversion to major units only
// happens at the API boundary.
package engine

import (
	"math"
	"time"
)

const (
	TaxPercent     = 18
	DepositPercent = 20
	MinDays        = 1

	hoursPerDay = 24
	percentBase = 100
)

type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFixed   DiscountType = "fixed"
)

// Discount is an applied promo discount. A nil Discount means full price.
type Discount struct {
	Type  DiscountType
	Value int64
}

// AddOnCharge is a priced add-on line going into a quote.
type AddOnCharge struct {
	ID          string
	Name        string
	PricePerDay int64
}

// AddOnTotal is an add-on line after multiplying by rental days.
type AddOnTotal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PricePerDay int64  `json:"price_per_day"`
	Total       int64  `json:"total"`
}

// Breakdown is a fully computed quote. DiscountPercent is the applied
// percentage rate and stays zero for fixed-amount discounts.
type Breakdown struct {
	Days            int64
	BasePrice       int64
	AddOns          []AddOnTotal
	AddOnsPrice     int64
	Subtotal        int64
	DiscountAmount  int64
	DiscountPercent int64
	AfterDiscount   int64
	Taxes           int64
	Total           int64
	Deposit         int64
}

// Days returns the number of billable rental days between two instants.
// Partial days round up and a rental never bills fewer than one day.
func Days(start, end time.Time) int64 {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}

	days := int64(math.Ceil(diff.Hours() / hoursPerDay))
	if days < MinDays {
		return MinDays
	}

	return days
}

// Compute derives the full price breakdown for a rental. A fixed discount is
// applied as-is, without clamping to the subtotal, so an oversized fixed
// discount produces a negative amount due.
func Compute(pricePerDay, days int64, addOns []AddOnCharge, discount *Discount) Breakdown {
	basePrice := pricePerDay * days

	var addOnsPrice int64

	lines := make([]AddOnTotal, 0, len(addOns))

	for _, addOn := range addOns {
		total := addOn.PricePerDay * days
		addOnsPrice += total

		lines = append(lines, AddOnTotal{
			ID:          addOn.ID,
			Name:        addOn.Name,
			PricePerDay: addOn.PricePerDay,
			Total:       total,
		})
	}

	subtotal := basePrice + addOnsPrice

	var discountAmount, discountPercent int64

	if discount != nil {
		switch discount.Type {
		case DiscountTypePercent:
			discountPercent = discount.Value
			discountAmount = floorDiv(subtotal*discount.Value, percentBase)
		case DiscountTypeFixed:
			discountAmount = discount.Value
		}
	}

	afterDiscount := subtotal - discountAmount
	taxes := floorDiv(afterDiscount*TaxPercent, percentBase)
	total := afterDiscount + taxes
	deposit := floorDiv(total*DepositPercent, percentBase)

	return Breakdown{
		Days:            days,
		BasePrice:       basePrice,
		AddOns:          lines,
		AddOnsPrice:     addOnsPrice,
		Subtotal:        subtotal,
		DiscountAmount:  discountAmount,
		DiscountPercent: discountPercent,
		AfterDiscount:   afterDiscount,
		Taxes:           taxes,
		Total:           total,
		Deposit:         deposit,
	}
}

// floorDiv rounds toward negative infinity, which matters once an oversized
// fixed discount pushes the amount due below zero.
func floorDiv(a, b int64) int64 {
	quotient := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		quotient--
	}

	return quotient
}
