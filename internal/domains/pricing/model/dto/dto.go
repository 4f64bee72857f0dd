package dto

import (
	"luxedrive/internal/domains/pricing/engine"
	"luxedrive/shared/money"
)

type QuoteRequest struct {
	CarID         string   `json:"car_id"         validate:"required"`
	StartDatetime string   `json:"start_datetime" validate:"required"`
	EndDatetime   string   `json:"end_datetime"   validate:"required"`
	AddOnIDs      []string `json:"addon_ids"      validate:"omitempty,dive,required"`
	PromoCode     string   `json:"promo_code"     validate:"omitempty,min=3,max=32"`
}

type QuoteAddOnResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PricePerDay float64 `json:"price_per_day"`
	Total       float64 `json:"total"`
}

// QuoteBreakdownResponse itemizes where the subtotal comes from.
type QuoteBreakdownResponse struct {
	CarPricePerDay float64              `json:"car_price_per_day"`
	CarTotal       float64              `json:"car_total"`
	AddOns         []QuoteAddOnResponse `json:"addons"`
}

type QuoteResponse struct {
	CarID           string                 `json:"car_id"`
	Days            int64                  `json:"days"`
	BasePrice       float64                `json:"base_price"`
	AddOnsPrice     float64                `json:"addons_price"`
	Subtotal        float64                `json:"subtotal"`
	DiscountAmount  float64                `json:"discount_amount"`
	DiscountPercent int64                  `json:"discount_percent"`
	Taxes           float64                `json:"taxes"`
	TaxPercent      int64                  `json:"tax_percent"`
	Total           float64                `json:"total"`
	Deposit         float64                `json:"deposit"`
	DepositPercent  int64                  `json:"deposit_percent"`
	Currency        string                 `json:"currency"`
	PromoApplied    bool                   `json:"promo_applied"`
	Breakdown       QuoteBreakdownResponse `json:"breakdown"`
}

func (r *QuoteResponse) FromBreakdown(carID, currency string, pricePerDay int64, promoApplied bool, breakdown engine.Breakdown) {
	r.CarID = carID
	r.Days = breakdown.Days
	r.BasePrice = money.ToMajor(breakdown.BasePrice)
	r.AddOnsPrice = money.ToMajor(breakdown.AddOnsPrice)
	r.Subtotal = money.ToMajor(breakdown.Subtotal)
	r.DiscountAmount = money.ToMajor(breakdown.DiscountAmount)
	r.DiscountPercent = breakdown.DiscountPercent
	r.Taxes = money.ToMajor(breakdown.Taxes)
	r.TaxPercent = engine.TaxPercent
	r.Total = money.ToMajor(breakdown.Total)
	r.Deposit = money.ToMajor(breakdown.Deposit)
	r.DepositPercent = engine.DepositPercent
	r.Currency = currency
	r.PromoApplied = promoApplied

	r.Breakdown = QuoteBreakdownResponse{
		CarPricePerDay: money.ToMajor(pricePerDay),
		CarTotal:       money.ToMajor(breakdown.BasePrice),
		AddOns:         make([]QuoteAddOnResponse, 0, len(breakdown.AddOns)),
	}

	for _, line := range breakdown.AddOns {
		r.Breakdown.AddOns = append(r.Breakdown.AddOns, QuoteAddOnResponse{
			ID:          line.ID,
			Name:        line.Name,
			PricePerDay: money.ToMajor(line.PricePerDay),
			Total:       money.ToMajor(line.Total),
		})
	}
}
