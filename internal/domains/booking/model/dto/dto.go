package dto

import (
	"luxedrive/internal/domains/booking/model"
	"luxedrive/shared/constant"
	gDto "luxedrive/shared/dto"
	"luxedrive/shared/money"
	"luxedrive/shared/timezone"
)

type CreateBookingRequest struct {
	CarID           string   `json:"car_id"           validate:"required"`
	StartDatetime   string   `json:"start_datetime"   validate:"required"`
	EndDatetime     string   `json:"end_datetime"     validate:"required"`
	PickupLocation  string   `json:"pickup_location"  validate:"required"`
	DropoffLocation string   `json:"dropoff_location" validate:"required"`
	AddOnIDs        []string `json:"addon_ids"        validate:"omitempty,dive,required"`
	PromoCode       string   `json:"promo_code"       validate:"omitempty,min=3,max=32"`
}

type AddOnLineResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PricePerDay float64 `json:"price_per_day"`
	Total       float64 `json:"total"`
}

type BookingResponse struct {
	ID              string              `json:"id"`
	CarID           string              `json:"car_id"`
	AgencyID        string              `json:"agency_id"`
	UserID          string              `json:"user_id"`
	StartDatetime   string              `json:"start_datetime"`
	EndDatetime     string              `json:"end_datetime"`
	PickupLocation  string              `json:"pickup_location"`
	DropoffLocation string              `json:"dropoff_location"`
	AddOns          []AddOnLineResponse `json:"addons"`
	Days            int64               `json:"days"`
	BasePrice       float64             `json:"base_price"`
	AddOnsPrice     float64             `json:"addons_price"`
	DiscountAmount  float64             `json:"discount_amount"`
	Taxes           float64             `json:"taxes"`
	TotalAmount     float64             `json:"total_amount"`
	DepositAmount   float64             `json:"deposit_amount"`
	Currency        string              `json:"currency"`
	PromoCode       *string             `json:"promo_code,omitempty"`
	Status          string              `json:"status"`
	Metadata        gDto.Metadata       `json:"metadata"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.CarID = booking.CarID
	r.AgencyID = booking.AgencyID
	r.UserID = booking.UserID
	r.StartDatetime = timezone.Format(booking.StartDatetime, constant.DateFormat)
	r.EndDatetime = timezone.Format(booking.EndDatetime, constant.DateFormat)
	r.PickupLocation = booking.PickupLocation
	r.DropoffLocation = booking.DropoffLocation
	r.Days = booking.Days
	r.BasePrice = money.ToMajor(booking.BasePrice)
	r.AddOnsPrice = money.ToMajor(booking.AddOnsPrice)
	r.DiscountAmount = money.ToMajor(booking.DiscountAmount)
	r.Taxes = money.ToMajor(booking.Taxes)
	r.TotalAmount = money.ToMajor(booking.TotalAmount)
	r.DepositAmount = money.ToMajor(booking.DepositAmount)
	r.Currency = booking.Currency
	r.PromoCode = booking.PromoCode
	r.Status = booking.Status
	r.Metadata.FromModel(booking.Metadata)

	r.AddOns = make([]AddOnLineResponse, 0, len(booking.AddOns))
	for _, line := range booking.AddOns {
		r.AddOns = append(r.AddOns, AddOnLineResponse{
			ID:          line.ID,
			Name:        line.Name,
			PricePerDay: money.ToMajor(line.PricePerDay),
			Total:       money.ToMajor(line.Total),
		})
	}
}

type CreateBookingResponse struct {
	BookingResponse

	HoldExpiresAt string `json:"hold_expires_at"`
}

type BookingListResponse struct {
	Items     []BookingResponse `json:"items"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
	Total     int               `json:"total"`
	TotalPage int               `json:"total_page"`
}
