package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"luxedrive/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID     = "id"
	FieldCarID  = "car_id"
	FieldUserID = "user_id"
	FieldStatus = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

var errInvalidSnapshot = errors.New("invalid addon snapshot value")

// AddOnLine is one add-on frozen into a booking at its price at booking time.
type AddOnLine struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PricePerDay int64  `json:"price_per_day"`
	Total       int64  `json:"total"`
}

// AddOnSnapshot stores the priced add-on lines as a JSONB column so later
// catalog price changes never alter a past booking.
type AddOnSnapshot []AddOnLine

func (s AddOnSnapshot) Value() (driver.Value, error) {
	if s == nil {
		s = AddOnSnapshot{}
	}

	value, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal addon snapshot: %w", err)
	}

	return value, nil
}

func (s *AddOnSnapshot) Scan(src any) error {
	if src == nil {
		*s = AddOnSnapshot{}

		return nil
	}

	data, ok := src.([]byte)
	if !ok {
		return errInvalidSnapshot
	}

	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("failed to unmarshal addon snapshot: %w", err)
	}

	return nil
}

type Booking struct {
	ID              string        `db:"id"`
	CarID           string        `db:"car_id"`
	AgencyID        string        `db:"agency_id"`
	UserID          string        `db:"user_id"`
	StartDatetime   time.Time     `db:"start_datetime"`
	EndDatetime     time.Time     `db:"end_datetime"`
	PickupLocation  string        `db:"pickup_location"`
	DropoffLocation string        `db:"dropoff_location"`
	AddOns          AddOnSnapshot `db:"addons"`
	Days            int64         `db:"days"`
	BasePrice       int64         `db:"base_price"`
	AddOnsPrice     int64         `db:"addons_price"`
	DiscountAmount  int64         `db:"discount_amount"`
	Taxes           int64         `db:"taxes"`
	TotalAmount     int64         `db:"total_amount"`
	DepositAmount   int64         `db:"deposit_amount"`
	Currency        string        `db:"currency"`
	PromoCode       *string       `db:"promo_code"`
	Status          string        `db:"status"`
	model.Metadata
}
