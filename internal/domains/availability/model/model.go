package model

import (
	"time"

	"luxedrive/shared/model"
	"luxedrive/shared/timezone"

	"github.com/google/uuid"
)

const (
	TableName  = "car_availability"
	EntityName = "availability"

	FieldID        = "id"
	FieldCarID     = "car_id"
	FieldStatus    = "status"
	FieldBookingID = "booking_id"
	FieldExpiresAt = "expires_at"
)

const (
	StatusBooked  = "booked"
	StatusBlocked = "blocked"
)

// Availability is one occupied window on a car's calendar. A blocked record
// is a temporary hold that stops counting once expires_at passes, whether or
// not the sweeper has deleted it yet.
type Availability struct {
	ID            string     `db:"id"`
	CarID         string     `db:"car_id"`
	BookingID     *string    `db:"booking_id"`
	StartDatetime time.Time  `db:"start_datetime"`
	EndDatetime   time.Time  `db:"end_datetime"`
	Status        string     `db:"status"`
	ExpiresAt     *time.Time `db:"expires_at"`
	model.Metadata
}

// NewHold builds a blocked record backing a pending booking.
func NewHold(carID, bookingID string, start, end, expiresAt time.Time, username string) Availability {
	return Availability{
		ID:            uuid.NewString(),
		CarID:         carID,
		BookingID:     &bookingID,
		StartDatetime: start,
		EndDatetime:   end,
		Status:        StatusBlocked,
		ExpiresAt:     &expiresAt,
		Metadata: model.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}
