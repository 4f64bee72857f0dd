package dto_test

import (
	"testing"

	"luxedrive/internal/domains/car/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateCarRequest_ToModel(t *testing.T) {
	req := dto.CreateCarRequest{
		AgencyID:     "agency-id-123",
		Make:         "Maruti",
		Model:        "Swift",
		Year:         2024,
		Seats:        5,
		Transmission: "manual",
		FuelType:     "petrol",
		PricePerDay:  19.99,
		Currency:     "inr",
	}

	car := req.ToModel("admin-id-123")

	assert.NotEmpty(t, car.ID)
	// The float product 19.99*100 lands just under 1999 and must round, not truncate.
	assert.Equal(t, int64(1999), car.PricePerDay)
	assert.Equal(t, "INR", car.Currency)
	assert.True(t, car.Active)
	assert.Equal(t, "admin-id-123", car.CreatedBy)
}
