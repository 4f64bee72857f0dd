package model

import (
	"luxedrive/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "cars"
	EntityName = "car"

	AgencyTableName = "agencies"

	FieldID           = "id"
	FieldAgencyID     = "agency_id"
	FieldMake         = "make"
	FieldModel        = "model"
	FieldYear         = "year"
	FieldSeats        = "seats"
	FieldLuggage      = "luggage"
	FieldTransmission = "transmission"
	FieldFuelType     = "fuel_type"
	FieldPricePerDay  = "price_per_day"
	FieldCurrency     = "currency"
	FieldRatingAvg    = "rating_avg"
	FieldActive       = "active"
)

type Car struct {
	ID           string         `db:"id"`
	AgencyID     string         `db:"agency_id"`
	Make         string         `db:"make"`
	Model        string         `db:"model"`
	Year         int            `db:"year"`
	Seats        int            `db:"seats"`
	Luggage      int            `db:"luggage"`
	Transmission string         `db:"transmission"`
	FuelType     string         `db:"fuel_type"`
	Features     pq.StringArray `db:"features"`
	Images       pq.StringArray `db:"images"`
	PricePerDay  int64          `db:"price_per_day"`
	Currency     string         `db:"currency"`
	RatingAvg    float64        `db:"rating_avg"`
	RatingCount  int            `db:"rating_count"`
	Active       bool           `db:"active"`
	AgencyName   string         `db:"agency_name"   table:"agencies" column:"name"`
	AgencyRating float64        `db:"agency_rating" table:"agencies" column:"rating_avg"`
	model.Metadata
}

// GetJoinQuery is picked up by the shared repository to join agency data
// into every car read.
func (Car) GetJoinQuery() string {
	return "JOIN agencies ON agencies.id = cars.agency_id"
}
