package dto

import (
	"net/http"
	"strconv"
	"strings"

	"luxedrive/internal/domains/car/model"
	gDto "luxedrive/shared/dto"
	"luxedrive/shared/money"
	sharedModel "luxedrive/shared/model"

	"github.com/google/uuid"
)

const (
	SortByPriceAsc   = "price_asc"
	SortByPriceDesc  = "price_desc"
	SortByRatingDesc = "rating_desc"
)

type ListCarsRequest struct {
	Transmission string
	FuelType     string
	Seats        int
	MinPrice     int64
	MaxPrice     int64
	Search       string
	SortBy       string
	Params       gDto.QueryParams
}

// FromRequest reads listing filters off the query string. Price bounds come
// in major units and are converted to minor units for filtering.
func (r *ListCarsRequest) FromRequest(req *http.Request) {
	query := req.URL.Query()

	r.Transmission = query.Get("transmission")
	r.FuelType = query.Get("fuel_type")
	r.Search = query.Get("search")
	r.SortBy = query.Get("sort_by")

	if seats, err := strconv.Atoi(query.Get("seats")); err == nil && seats > 0 {
		r.Seats = seats
	}

	if minPrice, err := strconv.ParseInt(query.Get("min_price"), 10, 64); err == nil && minPrice > 0 {
		r.MinPrice = money.ToMinor(minPrice)
	}

	if maxPrice, err := strconv.ParseInt(query.Get("max_price"), 10, 64); err == nil && maxPrice > 0 {
		r.MaxPrice = money.ToMinor(maxPrice)
	}

	r.Params.FromRequest(req, true)

	// Listing sort is expressed through the dedicated sort_by values, not the
	// raw column sorting shared by other endpoints.
	switch r.SortBy {
	case SortByPriceAsc:
		r.Params.SortBy = model.FieldPricePerDay
		r.Params.SortDir = gDto.SortDirAsc
	case SortByPriceDesc:
		r.Params.SortBy = model.FieldPricePerDay
		r.Params.SortDir = gDto.SortDirDesc
	case SortByRatingDesc:
		r.Params.SortBy = model.FieldRatingAvg
		r.Params.SortDir = gDto.SortDirDesc
	default:
		r.Params.SortBy = model.FieldPricePerDay
		r.Params.SortDir = gDto.SortDirAsc
	}
}

type CreateCarRequest struct {
	AgencyID     string   `json:"agency_id"     validate:"required"`
	Make         string   `json:"make"          validate:"required"`
	Model        string   `json:"model"         validate:"required"`
	Year         int      `json:"year"          validate:"required,min=1980"`
	Seats        int      `json:"seats"         validate:"required,min=1,max=12"`
	Luggage      int      `json:"luggage"       validate:"omitempty,min=0"`
	Transmission string   `json:"transmission"  validate:"required,oneof=manual automatic"`
	FuelType     string   `json:"fuel_type"     validate:"required,oneof=petrol diesel electric hybrid"`
	Features     []string `json:"features"      validate:"omitempty"`
	PricePerDay  float64  `json:"price_per_day" validate:"required,gt=0"`
	Currency     string   `json:"currency"      validate:"required,len=3"`
}

func (r *CreateCarRequest) ToModel(username string) model.Car {
	return model.Car{
		ID:           uuid.NewString(),
		AgencyID:     r.AgencyID,
		Make:         r.Make,
		Model:        r.Model,
		Year:         r.Year,
		Seats:        r.Seats,
		Luggage:      r.Luggage,
		Transmission: r.Transmission,
		FuelType:     r.FuelType,
		Features:     r.Features,
		Images:       []string{},
		PricePerDay:  money.ToMinorFromFloat(r.PricePerDay),
		Currency:     strings.ToUpper(r.Currency),
		Active:       true,
		Metadata: sharedModel.Metadata{
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateCarRequest struct {
	Seats       int     `json:"seats"         db:"seats"         validate:"omitempty,min=1,max=12"`
	Luggage     int     `json:"luggage"       db:"luggage"       validate:"omitempty,min=0"`
	PricePerDay float64 `json:"price_per_day"                    validate:"omitempty,gt=0"`
	Active      *bool   `json:"active"        db:"active"        validate:"omitempty"`
}

type CarResponse struct {
	ID           string        `json:"id"`
	AgencyID     string        `json:"agency_id"`
	AgencyName   string        `json:"agency_name"`
	AgencyRating float64       `json:"agency_rating"`
	Make         string        `json:"make"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	Seats        int           `json:"seats"`
	Luggage      int           `json:"luggage"`
	Transmission string        `json:"transmission"`
	FuelType     string        `json:"fuel_type"`
	Features     []string      `json:"features"`
	Images       []string      `json:"images"`
	PricePerDay  float64       `json:"price_per_day"`
	Currency     string        `json:"currency"`
	RatingAvg    float64       `json:"rating_avg"`
	RatingCount  int           `json:"rating_count"`
	Metadata     gDto.Metadata `json:"metadata"`
}

func (r *CarResponse) FromModel(car model.Car) {
	r.ID = car.ID
	r.AgencyID = car.AgencyID
	r.AgencyName = car.AgencyName
	r.AgencyRating = car.AgencyRating
	r.Make = car.Make
	r.Model = car.Model
	r.Year = car.Year
	r.Seats = car.Seats
	r.Luggage = car.Luggage
	r.Transmission = car.Transmission
	r.FuelType = car.FuelType
	r.Features = car.Features
	r.Images = car.Images
	r.PricePerDay = money.ToMajor(car.PricePerDay)
	r.Currency = car.Currency
	r.RatingAvg = car.RatingAvg
	r.RatingCount = car.RatingCount
	r.Metadata.FromModel(car.Metadata)
}

type CarListResponse struct {
	Items     []CarResponse `json:"items"`
	Page      int           `json:"page"`
	Limit     int           `json:"limit"`
	Total     int           `json:"total"`
	TotalPage int           `json:"total_page"`
}
