package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"luxedrive/infras/otel"
	addonModel "luxedrive/internal/domains/addon/model"
	addonRepo "luxedrive/internal/domains/addon/repository"
	carModel "luxedrive/internal/domains/car/model"
	carRepo "luxedrive/internal/domains/car/repository"
	"luxedrive/internal/domains/pricing/engine"
	"luxedrive/internal/domains/pricing/model/dto"
	promoService "luxedrive/internal/domains/promo/service"
	"luxedrive/shared"
	"luxedrive/shared/constant"
	gDto "luxedrive/shared/dto"
	"luxedrive/shared/failure"
	"luxedrive/shared/timezone"
)

type Pricing interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	carRepo   carRepo.Car
	addonRepo addonRepo.AddOn
	promoSvc  promoService.Promo
	otel      otel.Otel
}

func New(carRepo carRepo.Car, addonRepo addonRepo.AddOn, promoSvc promoService.Promo, otel otel.Otel) Pricing {
	return &serviceImpl{
		carRepo:   carRepo,
		addonRepo: addonRepo,
		promoSvc:  promoSvc,
		otel:      otel,
	}
}

// Quote computes the price breakdown for a prospective rental without
// touching availability. A promo code that cannot be applied degrades to a
// full-price quote instead of an error.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, err := time.Parse(constant.DateFormat, req.StartDatetime)
	if err != nil {
		return res, failure.BadRequestFromString("invalid start_datetime, expected RFC3339")
	}

	end, err := time.Parse(constant.DateFormat, req.EndDatetime)
	if err != nil {
		return res, failure.BadRequestFromString("invalid end_datetime, expected RFC3339")
	}

	if !end.After(start) {
		return res, failure.BadRequestFromString("end_datetime must be after start_datetime")
	}

	filter := shared.FilterByID(req.CarID, carModel.FieldID, carModel.TableName)

	car, err := s.carRepo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == "" || !car.Active {
		return res, failure.NotFound("car not found")
	}

	days := engine.Days(start, end)

	charges, err := s.resolveAddOns(ctx, req.AddOnIDs)
	if err != nil {
		return res, err
	}

	var discount *engine.Discount

	promoApplied := false

	if req.PromoCode != "" {
		promo, eligible := s.promoSvc.Validate(ctx, req.PromoCode, timezone.Now())
		if eligible {
			discount = &engine.Discount{
				Type:  engine.DiscountType(promo.DiscountType),
				Value: promo.DiscountValue,
			}
			promoApplied = true
		}
	}

	breakdown := engine.Compute(car.PricePerDay, days, charges, discount)

	res.FromBreakdown(car.ID, car.Currency, car.PricePerDay, promoApplied, breakdown)

	return res, nil
}

func (s *serviceImpl) resolveAddOns(ctx context.Context, addOnIDs []string) ([]engine.AddOnCharge, error) {
	if len(addOnIDs) == 0 {
		return nil, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    addonModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    addOnIDs,
				Table:    addonModel.TableName,
			},
			gDto.Filter{
				Field:    addonModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    addonModel.TableName,
			},
		},
	}

	addOns, err := s.addonRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve addons: %w", err)
	}

	charges := make([]engine.AddOnCharge, 0, len(addOns))
	for _, addOn := range addOns {
		charges = append(charges, engine.AddOnCharge{
			ID:          addOn.ID,
			Name:        addOn.Name,
			PricePerDay: addOn.PricePerDay,
		})
	}

	return charges, nil
}
