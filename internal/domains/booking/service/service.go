package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"luxedrive/config"
	"luxedrive/infras/otel"
	addonModel "luxedrive/internal/domains/addon/model"
	addonRepo "luxedrive/internal/domains/addon/repository"
	availabilityModel "luxedrive/internal/domains/availability/model"
	bookingModel "luxedrive/internal/domains/booking/model"
	"luxedrive/internal/domains/booking/model/dto"
	bookingRepo "luxedrive/internal/domains/booking/repository"
	carModel "luxedrive/internal/domains/car/model"
	carRepo "luxedrive/internal/domains/car/repository"
	"luxedrive/internal/domains/pricing/engine"
	promoService "luxedrive/internal/domains/promo/service"
	"luxedrive/internal/events"
	"luxedrive/shared"
	"luxedrive/shared/constant"
	gDto "luxedrive/shared/dto"
	"luxedrive/shared/failure"
	sharedModel "luxedrive/shared/model"
	"luxedrive/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const paymentActor = "payment"

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetByID(ctx context.Context, bookingID string) (dto.BookingResponse, error)
	GetMyBookings(ctx context.Context, params gDto.QueryParams) (dto.BookingListResponse, error)
	Confirm(ctx context.Context, bookingID string) error
	Cancel(ctx context.Context, bookingID string) error
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	carRepo     carRepo.Car
	addonRepo   addonRepo.AddOn
	promoSvc    promoService.Promo
	publisher   events.Publisher
	cfg         *config.Config
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, carRepo carRepo.Car, addonRepo addonRepo.AddOn, promoSvc promoService.Promo, publisher events.Publisher, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		addonRepo:   addonRepo,
		promoSvc:    promoSvc,
		publisher:   publisher,
		cfg:         cfg,
		otel:        otel,
	}
}

// Create reserves a car for the requested window at a freshly computed price.
// When the promo usage limit is hit during reservation, the booking is
// retried once at full price rather than failed.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return res, failure.Unauthorized("missing user identity")
	}

	start, end, err := parseWindow(req.StartDatetime, req.EndDatetime)
	if err != nil {
		return res, err
	}

	car, err := s.getActiveCar(ctx, req.CarID)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	days := engine.Days(start, end)

	charges, err := s.resolveAddOns(ctx, req.AddOnIDs)
	if err != nil {
		return res, err
	}

	var discount *engine.Discount

	var promoID string

	var promoCode *string

	if req.PromoCode != "" {
		promo, eligible := s.promoSvc.Validate(ctx, req.PromoCode, now)
		if eligible {
			discount = &engine.Discount{
				Type:  engine.DiscountType(promo.DiscountType),
				Value: promo.DiscountValue,
			}
			promoID = promo.ID
			code := promo.Code
			promoCode = &code
		}
	}

	booking := s.buildBooking(car, userID, start, end, req, days, charges, discount, promoCode)
	holdExpiresAt := now.Add(time.Duration(s.cfg.Booking.HoldTTLMinutes) * time.Minute)
	hold := availabilityModel.NewHold(car.ID, booking.ID, start, end, holdExpiresAt, userID)

	err = s.bookingRepo.Reserve(ctx, bookingRepo.ReserveRequest{
		Booking: booking,
		Hold:    hold,
		PromoID: promoID,
		Now:     now,
	})

	if errors.Is(err, bookingRepo.ErrPromoExhausted) {
		log.Info().Str("promo_code", req.PromoCode).Str("car_id", car.ID).Msg("promo exhausted during reservation, retrying at full price")

		booking = s.buildBooking(car, userID, start, end, req, days, charges, nil, nil)
		hold = availabilityModel.NewHold(car.ID, booking.ID, start, end, holdExpiresAt, userID)

		err = s.bookingRepo.Reserve(ctx, bookingRepo.ReserveRequest{
			Booking: booking,
			Hold:    hold,
			Now:     now,
		})
	}

	if err != nil {
		return res, err
	}

	s.publishAsync(ctx, events.EventBookingCreated, booking)

	res.FromModel(booking)
	res.Metadata.CreatedAt = timezone.Format(now, constant.DateFormat)
	res.Metadata.ModifiedAt = timezone.Format(now, constant.DateFormat)
	res.HoldExpiresAt = timezone.Format(holdExpiresAt, constant.DateFormat)

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	adminRoles := []string{constant.RoleAdmin, constant.RoleSuperAdmin}
	if booking.UserID != userID && !slices.Contains(adminRoles, role) {
		return res, failure.ResourceRestrictedError
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetMyBookings(ctx context.Context, params gDto.QueryParams) (res dto.BookingListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMyBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return res, failure.Unauthorized("missing user identity")
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    bookingModel.TableName,
			},
		},
	}

	bookings, err := s.bookingRepo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	res.Items = make([]dto.BookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		var item dto.BookingResponse

		item.FromModel(booking)
		res.Items = append(res.Items, item)
	}

	res.Page = params.Page
	res.Limit = params.Limit
	res.Total = total
	res.TotalPage = shared.CalculateTotalPage(total, params.Limit)

	return res, nil
}

// Confirm finalizes a pending booking after a successful payment.
func (s *serviceImpl) Confirm(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.resolvePayment(ctx, bookingID, bookingModel.StatusConfirmed, events.EventBookingConfirmed)
}

// Cancel releases a pending booking after a failed payment.
func (s *serviceImpl) Cancel(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.resolvePayment(ctx, bookingID, bookingModel.StatusCancelled, events.EventBookingCancelled)
}

func (s *serviceImpl) resolvePayment(ctx context.Context, bookingID, status, event string) error {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != bookingModel.StatusPending {
		return failure.Conflict("booking is not pending")
	}

	if err = s.bookingRepo.ResolvePayment(ctx, bookingID, status, paymentActor); err != nil {
		return err
	}

	booking.Status = status
	s.publishAsync(ctx, event, booking)

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, bookingID string) (bookingModel.Booking, error) {
	filter := shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName)

	booking, err := s.bookingRepo.Get(ctx, filter)
	if err != nil {
		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound("booking not found")
	}

	return booking, nil
}

func (s *serviceImpl) getActiveCar(ctx context.Context, carID string) (carModel.Car, error) {
	filter := shared.FilterByID(carID, carModel.FieldID, carModel.TableName)

	car, err := s.carRepo.Get(ctx, filter)
	if err != nil {
		return car, fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == "" || !car.Active {
		return car, failure.NotFound("car not found")
	}

	return car, nil
}

// resolveAddOns loads the requested add-ons from the catalog. Unknown or
// inactive IDs are dropped silently so a stale client selection cannot block
// the booking.
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

func (s *serviceImpl) buildBooking(car carModel.Car, userID string, start, end time.Time, req dto.CreateBookingRequest, days int64, charges []engine.AddOnCharge, discount *engine.Discount, promoCode *string) bookingModel.Booking {
	breakdown := engine.Compute(car.PricePerDay, days, charges, discount)

	snapshot := make(bookingModel.AddOnSnapshot, 0, len(breakdown.AddOns))
	for _, line := range breakdown.AddOns {
		snapshot = append(snapshot, bookingModel.AddOnLine{
			ID:          line.ID,
			Name:        line.Name,
			PricePerDay: line.PricePerDay,
			Total:       line.Total,
		})
	}

	return bookingModel.Booking{
		ID:              uuid.NewString(),
		CarID:           car.ID,
		AgencyID:        car.AgencyID,
		UserID:          userID,
		StartDatetime:   start,
		EndDatetime:     end,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		AddOns:          snapshot,
		Days:            breakdown.Days,
		BasePrice:       breakdown.BasePrice,
		AddOnsPrice:     breakdown.AddOnsPrice,
		DiscountAmount:  breakdown.DiscountAmount,
		Taxes:           breakdown.Taxes,
		TotalAmount:     breakdown.Total,
		DepositAmount:   breakdown.Deposit,
		Currency:        car.Currency,
		PromoCode:       promoCode,
		Status:          bookingModel.StatusPending,
		Metadata: sharedModel.Metadata{
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

func (s *serviceImpl) publishAsync(ctx context.Context, event string, booking bookingModel.Booking) {
	bgCtx := context.WithoutCancel(ctx)

	go func() {
		publishErr := s.publisher.PublishBookingEvent(bgCtx, events.BookingEvent{
			Event:       event,
			BookingID:   booking.ID,
			CarID:       booking.CarID,
			AgencyID:    booking.AgencyID,
			UserID:      booking.UserID,
			Status:      booking.Status,
			TotalAmount: booking.TotalAmount,
			Currency:    booking.Currency,
			OccurredAt:  timezone.Now(),
		})
		if publishErr != nil {
			log.Error().Err(publishErr).Str("event", event).Str("booking_id", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func parseWindow(startStr, endStr string) (start, end time.Time, err error) {
	start, err = time.Parse(constant.DateFormat, startStr)
	if err != nil {
		return start, end, failure.BadRequestFromString("invalid start_datetime, expected RFC3339")
	}

	end, err = time.Parse(constant.DateFormat, endStr)
	if err != nil {
		return start, end, failure.BadRequestFromString("invalid end_datetime, expected RFC3339")
	}

	if !end.After(start) {
		return start, end, failure.BadRequestFromString("end_datetime must be after start_datetime")
	}

	return start, end, nil
}
