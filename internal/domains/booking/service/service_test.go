package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"luxedrive/config"
	"luxedrive/infras/otel/mocks"
	addonMocks "luxedrive/internal/domains/addon/mocks"
	addonModel "luxedrive/internal/domains/addon/model"
	availabilityModel "luxedrive/internal/domains/availability/model"
	bookingMocks "luxedrive/internal/domains/booking/mocks"
	bookingModel "luxedrive/internal/domains/booking/model"
	"luxedrive/internal/domains/booking/model/dto"
	bookingRepo "luxedrive/internal/domains/booking/repository"
	"luxedrive/internal/domains/booking/service"
	carMocks "luxedrive/internal/domains/car/mocks"
	carModel "luxedrive/internal/domains/car/model"
	promoMocks "luxedrive/internal/domains/promo/mocks"
	promoModel "luxedrive/internal/domains/promo/model"
	eventMocks "luxedrive/internal/events/mocks"
	"luxedrive/shared/constant"
	"luxedrive/shared/failure"
)

type bookingMockSet struct {
	bookingRepo *bookingMocks.MockBooking
	carRepo     *carMocks.MockCar
	addonRepo   *addonMocks.MockAddOn
	promoSvc    *promoMocks.MockPromoService
	publisher   *eventMocks.MockPublisher
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	set := bookingMockSet{
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		carRepo:     carMocks.NewMockCar(ctrl),
		addonRepo:   addonMocks.NewMockAddOn(ctrl),
		promoSvc:    promoMocks.NewMockPromoService(ctrl),
		publisher:   eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.HoldTTLMinutes = 15

	svc := service.New(set.bookingRepo, set.carRepo, set.addonRepo, set.promoSvc, set.publisher, cfg, mocks.NewOtel())

	return svc, set
}

// expectPublish wires the publisher mock and returns a channel the test can
// wait on, since events are published from a separate goroutine.
func expectPublish(set bookingMockSet) chan struct{} {
	published := make(chan struct{}, 1)

	set.publisher.EXPECT().
		PublishBookingEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any) error {
			published <- struct{}{}

			return nil
		})

	return published
}

func userContext(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestBookingService_Create(t *testing.T) {
	start := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	activeCar := carModel.Car{
		ID:          "car-id-123",
		AgencyID:    "agency-id-123",
		PricePerDay: 200000,
		Currency:    "INR",
		Active:      true,
	}

	baseReq := dto.CreateBookingRequest{
		CarID:           activeCar.ID,
		StartDatetime:   start.Format(time.RFC3339),
		EndDatetime:     end.Format(time.RFC3339),
		PickupLocation:  "Mumbai Airport",
		DropoffLocation: "Mumbai Airport",
	}

	t.Run("successful booking without promo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newBookingService(ctrl)

		set.carRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeCar, nil)

		set.bookingRepo.EXPECT().
			Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req bookingRepo.ReserveRequest) error {
				assert.Equal(t, activeCar.ID, req.Booking.CarID)
				assert.Equal(t, bookingModel.StatusPending, req.Booking.Status)
				assert.Equal(t, int64(708000), req.Booking.TotalAmount)
				assert.Equal(t, int64(141600), req.Booking.DepositAmount)
				assert.Empty(t, req.PromoID)
				assert.Equal(t, availabilityModel.StatusBlocked, req.Hold.Status)
				assert.NotNil(t, req.Hold.ExpiresAt)

				return nil
			})

		published := expectPublish(set)

		res, err := svc.Create(userContext("user-id-123", constant.RoleUser), baseReq)

		assert.NoError(t, err)
		assert.Equal(t, float64(7080), res.TotalAmount)
		assert.Equal(t, bookingModel.StatusPending, res.Status)
		assert.NotEmpty(t, res.HoldExpiresAt)

		<-published
	})

	t.Run("booking with addons and promo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newBookingService(ctrl)

		req := baseReq
		req.AddOnIDs = []string{"addon-gps"}
		req.PromoCode = "SUMMER10"

		set.carRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeCar, nil)

		set.addonRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]addonModel.AddOn{
				{ID: "addon-gps", Name: "GPS", PricePerDay: 10000, Active: true},
			}, nil)

		set.promoSvc.EXPECT().
			Validate(gomock.Any(), "SUMMER10", gomock.Any()).
			Return(promoModel.PromoCode{
				ID:            "promo-id-123",
				Code:          "SUMMER10",
				DiscountType:  "percent",
				DiscountValue: 10,
				Active:        true,
			}, true)

		set.bookingRepo.EXPECT().
			Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req bookingRepo.ReserveRequest) error {
				assert.Equal(t, "promo-id-123", req.PromoID)
				assert.Equal(t, int64(63000), req.Booking.DiscountAmount)
				assert.Len(t, req.Booking.AddOns, 1)

				return nil
			})

		published := expectPublish(set)

		res, err := svc.Create(userContext("user-id-123", constant.RoleUser), req)

		assert.NoError(t, err)
		assert.Equal(t, float64(630), res.DiscountAmount)
		assert.NotNil(t, res.PromoCode)

		<-published
	})

	t.Run("promo exhausted retries at full price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newBookingService(ctrl)

		req := baseReq
		req.PromoCode = "SUMMER10"

		set.carRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeCar, nil)

		set.promoSvc.EXPECT().
			Validate(gomock.Any(), "SUMMER10", gomock.Any()).
			Return(promoModel.PromoCode{
				ID:            "promo-id-123",
				Code:          "SUMMER10",
				DiscountType:  "percent",
				DiscountValue: 10,
				Active:        true,
			}, true)

		first := set.bookingRepo.EXPECT().
			Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req bookingRepo.ReserveRequest) error {
				assert.Equal(t, "promo-id-123", req.PromoID)

				return bookingRepo.ErrPromoExhausted
			})

		set.bookingRepo.EXPECT().
			Reserve(gomock.Any(), gomock.Any()).
			After(first).
			DoAndReturn(func(_ context.Context, req bookingRepo.ReserveRequest) error {
				assert.Empty(t, req.PromoID)
				assert.Nil(t, req.Booking.PromoCode)
				assert.Equal(t, int64(0), req.Booking.DiscountAmount)
				assert.Equal(t, int64(708000), req.Booking.TotalAmount)

				return nil
			})

		published := expectPublish(set)

		res, err := svc.Create(userContext("user-id-123", constant.RoleUser), req)

		assert.NoError(t, err)
		assert.Equal(t, float64(0), res.DiscountAmount)
		assert.Nil(t, res.PromoCode)

		<-published
	})

	t.Run("overlapping dates conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newBookingService(ctrl)

		set.carRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeCar, nil)

		set.bookingRepo.EXPECT().
			Reserve(gomock.Any(), gomock.Any()).
			Return(failure.Conflict("car is not available for the selected dates"))

		_, err := svc.Create(userContext("user-id-123", constant.RoleUser), baseReq)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("car not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newBookingService(ctrl)

		set.carRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(carModel.Car{}, nil)

		_, err := svc.Create(userContext("user-id-123", constant.RoleUser), baseReq)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("end before start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newBookingService(ctrl)

		req := baseReq
		req.StartDatetime = end.Format(time.RFC3339)
		req.EndDatetime = start.Format(time.RFC3339)

		_, err := svc.Create(userContext("user-id-123", constant.RoleUser), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("missing user identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newBookingService(ctrl)

		_, err := svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestBookingService_GetByID(t *testing.T) {
	booking := bookingModel.Booking{
		ID:     "booking-id-123",
		CarID:  "car-id-123",
		UserID: "user-id-123",
		Status: bookingModel.StatusPending,
	}

	t.Run("owner can read own booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newBookingService(ctrl)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		res, err := svc.GetByID(userContext("user-id-123", constant.RoleUser), booking.ID)

		assert.NoError(t, err)
		assert.Equal(t, booking.ID, res.ID)
	})

	t.Run("admin can read any booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newBookingService(ctrl)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		_, err := svc.GetByID(userContext("another-user", constant.RoleAdmin), booking.ID)

		assert.NoError(t, err)
	})

	t.Run("other user is restricted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newBookingService(ctrl)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		_, err := svc.GetByID(userContext("another-user", constant.RoleUser), booking.ID)

		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newBookingService(ctrl)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil)

		_, err := svc.GetByID(userContext("user-id-123", constant.RoleUser), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Confirm(t *testing.T) {
	t.Run("confirms pending booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newBookingService(ctrl)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{ID: "booking-id-123", Status: bookingModel.StatusPending}, nil)

		set.bookingRepo.EXPECT().
			ResolvePayment(gomock.Any(), "booking-id-123", bookingModel.StatusConfirmed, gomock.Any()).
			Return(nil)

		published := expectPublish(set)

		err := svc.Confirm(context.Background(), "booking-id-123")

		assert.NoError(t, err)

		<-published
	})

	t.Run("rejects non-pending booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newBookingService(ctrl)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{ID: "booking-id-123", Status: bookingModel.StatusConfirmed}, nil)

		err := svc.Confirm(context.Background(), "booking-id-123")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	set.bookingRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(bookingModel.Booking{ID: "booking-id-123", Status: bookingModel.StatusPending}, nil)

	set.bookingRepo.EXPECT().
		ResolvePayment(gomock.Any(), "booking-id-123", bookingModel.StatusCancelled, gomock.Any()).
		Return(nil)

	published := expectPublish(set)

	err := svc.Cancel(context.Background(), "booking-id-123")

	assert.NoError(t, err)

	<-published
}
