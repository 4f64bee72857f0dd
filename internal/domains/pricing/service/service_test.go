package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"luxedrive/infras/otel/mocks"
	addonMocks "luxedrive/internal/domains/addon/mocks"
	addonModel "luxedrive/internal/domains/addon/model"
	carMocks "luxedrive/internal/domains/car/mocks"
	carModel "luxedrive/internal/domains/car/model"
	"luxedrive/internal/domains/pricing/model/dto"
	"luxedrive/internal/domains/pricing/service"
	promoMocks "luxedrive/internal/domains/promo/mocks"
	promoModel "luxedrive/internal/domains/promo/model"
	"luxedrive/shared/failure"
)

func TestPricingService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCarRepo := carMocks.NewMockCar(ctrl)
	mockAddonRepo := addonMocks.NewMockAddOn(ctrl)
	mockPromoSvc := promoMocks.NewMockPromoService(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockCarRepo, mockAddonRepo, mockPromoSvc, mockOtel)

	start := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	activeCar := carModel.Car{
		ID:          "car-id-123",
		AgencyID:    "agency-id-123",
		PricePerDay: 200000,
		Currency:    "INR",
		Active:      true,
	}

	tests := []struct {
		name      string
		req       dto.QuoteRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res dto.QuoteResponse)
	}{
		{
			name: "quote without promo",
			req: dto.QuoteRequest{
				CarID:         activeCar.ID,
				StartDatetime: start.Format(time.RFC3339),
				EndDatetime:   end.Format(time.RFC3339),
			},
			setupMock: func() {
				mockCarRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeCar, nil)
			},
			check: func(t *testing.T, res dto.QuoteResponse) {
				assert.Equal(t, int64(3), res.Days)
				assert.Equal(t, float64(6000), res.BasePrice)
				assert.Equal(t, float64(1080), res.Taxes)
				assert.Equal(t, int64(18), res.TaxPercent)
				assert.Equal(t, float64(7080), res.Total)
				assert.Equal(t, float64(1416), res.Deposit)
				assert.Equal(t, int64(20), res.DepositPercent)
				assert.Equal(t, float64(2000), res.Breakdown.CarPricePerDay)
				assert.Equal(t, float64(6000), res.Breakdown.CarTotal)
				assert.False(t, res.PromoApplied)
			},
		},
		{
			name: "quote with add-ons and percent promo",
			req: dto.QuoteRequest{
				CarID:         activeCar.ID,
				StartDatetime: start.Format(time.RFC3339),
				EndDatetime:   end.Format(time.RFC3339),
				AddOnIDs:      []string{"addon-gps"},
				PromoCode:     "SUMMER10",
			},
			setupMock: func() {
				mockCarRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeCar, nil)

				mockAddonRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]addonModel.AddOn{
						{ID: "addon-gps", Name: "GPS", PricePerDay: 10000, Active: true},
					}, nil)

				mockPromoSvc.EXPECT().
					Validate(gomock.Any(), "SUMMER10", gomock.Any()).
					Return(promoModel.PromoCode{
						ID:            "promo-id-123",
						Code:          "SUMMER10",
						DiscountType:  "percent",
						DiscountValue: 10,
						Active:        true,
					}, true)
			},
			check: func(t *testing.T, res dto.QuoteResponse) {
				assert.Equal(t, float64(300), res.AddOnsPrice)
				assert.Equal(t, float64(6300), res.Subtotal)
				assert.Equal(t, float64(630), res.DiscountAmount)
				assert.Equal(t, int64(10), res.DiscountPercent)
				assert.True(t, res.PromoApplied)
				assert.Len(t, res.Breakdown.AddOns, 1)
				assert.Equal(t, "GPS", res.Breakdown.AddOns[0].Name)
				assert.Equal(t, float64(300), res.Breakdown.AddOns[0].Total)
			},
		},
		{
			name: "ineligible promo falls back to full price",
			req: dto.QuoteRequest{
				CarID:         activeCar.ID,
				StartDatetime: start.Format(time.RFC3339),
				EndDatetime:   end.Format(time.RFC3339),
				PromoCode:     "EXPIRED",
			},
			setupMock: func() {
				mockCarRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeCar, nil)

				mockPromoSvc.EXPECT().
					Validate(gomock.Any(), "EXPIRED", gomock.Any()).
					Return(promoModel.PromoCode{}, false)
			},
			check: func(t *testing.T, res dto.QuoteResponse) {
				assert.Equal(t, float64(0), res.DiscountAmount)
				assert.Equal(t, float64(7080), res.Total)
				assert.False(t, res.PromoApplied)
			},
		},
		{
			name: "car not found",
			req: dto.QuoteRequest{
				CarID:         "missing-car",
				StartDatetime: start.Format(time.RFC3339),
				EndDatetime:   end.Format(time.RFC3339),
			},
			setupMock: func() {
				mockCarRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(carModel.Car{}, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive car",
			req: dto.QuoteRequest{
				CarID:         activeCar.ID,
				StartDatetime: start.Format(time.RFC3339),
				EndDatetime:   end.Format(time.RFC3339),
			},
			setupMock: func() {
				inactive := activeCar
				inactive.Active = false

				mockCarRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid start datetime",
			req: dto.QuoteRequest{
				CarID:         activeCar.ID,
				StartDatetime: "2025-07-01",
				EndDatetime:   end.Format(time.RFC3339),
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "end before start",
			req: dto.QuoteRequest{
				CarID:         activeCar.ID,
				StartDatetime: end.Format(time.RFC3339),
				EndDatetime:   start.Format(time.RFC3339),
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "end equal to start",
			req: dto.QuoteRequest{
				CarID:         activeCar.ID,
				StartDatetime: start.Format(time.RFC3339),
				EndDatetime:   start.Format(time.RFC3339),
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "car lookup failure",
			req: dto.QuoteRequest{
				CarID:         activeCar.ID,
				StartDatetime: start.Format(time.RFC3339),
				EndDatetime:   end.Format(time.RFC3339),
			},
			setupMock: func() {
				mockCarRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(carModel.Car{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Quote(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			tt.check(t, res)
		})
	}
}
