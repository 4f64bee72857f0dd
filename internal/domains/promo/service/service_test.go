package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"luxedrive/infras/otel/mocks"
	promoMocks "luxedrive/internal/domains/promo/mocks"
	"luxedrive/internal/domains/promo/model"
	"luxedrive/internal/domains/promo/service"
)

func TestPromoService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPromoRepo := promoMocks.NewMockPromo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockPromoRepo, mockOtel)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	eligiblePromo := model.PromoCode{
		ID:            "promo-id-123",
		Code:          "SUMMER10",
		DiscountType:  "percent",
		DiscountValue: 10,
		StartsAt:      &past,
		EndsAt:        &future,
		Active:        true,
	}

	tests := []struct {
		name         string
		code         string
		setupMock    func()
		wantEligible bool
	}{
		{
			name: "eligible promo",
			code: "SUMMER10",
			setupMock: func() {
				mockPromoRepo.EXPECT().
					GetByCode(gomock.Any(), "SUMMER10").
					Return(eligiblePromo, nil)
			},
			wantEligible: true,
		},
		{
			name: "unknown code degrades to no discount",
			code: "NOPE",
			setupMock: func() {
				mockPromoRepo.EXPECT().
					GetByCode(gomock.Any(), "NOPE").
					Return(model.PromoCode{}, nil)
			},
			wantEligible: false,
		},
		{
			name: "lookup failure degrades to no discount",
			code: "SUMMER10",
			setupMock: func() {
				mockPromoRepo.EXPECT().
					GetByCode(gomock.Any(), "SUMMER10").
					Return(model.PromoCode{}, errors.New("connection refused"))
			},
			wantEligible: false,
		},
		{
			name: "inactive promo",
			code: "SUMMER10",
			setupMock: func() {
				inactive := eligiblePromo
				inactive.Active = false

				mockPromoRepo.EXPECT().
					GetByCode(gomock.Any(), "SUMMER10").
					Return(inactive, nil)
			},
			wantEligible: false,
		},
		{
			name: "exhausted promo",
			code: "SUMMER10",
			setupMock: func() {
				limit := 100
				exhausted := eligiblePromo
				exhausted.UsageLimit = &limit
				exhausted.UsageCount = 100

				mockPromoRepo.EXPECT().
					GetByCode(gomock.Any(), "SUMMER10").
					Return(exhausted, nil)
			},
			wantEligible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			promo, eligible := svc.Validate(context.Background(), tt.code, now)

			assert.Equal(t, tt.wantEligible, eligible)

			if tt.wantEligible {
				assert.Equal(t, eligiblePromo.ID, promo.ID)
			}
		})
	}
}
