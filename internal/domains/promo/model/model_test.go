package model_test

import (
	"testing"
	"time"

	"luxedrive/internal/domains/promo/model"

	"github.com/stretchr/testify/assert"
)

func TestPromoCode_EligibleAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)
	limit5 := 5

	tests := []struct {
		name  string
		promo model.PromoCode
		want  bool
	}{
		{
			name:  "active with no bounds",
			promo: model.PromoCode{Active: true},
			want:  true,
		},
		{
			name:  "inactive",
			promo: model.PromoCode{Active: false},
			want:  false,
		},
		{
			name:  "inside window",
			promo: model.PromoCode{Active: true, StartsAt: &past, EndsAt: &future},
			want:  true,
		},
		{
			name:  "not started yet",
			promo: model.PromoCode{Active: true, StartsAt: &future},
			want:  false,
		},
		{
			name:  "already ended",
			promo: model.PromoCode{Active: true, EndsAt: &past},
			want:  false,
		},
		{
			name:  "under usage limit",
			promo: model.PromoCode{Active: true, UsageLimit: &limit5, UsageCount: 4},
			want:  true,
		},
		{
			name:  "usage limit reached",
			promo: model.PromoCode{Active: true, UsageLimit: &limit5, UsageCount: 5},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.promo.EligibleAt(now))
		})
	}
}
