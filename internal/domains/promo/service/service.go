package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"luxedrive/infras/otel"
	"luxedrive/internal/domains/promo/model"
	"luxedrive/internal/domains/promo/repository"
	"luxedrive/shared/constant"

	"github.com/rs/zerolog/log"
)

type Promo interface {
	Validate(ctx context.Context, code string, now time.Time) (model.PromoCode, bool)
}

type serviceImpl struct {
	promoRepo repository.Promo
	otel      otel.Otel
}

func New(promoRepo repository.Promo, otel otel.Otel) Promo {
	return &serviceImpl{
		promoRepo: promoRepo,
		otel:      otel,
	}
}

// Validate resolves a promo code and checks it can be redeemed right now.
// An unknown, expired, or exhausted code degrades to no discount instead of
// failing the calling operation.
func (s *serviceImpl) Validate(ctx context.Context, code string, now time.Time) (model.PromoCode, bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidatePromo")
	defer scope.End()

	promo, err := s.promoRepo.GetByCode(ctx, code)
	if err != nil {
		log.Warn().Err(err).Str("code", code).Msg("failed to look up promo code, skipping discount")

		return promo, false
	}

	if promo.ID == "" {
		log.Info().Str("code", code).Msg("unknown promo code, skipping discount")

		return promo, false
	}

	if !promo.EligibleAt(now) {
		log.Info().Str("code", code).Msg("promo code not redeemable, skipping discount")

		return promo, false
	}

	return promo, true
}
