package service

import (
	"context"
	"time"

	"luxedrive/config"
	"luxedrive/infras/otel"
	"luxedrive/internal/domains/availability/repository"
	"luxedrive/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	StartSweeper(ctx context.Context)
	SweepExpired(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	availabilityRepo repository.Availability
	cfg              *config.Config
	otel             otel.Otel
}

func New(availabilityRepo repository.Availability, cfg *config.Config, otel otel.Otel) Availability {
	return &serviceImpl{
		availabilityRepo: availabilityRepo,
		cfg:              cfg,
		otel:             otel,
	}
}

// StartSweeper periodically deletes lapsed holds until the context is done.
func (s *serviceImpl) StartSweeper(ctx context.Context) {
	interval := time.Duration(s.cfg.Booking.SweepIntervalSecond) * time.Second

	log.Info().Dur("interval", interval).Msg("Starting availability sweeper.")

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("Availability sweeper stopped.")

				return
			case <-ticker.C:
				if _, err := s.SweepExpired(ctx); err != nil {
					log.Error().Err(err).Msg("failed to sweep expired holds")
				}
			}
		}
	}()
}

func (s *serviceImpl) SweepExpired(ctx context.Context) (deleted int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, "sweeper", "sweeper.SweepExpired")
	defer scope.End()
	defer scope.TraceIfError(err)

	deleted, err = s.availabilityRepo.DeleteExpired(ctx, timezone.Now())
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("Swept expired holds.")
	}

	return deleted, nil
}
