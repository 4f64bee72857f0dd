package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"luxedrive/infras/otel"
	"luxedrive/infras/postgres"
	availabilityModel "luxedrive/internal/domains/availability/model"
	availabilityRepo "luxedrive/internal/domains/availability/repository"
	"luxedrive/internal/domains/booking/model"
	promoRepo "luxedrive/internal/domains/promo/repository"
	"luxedrive/shared/constant"
	gDto "luxedrive/shared/dto"
	"luxedrive/shared/failure"
	"luxedrive/shared/logger"
	gRepo "luxedrive/shared/repository"

	"github.com/rs/zerolog/log"
)

// ErrPromoExhausted signals that the promo usage limit was hit between
// validation and reservation. The caller retries at full price.
var ErrPromoExhausted = errors.New("promo code usage limit reached")

// Serializes reservations per car so two requests for the same car cannot
// both pass the overlap check. Lock scope is the transaction.
const advisoryLockQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`

const resolvePaymentQuery = `
	UPDATE bookings
	SET status = :status, modified_at = NOW(), modified_by = :modified_by
	WHERE id = :id AND status = 'pending'`

// ReserveRequest carries everything Reserve writes in one transaction.
type ReserveRequest struct {
	Booking model.Booking
	Hold    availabilityModel.Availability
	PromoID string
	Now     time.Time
}

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Reserve(ctx context.Context, req ReserveRequest) error
	ResolvePayment(ctx context.Context, bookingID, status, username string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db               *postgres.Connection
	availabilityRepo availabilityRepo.Availability
	promoRepo        promoRepo.Promo
	otel             otel.Otel
}

func New(db *postgres.Connection, availabilityRepo availabilityRepo.Availability, promoRepo promoRepo.Promo, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository:       gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:               db,
		availabilityRepo: availabilityRepo,
		promoRepo:        promoRepo,
		otel:             otel,
	}
}

// Reserve checks availability and writes the booking with its hold in a
// single transaction. The overlap check and the inserts happen under a per-car
// advisory lock, so a concurrent reservation for the same car waits and then
// sees this one's hold.
func (repo *repositoryImpl) Reserve(ctx context.Context, req ReserveRequest) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Str("booking_id", req.Booking.ID).Msg("failed to rollback reservation")
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, advisoryLockQuery, req.Booking.CarID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to acquire car lock (%s): %w", model.EntityName, err)
	}

	overlap, err := repo.availabilityRepo.HasOverlapTx(ctx, tx, req.Booking.CarID, req.Booking.StartDatetime, req.Booking.EndDatetime, req.Now)
	if err != nil {
		return err
	}

	if overlap {
		err = failure.Conflict("car is not available for the selected dates")

		return err
	}

	if req.PromoID != "" {
		claimed, claimErr := repo.promoRepo.IncrementUsageTx(ctx, tx, req.PromoID)
		if claimErr != nil {
			err = claimErr

			return err
		}

		if !claimed {
			err = ErrPromoExhausted

			return err
		}
	}

	if err = repo.InsertTx(ctx, tx, req.Booking); err != nil {
		return err
	}

	if err = repo.availabilityRepo.InsertTx(ctx, tx, req.Hold); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit reservation (%s): %w", model.EntityName, err)
	}

	return nil
}

// ResolvePayment finalizes a pending booking and settles its hold in one
// transaction. Confirming promotes the hold to booked, failing deletes it.
func (repo *repositoryImpl) ResolvePayment(ctx context.Context, bookingID, status, username string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ResolvePayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Str("booking_id", bookingID).Msg("failed to rollback payment resolution")
			}
		}
	}()

	args := map[string]any{
		"id":          bookingID,
		"status":      status,
		"modified_by": username,
	}

	result, err := tx.NamedExecContext(ctx, resolvePaymentQuery, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update booking status (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	if affected == 0 {
		err = failure.Conflict("booking is not pending")

		return err
	}

	if status == model.StatusConfirmed {
		err = repo.availabilityRepo.ConfirmByBookingTx(ctx, tx, bookingID, username)
	} else {
		err = repo.availabilityRepo.ReleaseByBookingTx(ctx, tx, bookingID)
	}

	if err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit payment resolution (%s): %w", model.EntityName, err)
	}

	return nil
}
