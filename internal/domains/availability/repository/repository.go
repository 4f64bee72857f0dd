package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"luxedrive/infras/otel"
	"luxedrive/infras/postgres"
	"luxedrive/internal/domains/availability/model"
	"luxedrive/shared/constant"
	gDto "luxedrive/shared/dto"
	"luxedrive/shared/logger"
	gRepo "luxedrive/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Overlap uses half-open windows: a rental ending at 10:00 does not collide
// with one starting at 10:00. Expired holds are filtered out here so a stale
// blocked record never rejects a booking, even before the sweeper runs.
const overlapQuery = `
	SELECT EXISTS(
		SELECT 1 FROM car_availability
		WHERE car_id = :car_id
			AND start_datetime < :end_datetime
			AND end_datetime > :start_datetime
			AND (status = 'booked' OR (status = 'blocked' AND expires_at > :now))
	)`

const confirmByBookingQuery = `
	UPDATE car_availability
	SET status = 'booked', expires_at = NULL, modified_at = NOW(), modified_by = :modified_by
	WHERE booking_id = :booking_id AND status = 'blocked'`

const releaseByBookingQuery = `
	DELETE FROM car_availability
	WHERE booking_id = :booking_id AND status = 'blocked'`

const deleteExpiredQuery = `
	DELETE FROM car_availability
	WHERE status = 'blocked' AND expires_at IS NOT NULL AND expires_at < :now`

type Availability interface {
	Insert(ctx context.Context, model model.Availability) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Availability) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Availability, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Availability, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	HasOverlapTx(ctx context.Context, sqltx *sqlx.Tx, carID string, start, end, now time.Time) (bool, error)
	ConfirmByBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID, username string) error
	ReleaseByBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Availability]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Availability](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) HasOverlapTx(ctx context.Context, sqltx *sqlx.Tx, carID string, start, end, now time.Time) (overlap bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".HasOverlapTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, overlapQuery)

	args := map[string]any{
		"car_id":         carID,
		"start_datetime": start,
		"end_datetime":   end,
		"now":            now,
	}

	prepare, err := sqltx.PrepareNamedContext(ctx, overlapQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &overlap, args); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check overlap (%s): %w", model.EntityName, err)
	}

	return overlap, nil
}

func (repo *repositoryImpl) ConfirmByBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID, username string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ConfirmByBookingTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, confirmByBookingQuery)

	args := map[string]any{
		"booking_id":  bookingID,
		"modified_by": username,
	}

	if _, err = sqltx.NamedExecContext(ctx, confirmByBookingQuery, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to confirm hold (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) ReleaseByBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ReleaseByBookingTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, releaseByBookingQuery)

	if _, err = sqltx.NamedExecContext(ctx, releaseByBookingQuery, map[string]any{"booking_id": bookingID}); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to release hold (%s): %w", model.EntityName, err)
	}

	return nil
}

// DeleteExpired garbage-collects lapsed holds. Reads never trust a blocked
// record past its expiry, so this only keeps the table small.
func (repo *repositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (deleted int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".DeleteExpired")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, deleteExpiredQuery)

	result, err := repo.db.Write.NamedExecContext(ctx, deleteExpiredQuery, map[string]any{"now": now})
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to delete expired holds (%s): %w", model.EntityName, err)
	}

	deleted, err = result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return deleted, nil
}
