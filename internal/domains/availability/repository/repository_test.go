package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxedrive/infras/otel/mocks"
	"luxedrive/infras/postgres"
	"luxedrive/internal/domains/availability/repository"
)

// The overlap check is half-open with strict comparisons, so a rental ending
// exactly when another starts must not collide, and blocked rows only count
// while their expiry is still in the future.
const overlapQueryPattern = `SELECT EXISTS\( SELECT 1 FROM car_availability WHERE car_id = \$1 AND start_datetime < \$2 AND end_datetime > \$3 AND \(status = 'booked' OR \(status = 'blocked' AND expires_at > \$4\)\) \)`

func newMockedRepository(t *testing.T) (repository.Availability, *sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")
	conn := &postgres.Connection{Read: db, Write: db}

	return repository.New(conn, mocks.NewOtel()), db, mock
}

func TestAvailabilityRepository_HasOverlapTx(t *testing.T) {
	start := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)
	now := start.Add(-time.Hour)

	tests := []struct {
		name   string
		exists bool
	}{
		{
			// A hold ending exactly at the requested start satisfies the strict
			// predicate as false on the database side.
			name:   "adjacent ranges do not overlap",
			exists: false,
		},
		{
			name:   "intersecting active range overlaps",
			exists: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db, mock := newMockedRepository(t)

			mock.ExpectBegin()

			tx, err := db.Beginx()
			require.NoError(t, err)

			mock.ExpectPrepare(overlapQueryPattern).
				ExpectQuery().
				WithArgs("car-id-123", end, start, now).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))
			mock.ExpectRollback()

			overlap, err := repo.HasOverlapTx(context.Background(), tx, "car-id-123", start, end, now)

			assert.NoError(t, err)
			assert.Equal(t, tt.exists, overlap)

			require.NoError(t, tx.Rollback())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAvailabilityRepository_DeleteExpired(t *testing.T) {
	repo, _, mock := newMockedRepository(t)

	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	// Only lapsed blocked rows are collected; booked rows never expire.
	mock.ExpectExec(`DELETE FROM car_availability WHERE status = 'blocked' AND expires_at IS NOT NULL AND expires_at < \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := repo.DeleteExpired(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityRepository_ConfirmByBookingTx(t *testing.T) {
	repo, db, mock := newMockedRepository(t)

	mock.ExpectBegin()

	tx, err := db.Beginx()
	require.NoError(t, err)

	mock.ExpectExec(`UPDATE car_availability SET status = 'booked', expires_at = NULL, modified_at = NOW\(\), modified_by = \$1 WHERE booking_id = \$2 AND status = 'blocked'`).
		WithArgs("payment", "booking-id-123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.ConfirmByBookingTx(context.Background(), tx, "booking-id-123", "payment")

	assert.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
