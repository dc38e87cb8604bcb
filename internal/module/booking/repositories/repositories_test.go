package repositories_test

import (
	"context"
	"database/sql/driver"
	goerrors "errors"
	"testing"
	"time"

	"guide-booking-service/internal/module/booking/domain"
	"guide-booking-service/internal/module/booking/models/entity"
	"guide-booking-service/internal/module/booking/repositories"
	"guide-booking-service/internal/pkg/errors"
	log_internal "guide-booking-service/internal/pkg/log"
	"guide-booking-service/internal/pkg/money"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingCols = []string{
	"id", "trip_id", "trip_date_id", "customer_id", "referrer_id", "participant_count",
	"unit_price", "total_price", "commission_amount", "hosting_fee", "guide_payout",
	"status", "payment_status", "refunded_amount", "pending_refund_amount", "pending_refund_key",
	"charge_transaction_id", "cancelled_by", "cancellation_reason", "last_payment_error",
	"created_at", "updated_at", "confirmed_at", "completed_at", "cancelled_at",
}

func setup(t *testing.T) (repositories.Repositories, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repositories.New(sqlx.NewDb(db, "postgres"), log_internal.GetLogger()), mock
}

func bookingRow(b entity.Booking) []driver.Value {
	now := time.Now()
	return []driver.Value{
		b.ID.String(), b.TripID.String(), b.TripDateID.String(), b.CustomerID.String(), nil, b.ParticipantCount,
		int64(b.UnitPrice), int64(b.TotalPrice), int64(b.CommissionAmount), int64(b.HostingFee), int64(b.GuidePayout),
		string(b.Status), string(b.PaymentStatus), int64(b.RefundedAmount), int64(b.PendingRefundAmount), nil,
		nil, nil, nil, nil,
		now, now, nil, nil, nil,
	}
}

func sample() entity.Booking {
	return entity.Booking{
		ID:               uuid.New(),
		TripID:           uuid.New(),
		TripDateID:       uuid.New(),
		CustomerID:       uuid.New(),
		ParticipantCount: 1,
		UnitPrice:        money.FromMajor(450),
		TotalPrice:       money.FromMajor(450),
		CommissionAmount: 5400,
		HostingFee:       100,
		GuidePayout:      39500,
		Status:           domain.StatusPending,
		PaymentStatus:    domain.PaymentUnpaid,
	}
}

func TestInsertBooking(t *testing.T) {
	ctx := context.Background()
	b := sample()

	t.Run("success", func(t *testing.T) {
		repo, mock := setup(t)
		mock.ExpectQuery(`INSERT INTO bookings`).
			WithArgs(b.ID, b.TripID, b.TripDateID, b.CustomerID, b.ReferrerID, 1,
				b.UnitPrice, b.TotalPrice, b.CommissionAmount, b.HostingFee, b.GuidePayout, b.Status, b.PaymentStatus).
			WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(bookingRow(b)...))

		inserted, err := repo.InsertBooking(ctx, b)

		require.NoError(t, err)
		assert.Equal(t, b.ID, inserted.ID)
		assert.Equal(t, money.Amount(39500), inserted.GuidePayout)
		assert.Equal(t, domain.StatusPending, inserted.Status)
		assert.False(t, inserted.ReferrerID.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := setup(t)
		mock.ExpectQuery(`INSERT INTO bookings`).WillReturnError(goerrors.New("connection reset"))

		_, err := repo.InsertBooking(ctx, b)

		assert.True(t, errors.Is(err, errors.CodeInternal))
	})
}

func TestFindBookingByID(t *testing.T) {
	ctx := context.Background()
	b := sample()

	t.Run("found", func(t *testing.T) {
		repo, mock := setup(t)
		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
			WithArgs(b.ID).
			WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(bookingRow(b)...))

		found, err := repo.FindBookingByID(ctx, b.ID)

		require.NoError(t, err)
		assert.Equal(t, b.CustomerID, found.CustomerID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setup(t)
		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
			WithArgs(b.ID).
			WillReturnRows(sqlmock.NewRows(bookingCols))

		_, err := repo.FindBookingByID(ctx, b.ID)

		assert.True(t, errors.Is(err, errors.CodeNotFound))
	})
}

func TestFindBookingsByGuideID(t *testing.T) {
	repo, mock := setup(t)
	guideID := uuid.New()
	b := sample()
	mock.ExpectQuery(`SELECT b.id, (.+) FROM bookings b\s+JOIN trips t ON t.id = b.trip_id\s+WHERE t.guide_id = \$1`).
		WithArgs(guideID).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(bookingRow(b)...))

	bookings, err := repo.FindBookingsByGuideID(context.Background(), guideID)

	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyTransition(t *testing.T) {
	ctx := context.Background()
	b := sample()
	transition := entity.NewTransition(b)
	transition.ToStatus = domain.StatusConfirmed
	transition.ToPayment = domain.PaymentPaid

	t.Run("guarded on the expected status", func(t *testing.T) {
		repo, mock := setup(t)
		confirmed := b
		confirmed.Status = domain.StatusConfirmed
		confirmed.PaymentStatus = domain.PaymentPaid
		mock.ExpectQuery(`UPDATE bookings SET (.+) WHERE id = \$1 AND status = \$2 AND payment_status = \$3`).
			WithArgs(b.ID, domain.StatusPending, domain.PaymentUnpaid, domain.StatusConfirmed, domain.PaymentPaid,
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(bookingRow(confirmed)...))

		updated, err := repo.ApplyTransition(ctx, transition)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, updated.Status)
		assert.Equal(t, domain.PaymentPaid, updated.PaymentStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale status matches no row", func(t *testing.T) {
		repo, mock := setup(t)
		mock.ExpectQuery(`UPDATE bookings SET`).WillReturnRows(sqlmock.NewRows(bookingCols))

		_, err := repo.ApplyTransition(ctx, transition)

		assert.True(t, errors.Is(err, errors.CodeInvalidTransition))
	})
}

func TestRecordPaymentError(t *testing.T) {
	repo, mock := setup(t)
	id := uuid.New()
	mock.ExpectExec(`UPDATE bookings SET last_payment_error = \$2`).
		WithArgs(id, "payment declined").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordPaymentError(context.Background(), id, "payment declined")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
