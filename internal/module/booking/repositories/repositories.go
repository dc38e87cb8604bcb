package repositories

import (
	"context"
	"database/sql"
	goerrors "errors"

	"guide-booking-service/internal/module/booking/models/entity"
	"guide-booking-service/internal/pkg/database"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// db
	InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error)
	FindBookingsByCustomerID(ctx context.Context, customerID uuid.UUID) ([]entity.Booking, error)
	FindBookingsByGuideID(ctx context.Context, guideID uuid.UUID) ([]entity.Booking, error)
	ApplyTransition(ctx context.Context, transition entity.Transition) (entity.Booking, error)
	RecordPaymentError(ctx context.Context, bookingID uuid.UUID, message string) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

const bookingColumns = `id, trip_id, trip_date_id, customer_id, referrer_id, participant_count,
	unit_price, total_price, commission_amount, hosting_fee, guide_payout,
	status, payment_status, refunded_amount, pending_refund_amount, pending_refund_key,
	charge_transaction_id, cancelled_by, cancellation_reason, last_payment_error,
	created_at, updated_at, confirmed_at, completed_at, cancelled_at`

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	query := `INSERT INTO bookings (id, trip_id, trip_date_id, customer_id, referrer_id, participant_count,
			unit_price, total_price, commission_amount, hosting_fee, guide_payout, status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + bookingColumns
	var inserted entity.Booking
	err := database.Executor(ctx, r.db).GetContext(ctx, &inserted, query,
		booking.ID, booking.TripID, booking.TripDateID, booking.CustomerID, booking.ReferrerID, booking.ParticipantCount,
		booking.UnitPrice, booking.TotalPrice, booking.CommissionAmount, booking.HostingFee, booking.GuidePayout,
		booking.Status, booking.PaymentStatus)
	if err != nil {
		r.log.Error(ctx, "error insert booking", err, zap.Stringer("booking_id", booking.ID))
		return entity.Booking{}, errors.InternalServerError("error insert booking")
	}
	return inserted, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := database.Executor(ctx, r.db).GetContext(ctx, &booking, query, bookingID)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find booking by id", err, zap.Stringer("booking_id", bookingID))
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingsByCustomerID implements Repositories.
func (r *repositories) FindBookingsByCustomerID(ctx context.Context, customerID uuid.UUID) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC`
	bookings := []entity.Booking{}
	if err := database.Executor(ctx, r.db).SelectContext(ctx, &bookings, query, customerID); err != nil {
		r.log.Error(ctx, "error find bookings by customer id", err, zap.Stringer("customer_id", customerID))
		return nil, errors.InternalServerError("error find bookings by customer id")
	}
	return bookings, nil
}

// FindBookingsByGuideID implements Repositories.
func (r *repositories) FindBookingsByGuideID(ctx context.Context, guideID uuid.UUID) ([]entity.Booking, error) {
	query := `SELECT ` + prefixed("b", bookingColumns) + ` FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		WHERE t.guide_id = $1
		ORDER BY b.created_at DESC`
	bookings := []entity.Booking{}
	if err := database.Executor(ctx, r.db).SelectContext(ctx, &bookings, query, guideID); err != nil {
		r.log.Error(ctx, "error find bookings by guide id", err, zap.Stringer("guide_id", guideID))
		return nil, errors.InternalServerError("error find bookings by guide id")
	}
	return bookings, nil
}

// ApplyTransition implements Repositories. The write is keyed on the status
// and payment status the caller read; a concurrent change makes it a no-op
// reported as InvalidTransition.
func (r *repositories) ApplyTransition(ctx context.Context, t entity.Transition) (entity.Booking, error) {
	query := `UPDATE bookings SET
			status = $4,
			payment_status = $5,
			refunded_amount = $6,
			pending_refund_amount = $7,
			pending_refund_key = $8,
			charge_transaction_id = $9,
			cancelled_by = $10,
			cancellation_reason = $11,
			last_payment_error = $12,
			confirmed_at = CASE WHEN $4 = 'confirmed' AND status <> 'confirmed' THEN NOW() ELSE confirmed_at END,
			completed_at = CASE WHEN $4 = 'completed' AND status <> 'completed' THEN NOW() ELSE completed_at END,
			cancelled_at = CASE WHEN $4 = 'cancelled' AND status <> 'cancelled' THEN NOW() ELSE cancelled_at END,
			updated_at = NOW()
		WHERE id = $1 AND status = $2 AND payment_status = $3
		RETURNING ` + bookingColumns
	var booking entity.Booking
	err := database.Executor(ctx, r.db).GetContext(ctx, &booking, query,
		t.BookingID, t.FromStatus, t.FromPayment,
		t.ToStatus, t.ToPayment, t.RefundedAmount, t.PendingRefundAmount, t.PendingRefundKey,
		t.ChargeTransactionID, t.CancelledBy, t.CancellationReason, t.LastPaymentError)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Booking{}, errors.InvalidTransition("booking was modified concurrently, reload and retry")
	}
	if err != nil {
		r.log.Error(ctx, "error apply booking transition", err,
			zap.Stringer("booking_id", t.BookingID),
			zap.String("from", t.FromStatus.String()),
			zap.String("to", t.ToStatus.String()))
		return entity.Booking{}, errors.InternalServerError("error apply booking transition")
	}
	return booking, nil
}

// RecordPaymentError implements Repositories.
func (r *repositories) RecordPaymentError(ctx context.Context, bookingID uuid.UUID, message string) error {
	query := `UPDATE bookings SET last_payment_error = $2, updated_at = NOW() WHERE id = $1`
	if _, err := database.Executor(ctx, r.db).ExecContext(ctx, query, bookingID, message); err != nil {
		r.log.Error(ctx, "error record payment error", err, zap.Stringer("booking_id", bookingID))
		return errors.InternalServerError("error record payment error")
	}
	return nil
}
