package repositories

import (
	"context"
	"database/sql"
	goerrors "errors"

	"guide-booking-service/internal/module/referral/models/entity"
	"guide-booking-service/internal/pkg/database"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const uniqueBookingEarning = "referral_earnings_booking_id_key"

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// db
	InsertEarning(ctx context.Context, earning entity.Earning) (entity.Earning, error)
	FindEarningByID(ctx context.Context, earningID uuid.UUID) (entity.Earning, error)
	FindEarningsByReferrerID(ctx context.Context, referrerID uuid.UUID) ([]entity.Earning, error)
	FindPayableEarnings(ctx context.Context, limit int) ([]entity.Earning, error)
	MarkPayoutRequested(ctx context.Context, earningID uuid.UUID) error
	UpdateEarningStatus(ctx context.Context, earningID uuid.UUID, from, to entity.EarningStatus, reason string) (entity.Earning, error)
	CancelEarningsByBookingID(ctx context.Context, bookingID uuid.UUID) (int64, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

const earningColumns = `id, booking_id, trip_id, referrer_id, earnings_amount, status, failure_reason,
	payout_requested_at, created_at, updated_at, paid_at`

// InsertEarning implements Repositories. The row is only written while the
// booking is paid.
func (r *repositories) InsertEarning(ctx context.Context, earning entity.Earning) (entity.Earning, error) {
	query := `INSERT INTO referral_earnings (id, booking_id, trip_id, referrer_id, earnings_amount, status)
		SELECT $1, b.id, $3, $4, $5, 'pending' FROM bookings b
		WHERE b.id = $2 AND b.payment_status = 'paid'
		RETURNING ` + earningColumns
	var inserted entity.Earning
	err := database.Executor(ctx, r.db).GetContext(ctx, &inserted, query,
		earning.ID, earning.BookingID, earning.TripID, earning.ReferrerID, earning.EarningsAmount)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Earning{}, errors.InvalidTransition("referral earnings require a paid booking")
	}
	if database.IsUniqueViolation(err, uniqueBookingEarning) {
		return entity.Earning{}, errors.DuplicateEarning("booking already has a referral earning")
	}
	if err != nil {
		r.log.Error(ctx, "error insert referral earning", err, zap.Stringer("booking_id", earning.BookingID))
		return entity.Earning{}, errors.InternalServerError("error insert referral earning")
	}
	return inserted, nil
}

// FindEarningByID implements Repositories.
func (r *repositories) FindEarningByID(ctx context.Context, earningID uuid.UUID) (entity.Earning, error) {
	query := `SELECT ` + earningColumns + ` FROM referral_earnings WHERE id = $1`
	var earning entity.Earning
	err := database.Executor(ctx, r.db).GetContext(ctx, &earning, query, earningID)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Earning{}, errors.NotFound("referral earning not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find referral earning", err, zap.Stringer("earning_id", earningID))
		return entity.Earning{}, errors.InternalServerError("error find referral earning")
	}
	return earning, nil
}

// FindEarningsByReferrerID implements Repositories.
func (r *repositories) FindEarningsByReferrerID(ctx context.Context, referrerID uuid.UUID) ([]entity.Earning, error) {
	query := `SELECT ` + earningColumns + ` FROM referral_earnings WHERE referrer_id = $1 ORDER BY created_at DESC`
	earnings := []entity.Earning{}
	if err := database.Executor(ctx, r.db).SelectContext(ctx, &earnings, query, referrerID); err != nil {
		r.log.Error(ctx, "error find referral earnings", err, zap.Stringer("referrer_id", referrerID))
		return nil, errors.InternalServerError("error find referral earnings")
	}
	return earnings, nil
}

// FindPayableEarnings implements Repositories. Payable means pending, not yet
// requested, and backed by a completed booking.
func (r *repositories) FindPayableEarnings(ctx context.Context, limit int) ([]entity.Earning, error) {
	query := `SELECT e.id, e.booking_id, e.trip_id, e.referrer_id, e.earnings_amount, e.status, e.failure_reason,
			e.payout_requested_at, e.created_at, e.updated_at, e.paid_at
		FROM referral_earnings e
		JOIN bookings b ON b.id = e.booking_id
		WHERE e.status = 'pending' AND e.payout_requested_at IS NULL AND b.status = 'completed'
		ORDER BY e.created_at
		LIMIT $1`
	earnings := []entity.Earning{}
	if err := database.Executor(ctx, r.db).SelectContext(ctx, &earnings, query, limit); err != nil {
		r.log.Error(ctx, "error find payable earnings", err)
		return nil, errors.InternalServerError("error find payable earnings")
	}
	return earnings, nil
}

// MarkPayoutRequested implements Repositories.
func (r *repositories) MarkPayoutRequested(ctx context.Context, earningID uuid.UUID) error {
	query := `UPDATE referral_earnings SET payout_requested_at = NOW(), updated_at = NOW() WHERE id = $1 AND status = 'pending'`
	if _, err := database.Executor(ctx, r.db).ExecContext(ctx, query, earningID); err != nil {
		r.log.Error(ctx, "error mark payout requested", err, zap.Stringer("earning_id", earningID))
		return errors.InternalServerError("error mark payout requested")
	}
	return nil
}

// UpdateEarningStatus implements Repositories.
func (r *repositories) UpdateEarningStatus(ctx context.Context, earningID uuid.UUID, from, to entity.EarningStatus, reason string) (entity.Earning, error) {
	query := `UPDATE referral_earnings SET
			status = $3,
			failure_reason = NULLIF($4, ''),
			paid_at = CASE WHEN $3 = 'paid' THEN NOW() ELSE paid_at END,
			updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + earningColumns
	var earning entity.Earning
	err := database.Executor(ctx, r.db).GetContext(ctx, &earning, query, earningID, from, to, reason)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Earning{}, errors.InvalidTransition("referral earning was modified concurrently")
	}
	if err != nil {
		r.log.Error(ctx, "error update referral earning", err, zap.Stringer("earning_id", earningID))
		return entity.Earning{}, errors.InternalServerError("error update referral earning")
	}
	return earning, nil
}

// CancelEarningsByBookingID implements Repositories. Paid earnings stay paid.
func (r *repositories) CancelEarningsByBookingID(ctx context.Context, bookingID uuid.UUID) (int64, error) {
	query := `UPDATE referral_earnings SET status = 'cancelled', updated_at = NOW()
		WHERE booking_id = $1 AND status IN ('pending', 'failed')`
	res, err := database.Executor(ctx, r.db).ExecContext(ctx, query, bookingID)
	if err != nil {
		r.log.Error(ctx, "error cancel referral earnings", err, zap.Stringer("booking_id", bookingID))
		return 0, errors.InternalServerError("error cancel referral earnings")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.InternalServerError("error cancel referral earnings")
	}
	return affected, nil
}
