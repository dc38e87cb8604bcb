package repositories

import (
	"context"
	"database/sql"
	goerrors "errors"

	"guide-booking-service/internal/module/dispute/models/entity"
	"guide-booking-service/internal/pkg/database"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/log"
	"guide-booking-service/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const uniqueOpenDispute = "disputes_one_open_per_booking"

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// db
	InsertDispute(ctx context.Context, dispute entity.Dispute) (entity.Dispute, error)
	FindDisputeByID(ctx context.Context, disputeID uuid.UUID) (entity.Dispute, error)
	FindOpenDisputeByBookingID(ctx context.Context, bookingID uuid.UUID) (entity.Dispute, error)
	ResolveDispute(ctx context.Context, resolve entity.Resolve) (entity.Dispute, error)
	RecordRefundError(ctx context.Context, disputeID uuid.UUID, msg string) error
	MarkRefundPending(ctx context.Context, disputeID uuid.UUID, amount money.Amount) (entity.Dispute, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

const disputeColumns = `id, booking_id, initiator_id, reason, description, status, resolution, refund_amount,
	pending_refund_amount, last_refund_error, resolved_by, notes, created_at, updated_at, resolved_at`

// InsertDispute implements Repositories.
func (r *repositories) InsertDispute(ctx context.Context, dispute entity.Dispute) (entity.Dispute, error) {
	query := `INSERT INTO disputes (id, booking_id, initiator_id, reason, description, status)
		VALUES ($1, $2, $3, $4, $5, 'open')
		RETURNING ` + disputeColumns
	var inserted entity.Dispute
	err := database.Executor(ctx, r.db).GetContext(ctx, &inserted, query,
		dispute.ID, dispute.BookingID, dispute.InitiatorID, dispute.Reason, dispute.Description)
	if database.IsUniqueViolation(err, uniqueOpenDispute) {
		return entity.Dispute{}, errors.DuplicateDispute("booking already has an open dispute")
	}
	if err != nil {
		r.log.Error(ctx, "error insert dispute", err, zap.Stringer("booking_id", dispute.BookingID))
		return entity.Dispute{}, errors.InternalServerError("error insert dispute")
	}
	return inserted, nil
}

// FindDisputeByID implements Repositories.
func (r *repositories) FindDisputeByID(ctx context.Context, disputeID uuid.UUID) (entity.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE id = $1`
	var dispute entity.Dispute
	err := database.Executor(ctx, r.db).GetContext(ctx, &dispute, query, disputeID)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Dispute{}, errors.NotFound("dispute not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find dispute", err, zap.Stringer("dispute_id", disputeID))
		return entity.Dispute{}, errors.InternalServerError("error find dispute")
	}
	return dispute, nil
}

// FindOpenDisputeByBookingID implements Repositories.
func (r *repositories) FindOpenDisputeByBookingID(ctx context.Context, bookingID uuid.UUID) (entity.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE booking_id = $1 AND status = 'open'`
	var dispute entity.Dispute
	err := database.Executor(ctx, r.db).GetContext(ctx, &dispute, query, bookingID)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Dispute{}, errors.NotFound("no open dispute for booking")
	}
	if err != nil {
		r.log.Error(ctx, "error find open dispute", err, zap.Stringer("booking_id", bookingID))
		return entity.Dispute{}, errors.InternalServerError("error find open dispute")
	}
	return dispute, nil
}

// ResolveDispute implements Repositories. Only open disputes are resolved.
func (r *repositories) ResolveDispute(ctx context.Context, resolve entity.Resolve) (entity.Dispute, error) {
	query := `UPDATE disputes SET
			status = 'resolved',
			resolution = $2,
			refund_amount = $3,
			pending_refund_amount = 0,
			resolved_by = $4,
			notes = NULLIF($5, ''),
			resolved_at = NOW(),
			updated_at = NOW()
		WHERE id = $1 AND status = 'open'
		RETURNING ` + disputeColumns
	var refund *money.Amount
	if resolve.Resolution == entity.ResolutionApproved {
		refund = &resolve.RefundAmount
	}
	var dispute entity.Dispute
	err := database.Executor(ctx, r.db).GetContext(ctx, &dispute, query,
		resolve.DisputeID, resolve.Resolution, refund, resolve.ResolvedBy, resolve.Notes)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Dispute{}, errors.AlreadyResolved("dispute is already resolved")
	}
	if err != nil {
		r.log.Error(ctx, "error resolve dispute", err, zap.Stringer("dispute_id", resolve.DisputeID))
		return entity.Dispute{}, errors.InternalServerError("error resolve dispute")
	}
	return dispute, nil
}

// RecordRefundError implements Repositories.
func (r *repositories) RecordRefundError(ctx context.Context, disputeID uuid.UUID, msg string) error {
	query := `UPDATE disputes SET last_refund_error = $2, updated_at = NOW() WHERE id = $1 AND status = 'open'`
	if _, err := database.Executor(ctx, r.db).ExecContext(ctx, query, disputeID, msg); err != nil {
		r.log.Error(ctx, "error record refund error", err, zap.Stringer("dispute_id", disputeID))
		return errors.InternalServerError("error record refund error")
	}
	return nil
}

// MarkRefundPending implements Repositories.
func (r *repositories) MarkRefundPending(ctx context.Context, disputeID uuid.UUID, amount money.Amount) (entity.Dispute, error) {
	query := `UPDATE disputes SET pending_refund_amount = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'open'
		RETURNING ` + disputeColumns
	var dispute entity.Dispute
	err := database.Executor(ctx, r.db).GetContext(ctx, &dispute, query, disputeID, amount)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Dispute{}, errors.AlreadyResolved("dispute is already resolved")
	}
	if err != nil {
		r.log.Error(ctx, "error mark dispute refund pending", err, zap.Stringer("dispute_id", disputeID))
		return entity.Dispute{}, errors.InternalServerError("error mark dispute refund pending")
	}
	return dispute, nil
}
