package entity

import (
	"database/sql"
	"time"

	"guide-booking-service/internal/module/booking/domain"
	"guide-booking-service/internal/pkg/money"

	"github.com/google/uuid"
)

// Booking money columns are fixed at creation and never recomputed.
type Booking struct {
	ID                  uuid.UUID            `db:"id"`
	TripID              uuid.UUID            `db:"trip_id"`
	TripDateID          uuid.UUID            `db:"trip_date_id"`
	CustomerID          uuid.UUID            `db:"customer_id"`
	ReferrerID          uuid.NullUUID        `db:"referrer_id"`
	ParticipantCount    int                  `db:"participant_count"`
	UnitPrice           money.Amount         `db:"unit_price"`
	TotalPrice          money.Amount         `db:"total_price"`
	CommissionAmount    money.Amount         `db:"commission_amount"`
	HostingFee          money.Amount         `db:"hosting_fee"`
	GuidePayout         money.Amount         `db:"guide_payout"`
	Status              domain.Status        `db:"status"`
	PaymentStatus       domain.PaymentStatus `db:"payment_status"`
	RefundedAmount      money.Amount         `db:"refunded_amount"`
	PendingRefundAmount money.Amount         `db:"pending_refund_amount"`
	PendingRefundKey    sql.NullString       `db:"pending_refund_key"`
	ChargeTransactionID sql.NullString       `db:"charge_transaction_id"`
	CancelledBy         uuid.NullUUID        `db:"cancelled_by"`
	CancellationReason  sql.NullString       `db:"cancellation_reason"`
	LastPaymentError    sql.NullString       `db:"last_payment_error"`
	CreatedAt           time.Time            `db:"created_at"`
	UpdatedAt           time.Time            `db:"updated_at"`
	ConfirmedAt         sql.NullTime         `db:"confirmed_at"`
	CompletedAt         sql.NullTime         `db:"completed_at"`
	CancelledAt         sql.NullTime         `db:"cancelled_at"`
}

// Collected is what the customer paid and has not been refunded.
func (b Booking) Collected() money.Amount {
	if !b.PaymentStatus.HasCharge() {
		return 0
	}
	return b.TotalPrice - b.RefundedAmount
}

// Transition is one optimistic state write. It only applies while the row
// still has FromStatus and FromPayment.
type Transition struct {
	BookingID           uuid.UUID
	FromStatus          domain.Status
	FromPayment         domain.PaymentStatus
	ToStatus            domain.Status
	ToPayment           domain.PaymentStatus
	RefundedAmount      money.Amount
	PendingRefundAmount money.Amount
	PendingRefundKey    sql.NullString
	ChargeTransactionID sql.NullString
	CancelledBy         uuid.NullUUID
	CancellationReason  sql.NullString
	LastPaymentError    sql.NullString
}

// NewTransition starts a write that keeps every field of b as it is.
func NewTransition(b Booking) Transition {
	return Transition{
		BookingID:           b.ID,
		FromStatus:          b.Status,
		FromPayment:         b.PaymentStatus,
		ToStatus:            b.Status,
		ToPayment:           b.PaymentStatus,
		RefundedAmount:      b.RefundedAmount,
		PendingRefundAmount: b.PendingRefundAmount,
		PendingRefundKey:    b.PendingRefundKey,
		ChargeTransactionID: b.ChargeTransactionID,
		CancelledBy:         b.CancelledBy,
		CancellationReason:  b.CancellationReason,
		LastPaymentError:    b.LastPaymentError,
	}
}

// DisputeRefund settles an approved dispute against its booking.
type DisputeRefund struct {
	BookingID      uuid.UUID
	ResolvedBy     uuid.UUID
	IdempotencyKey string
	Amount         money.Amount
}
