// Package payment is the boundary to the external payment gateway. The core
// only ever talks to it through Processor.
package payment

import (
	"context"
	"errors"

	"guide-booking-service/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	// ErrDeclined means the gateway rejected the request; nothing moved.
	ErrDeclined = errors.New("payment declined")
	// ErrUnavailable means the request never reached the gateway.
	ErrUnavailable = errors.New("payment gateway unavailable")
	// ErrOutcomeUnknown means the request may or may not have been applied,
	// typically a timeout. Retry with the same idempotency key.
	ErrOutcomeUnknown = errors.New("payment outcome unknown")
)

type ChargeRequest struct {
	BookingID      uuid.UUID    `json:"booking_id"`
	CustomerID     uuid.UUID    `json:"customer_id"`
	Amount         money.Amount `json:"amount"`
	Currency       string       `json:"currency"`
	IdempotencyKey string       `json:"-"`
}

type RefundRequest struct {
	BookingID      uuid.UUID    `json:"booking_id"`
	Amount         money.Amount `json:"amount"`
	Currency       string       `json:"currency"`
	Reason         string       `json:"reason"`
	IdempotencyKey string       `json:"-"`
}

type Receipt struct {
	TransactionID string       `json:"transaction_id"`
	Amount        money.Amount `json:"amount"`
}

type Processor interface {
	Charge(ctx context.Context, req ChargeRequest) (Receipt, error)
	Refund(ctx context.Context, req RefundRequest) (Receipt, error)
}

func ChargeKey(bookingID uuid.UUID) string {
	return "charge:" + bookingID.String()
}

func CancelRefundKey(bookingID uuid.UUID) string {
	return "cancel-refund:" + bookingID.String()
}

func DisputeRefundKey(disputeID uuid.UUID) string {
	return "dispute-refund:" + disputeID.String()
}

// IsOutcomeUnknown reports whether a retry is needed to learn the result.
func IsOutcomeUnknown(err error) bool {
	return errors.Is(err, ErrOutcomeUnknown)
}
