package response

import (
	"time"

	"guide-booking-service/internal/pkg/money"
)

type Dispute struct {
	ID                  string        `json:"id"`
	BookingID           string        `json:"booking_id"`
	InitiatorID         string        `json:"initiator_id"`
	Reason              string        `json:"reason"`
	Description         string        `json:"description"`
	Status              string        `json:"status"`
	Resolution          *string       `json:"resolution"`
	RefundAmount        *money.Amount `json:"refund_amount"`
	PendingRefundAmount money.Amount  `json:"pending_refund_amount"`
	LastRefundError     *string       `json:"last_refund_error"`
	ResolvedBy          *string       `json:"resolved_by"`
	Notes               *string       `json:"notes"`
	CreatedAt           time.Time     `json:"created_at"`
	ResolvedAt          *time.Time    `json:"resolved_at"`
}

// Event is the payload of dispute.* messages.
type Event struct {
	DisputeID    string        `json:"dispute_id"`
	BookingID    string        `json:"booking_id"`
	Status       string        `json:"status"`
	Resolution   string        `json:"resolution,omitempty"`
	RefundAmount *money.Amount `json:"refund_amount,omitempty"`
	OccurredAt   time.Time     `json:"occurred_at"`
}
