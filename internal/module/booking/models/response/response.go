package response

import (
	"time"

	"guide-booking-service/internal/pkg/money"
)

type Booking struct {
	ID                  string       `json:"id"`
	TripID              string       `json:"trip_id"`
	TripDateID          string       `json:"trip_date_id"`
	CustomerID          string       `json:"customer_id"`
	ReferrerID          *string      `json:"referrer_id"`
	ParticipantCount    int          `json:"participant_count"`
	UnitPrice           money.Amount `json:"unit_price"`
	TotalPrice          money.Amount `json:"total_price"`
	CommissionAmount    money.Amount `json:"commission_amount"`
	HostingFee          money.Amount `json:"hosting_fee"`
	GuidePayout         money.Amount `json:"guide_payout"`
	Status              string       `json:"status"`
	PaymentStatus       string       `json:"payment_status"`
	RefundedAmount      money.Amount `json:"refunded_amount"`
	PendingRefundAmount money.Amount `json:"pending_refund_amount,omitempty"`
	CancellationReason  string       `json:"cancellation_reason,omitempty"`
	LastPaymentError    string       `json:"last_payment_error,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	ConfirmedAt         *time.Time   `json:"confirmed_at,omitempty"`
	CompletedAt         *time.Time   `json:"completed_at,omitempty"`
	CancelledAt         *time.Time   `json:"cancelled_at,omitempty"`
}

type Bookings struct {
	Bookings []Booking `json:"bookings"`
}

// Event is the payload published on booking.* topics.
type Event struct {
	BookingID     string       `json:"booking_id"`
	TripID        string       `json:"trip_id"`
	TripDateID    string       `json:"trip_date_id"`
	CustomerID    string       `json:"customer_id"`
	Status        string       `json:"status"`
	PaymentStatus string       `json:"payment_status"`
	TotalPrice    money.Amount `json:"total_price"`
	Refunded      money.Amount `json:"refunded_amount"`
	OccurredAt    time.Time    `json:"occurred_at"`
}
