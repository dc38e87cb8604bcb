package response

import (
	"time"

	"guide-booking-service/internal/pkg/money"
)

type Earning struct {
	ID             string       `json:"id"`
	BookingID      string       `json:"booking_id"`
	TripID         string       `json:"trip_id"`
	ReferrerID     string       `json:"referrer_id"`
	EarningsAmount money.Amount `json:"earnings_amount"`
	Status         string       `json:"status"`
	FailureReason  string       `json:"failure_reason,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	PaidAt         *time.Time   `json:"paid_at,omitempty"`
}

type Earnings struct {
	Earnings []Earning `json:"earnings"`
}

type PayoutBatch struct {
	Selected  int `json:"selected"`
	Published int `json:"published"`
}
