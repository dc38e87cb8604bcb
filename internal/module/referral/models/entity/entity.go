package entity

import (
	"database/sql"
	"time"

	"guide-booking-service/internal/pkg/money"

	"github.com/google/uuid"
)

type EarningStatus string

const (
	EarningPending   EarningStatus = "pending"
	EarningPaid      EarningStatus = "paid"
	EarningFailed    EarningStatus = "failed"
	EarningCancelled EarningStatus = "cancelled"
)

var earningTransitions = map[EarningStatus][]EarningStatus{
	EarningPending:   {EarningPaid, EarningFailed, EarningCancelled},
	EarningFailed:    {EarningCancelled},
	EarningPaid:      {},
	EarningCancelled: {},
}

func (s EarningStatus) CanTransitionTo(target EarningStatus) bool {
	for _, t := range earningTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s EarningStatus) String() string {
	return string(s)
}

type Earning struct {
	ID                uuid.UUID      `db:"id"`
	BookingID         uuid.UUID      `db:"booking_id"`
	TripID            uuid.UUID      `db:"trip_id"`
	ReferrerID        uuid.UUID      `db:"referrer_id"`
	EarningsAmount    money.Amount   `db:"earnings_amount"`
	Status            EarningStatus  `db:"status"`
	FailureReason     sql.NullString `db:"failure_reason"`
	PayoutRequestedAt sql.NullTime   `db:"payout_requested_at"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	PaidAt            sql.NullTime   `db:"paid_at"`
}
