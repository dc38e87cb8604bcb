package entity

import (
	"time"

	"guide-booking-service/internal/pkg/money"

	"github.com/google/uuid"
)

type Trip struct {
	ID                uuid.UUID    `db:"id"`
	GuideID           uuid.UUID    `db:"guide_id"`
	Title             string       `db:"title"`
	PricePerPerson    money.Amount `db:"price_per_person"`
	MinGroupSize      int          `db:"min_group_size"`
	MaxGroupSize      int          `db:"max_group_size"`
	ReferralPayoutBps money.Bps    `db:"referral_payout_bps"`
	IsInstantBook     bool         `db:"is_instant_book"`
	CreatedAt         time.Time    `db:"created_at"`
	UpdatedAt         time.Time    `db:"updated_at"`
}

type TripDate struct {
	ID             uuid.UUID     `db:"id"`
	TripID         uuid.UUID     `db:"trip_id"`
	StartDate      time.Time     `db:"start_date"`
	EndDate        time.Time     `db:"end_date"`
	SpotsTotal     int           `db:"spots_total"`
	SpotsAvailable int           `db:"spots_available"`
	PriceOverride  *money.Amount `db:"price_override"`
	IsAvailable    bool          `db:"is_available"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

// EffectivePrice is the per-person price for this date.
func (d TripDate) EffectivePrice(trip Trip) money.Amount {
	if d.PriceOverride != nil {
		return *d.PriceOverride
	}
	return trip.PricePerPerson
}
