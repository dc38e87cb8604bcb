package response

import "guide-booking-service/internal/pkg/money"

type Trip struct {
	ID                    string       `json:"id"`
	GuideID               string       `json:"guide_id"`
	Title                 string       `json:"title"`
	PricePerPerson        money.Amount `json:"price_per_person"`
	MinGroupSize          int          `json:"min_group_size"`
	MaxGroupSize          int          `json:"max_group_size"`
	ReferralPayoutPercent float64      `json:"referral_payout_percent"`
	IsInstantBook         bool         `json:"is_instant_book"`
}

type Availability struct {
	TripDateID     string `json:"trip_date_id"`
	SpotsAvailable int    `json:"spots_available"`
	Cached         bool   `json:"cached"`
}
