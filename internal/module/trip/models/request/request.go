package request

type ReferralSettings struct {
	ReferralPayoutPercent *float64 `json:"referral_payout_percent" validate:"required"`
}
