package request

import "guide-booking-service/internal/pkg/money"

// PayoutRequested is published on referral_payout_requested, one per earning.
type PayoutRequested struct {
	EarningID  string       `json:"earning_id"`
	BookingID  string       `json:"booking_id"`
	ReferrerID string       `json:"referrer_id"`
	Amount     money.Amount `json:"amount"`
	Currency   string       `json:"currency"`
}

// PayoutResult is consumed from referral_payout_result.
type PayoutResult struct {
	EarningID string `json:"earning_id" validate:"required,uuid"`
	Status    string `json:"status" validate:"required,oneof=paid failed"`
	Reason    string `json:"reason"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
