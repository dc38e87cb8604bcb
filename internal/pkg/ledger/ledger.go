// Package ledger holds the settlement arithmetic for a booking: how the
// collected total is split between the platform, the guide and a referrer.
package ledger

import (
	"fmt"

	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/money"
)

// Rates are the platform's take on a booking.
type Rates struct {
	Commission money.Bps
	HostingFee money.Amount
}

// DefaultRates is 12% commission plus a flat 1.00 hosting fee.
var DefaultRates = Rates{
	Commission: 1200,
	HostingFee: money.FromMajor(1),
}

type Split struct {
	TotalPrice  money.Amount `json:"total_price"`
	Commission  money.Amount `json:"commission_amount"`
	HostingFee  money.Amount `json:"hosting_fee"`
	GuidePayout money.Amount `json:"guide_payout"`
}

// Reconciles reports whether the parts add up to the total exactly.
func (s Split) Reconciles() bool {
	return s.Commission+s.HostingFee+s.GuidePayout == s.TotalPrice
}

// ComputeSplit prices a booking. Rounding happens once, on the commission of
// the total, never per participant.
func ComputeSplit(price money.Amount, participantCount int, rates Rates) (Split, error) {
	if price.IsNegative() {
		return Split{}, errors.InvalidInput("price must not be negative")
	}
	if participantCount < 1 {
		return Split{}, errors.InvalidInput("participant count must be at least 1")
	}
	if rates.Commission < 0 || rates.Commission > 10000 || rates.HostingFee.IsNegative() {
		return Split{}, errors.InvalidInput("invalid settlement rates")
	}

	total := price.MulInt(participantCount)
	commission := total.ApplyBps(rates.Commission)
	payout := total - commission - rates.HostingFee
	if payout.IsNegative() {
		return Split{}, errors.InvalidInput(fmt.Sprintf("total %s does not cover commission %s and hosting fee %s", total, commission, rates.HostingFee))
	}

	return Split{
		TotalPrice:  total,
		Commission:  commission,
		HostingFee:  rates.HostingFee,
		GuidePayout: payout,
	}, nil
}

// MaxReferralBps is the highest referral payout a guide may configure (2.0%).
const MaxReferralBps money.Bps = 200

// ReferralAmount is what a referrer earns on a booking total.
func ReferralAmount(total money.Amount, rate money.Bps) money.Amount {
	return total.ApplyBps(rate)
}
