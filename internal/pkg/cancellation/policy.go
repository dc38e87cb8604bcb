// Package cancellation maps the time left before a trip to a refund.
//
// Days are always measured from "now" to the trip start, for customer
// cancellations and dispute resolutions alike.
package cancellation

import (
	"math"
	"time"

	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/money"
)

const (
	fullRefundAfterDays = 7
	halfRefundAfterDays = 3
)

// DaysUntil is ceil((start - now) / 24h). It is negative once the trip started.
func DaysUntil(start, now time.Time) int {
	return int(math.Ceil(start.Sub(now).Hours() / 24))
}

// Percent returns the refundable share of the total for the given day count.
func Percent(daysUntilStart int) int {
	switch {
	case daysUntilStart > fullRefundAfterDays:
		return 100
	case daysUntilStart > halfRefundAfterDays:
		return 50
	default:
		return 0
	}
}

// Refund computes the policy refund, capped at what is still collected.
func Refund(total, alreadyRefunded money.Amount, daysUntilStart int) money.Amount {
	return Cap(total.Percent(Percent(daysUntilStart)), total, alreadyRefunded)
}

// Cap limits amount to total minus prior refunds, never below zero.
func Cap(amount, total, alreadyRefunded money.Amount) money.Amount {
	remaining := total - alreadyRefunded
	if remaining < 0 {
		remaining = 0
	}
	if amount < 0 {
		return 0
	}
	return amount.Min(remaining)
}

// ValidateOverride checks an admin-specified refund: 0 <= amount <= total.
func ValidateOverride(amount, total money.Amount) error {
	if amount < 0 || amount > total {
		return errors.InvalidInput("refund override must be between 0 and the booking total " + total.String())
	}
	return nil
}
