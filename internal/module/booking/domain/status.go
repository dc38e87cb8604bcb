package domain

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// HoldsSeats reports whether bookings in this status count against a date's spots.
func (s Status) HoldsSeats() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCompleted
}

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	// PaymentChargePending is set before a charge is sent and kept while its
	// outcome is unknown. The charge must be replayed before the booking is
	// confirmed or cancelled.
	PaymentChargePending PaymentStatus = "charge_pending"
	PaymentPaid          PaymentStatus = "paid"
	// PaymentRefundPending is set when a refund was sent but its outcome is
	// unknown. The same refund must be retried before anything else.
	PaymentRefundPending PaymentStatus = "refund_pending"
	PaymentRefunded      PaymentStatus = "refunded"
)

// HasCharge reports whether money was collected for the booking.
func (p PaymentStatus) HasCharge() bool {
	return p == PaymentPaid || p == PaymentRefundPending || p == PaymentRefunded
}

func (p PaymentStatus) String() string {
	return string(p)
}
