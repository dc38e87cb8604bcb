package request

import "guide-booking-service/internal/pkg/money"

type OpenDispute struct {
	BookingID   string `json:"booking_id" validate:"required,uuid"`
	Reason      string `json:"reason" validate:"required,oneof=not_as_described guide_no_show safety_concern billing_error other"`
	Description string `json:"description" validate:"max=2000"`
}

// Resolve carries an admin decision. RefundAmount overrides the policy
// amount when set.
type Resolve struct {
	Resolution   string        `json:"resolution" validate:"required,oneof=approved denied"`
	RefundAmount *money.Amount `json:"refund_amount"`
	Notes        string        `json:"notes" validate:"max=2000"`
}
