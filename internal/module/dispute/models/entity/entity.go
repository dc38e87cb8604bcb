package entity

import (
	"database/sql"
	"time"

	"guide-booking-service/internal/pkg/money"

	"github.com/google/uuid"
)

type Reason string

const (
	ReasonNotAsDescribed Reason = "not_as_described"
	ReasonGuideNoShow    Reason = "guide_no_show"
	ReasonSafetyConcern  Reason = "safety_concern"
	ReasonBillingError   Reason = "billing_error"
	ReasonOther          Reason = "other"
)

func (r Reason) IsValid() bool {
	switch r {
	case ReasonNotAsDescribed, ReasonGuideNoShow, ReasonSafetyConcern, ReasonBillingError, ReasonOther:
		return true
	}
	return false
}

type Status string

const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
)

type Resolution string

const (
	ResolutionApproved Resolution = "approved"
	ResolutionDenied   Resolution = "denied"
)

type Dispute struct {
	ID                  uuid.UUID      `db:"id"`
	BookingID           uuid.UUID      `db:"booking_id"`
	InitiatorID         uuid.UUID      `db:"initiator_id"`
	Reason              Reason         `db:"reason"`
	Description         string         `db:"description"`
	Status              Status         `db:"status"`
	Resolution          sql.NullString `db:"resolution"`
	RefundAmount        *money.Amount  `db:"refund_amount"`
	PendingRefundAmount money.Amount   `db:"pending_refund_amount"`
	LastRefundError     sql.NullString `db:"last_refund_error"`
	ResolvedBy          uuid.NullUUID  `db:"resolved_by"`
	Notes               sql.NullString `db:"notes"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
	ResolvedAt          sql.NullTime   `db:"resolved_at"`
}

func (d Dispute) IsOpen() bool {
	return d.Status == StatusOpen
}

// Refunded is the amount refunded on approval, zero otherwise.
func (d Dispute) Refunded() money.Amount {
	if d.RefundAmount == nil {
		return 0
	}
	return *d.RefundAmount
}

// Resolve is the terminal write applied to an open dispute. RefundAmount is
// only stored for approvals.
type Resolve struct {
	DisputeID    uuid.UUID
	Resolution   Resolution
	RefundAmount money.Amount
	ResolvedBy   uuid.UUID
	Notes        string
}
