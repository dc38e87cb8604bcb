package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guide_booking_bookings_created_total",
		Help: "Bookings created, by initial status.",
	}, []string{"status"})

	BookingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guide_booking_booking_transitions_total",
		Help: "Booking status transitions, by target status and outcome.",
	}, []string{"to", "outcome"})

	SeatReservationsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guide_booking_seat_reservations_rejected_total",
		Help: "Seat reservations rejected for lack of spots.",
	})

	RefundsIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guide_booking_refunds_total",
		Help: "Refund attempts sent to the payment processor, by source and outcome.",
	}, []string{"source", "outcome"})

	RefundedMinorUnits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guide_booking_refunded_minor_units_total",
		Help: "Sum of successfully refunded amounts in minor currency units.",
	})

	EarningsTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guide_booking_referral_earnings_total",
		Help: "Referral earning status changes, by status.",
	}, []string{"status"})
)

var Disputes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "guide_booking_disputes_total",
	Help: "Dispute lifecycle events, by event.",
}, []string{"event"})
