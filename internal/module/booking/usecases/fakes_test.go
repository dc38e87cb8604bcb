package usecases_test

import (
	"context"
	"sync"
	"time"

	"guide-booking-service/internal/module/booking/domain"
	"guide-booking-service/internal/module/booking/models/entity"
	tripEntity "guide-booking-service/internal/module/trip/models/entity"
	"guide-booking-service/internal/pkg/errors"

	"github.com/google/uuid"
)

// bookingStore keeps bookings in memory and applies transitions with the
// same status guard as the SQL repository.
type bookingStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]entity.Booking
	now  time.Time
}

func newBookingStore(now time.Time) *bookingStore {
	return &bookingStore{rows: map[uuid.UUID]entity.Booking{}, now: now}
}

func (s *bookingStore) InsertBooking(_ context.Context, b entity.Booking) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.CreatedAt = s.now
	b.UpdatedAt = s.now
	s.rows[b.ID] = b
	return b, nil
}

func (s *bookingStore) FindBookingByID(_ context.Context, id uuid.UUID) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.rows[id]
	if !ok {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	return b, nil
}

func (s *bookingStore) FindBookingsByCustomerID(_ context.Context, customerID uuid.UUID) ([]entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Booking
	for _, b := range s.rows {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *bookingStore) FindBookingsByGuideID(context.Context, uuid.UUID) ([]entity.Booking, error) {
	return nil, nil
}

func (s *bookingStore) ApplyTransition(_ context.Context, t entity.Transition) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.rows[t.BookingID]
	if !ok || b.Status != t.FromStatus || b.PaymentStatus != t.FromPayment {
		return entity.Booking{}, errors.InvalidTransition("booking was modified concurrently, reload and retry")
	}
	if t.ToStatus != b.Status {
		switch t.ToStatus {
		case domain.StatusConfirmed:
			b.ConfirmedAt.Time, b.ConfirmedAt.Valid = s.now, true
		case domain.StatusCompleted:
			b.CompletedAt.Time, b.CompletedAt.Valid = s.now, true
		case domain.StatusCancelled:
			b.CancelledAt.Time, b.CancelledAt.Valid = s.now, true
		}
	}
	b.Status = t.ToStatus
	b.PaymentStatus = t.ToPayment
	b.RefundedAmount = t.RefundedAmount
	b.PendingRefundAmount = t.PendingRefundAmount
	b.PendingRefundKey = t.PendingRefundKey
	b.ChargeTransactionID = t.ChargeTransactionID
	b.CancelledBy = t.CancelledBy
	b.CancellationReason = t.CancellationReason
	b.LastPaymentError = t.LastPaymentError
	b.UpdatedAt = s.now
	s.rows[b.ID] = b
	return b, nil
}

func (s *bookingStore) RecordPaymentError(_ context.Context, id uuid.UUID, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.rows[id]
	b.LastPaymentError.String, b.LastPaymentError.Valid = message, true
	s.rows[id] = b
	return nil
}

func (s *bookingStore) get(id uuid.UUID) entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows[id]
}

func (s *bookingStore) all() []entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Booking, 0, len(s.rows))
	for _, b := range s.rows {
		out = append(out, b)
	}
	return out
}

// catalog is a single-trip seat inventory guarded by a mutex.
type catalog struct {
	mu    sync.Mutex
	trip  tripEntity.Trip
	dates map[uuid.UUID]tripEntity.TripDate
}

func (c *catalog) GetTrip(_ context.Context, id uuid.UUID) (tripEntity.Trip, error) {
	if id != c.trip.ID {
		return tripEntity.Trip{}, errors.NotFound("trip not found")
	}
	return c.trip, nil
}

func (c *catalog) GetTripDate(_ context.Context, id uuid.UUID) (tripEntity.TripDate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.dates[id]
	if !ok {
		return tripEntity.TripDate{}, errors.NotFound("trip date not found")
	}
	return d, nil
}

func (c *catalog) Reserve(_ context.Context, id uuid.UUID, count int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.dates[id]
	if !ok {
		return errors.NotFound("trip date not found")
	}
	if d.SpotsAvailable < count {
		return errors.InsufficientSpots("not enough spots")
	}
	d.SpotsAvailable -= count
	c.dates[id] = d
	return nil
}

func (c *catalog) Release(_ context.Context, id uuid.UUID, count int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.dates[id]
	if d.SpotsAvailable+count > d.SpotsTotal {
		return errors.DataIntegrity("seat release would exceed spots total")
	}
	d.SpotsAvailable += count
	c.dates[id] = d
	return nil
}

func (c *catalog) spots(id uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dates[id].SpotsAvailable
}

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
