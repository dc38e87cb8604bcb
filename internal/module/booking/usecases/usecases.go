package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"guide-booking-service/internal/module/booking/domain"
	"guide-booking-service/internal/module/booking/models/entity"
	"guide-booking-service/internal/module/booking/models/request"
	"guide-booking-service/internal/module/booking/models/response"
	"guide-booking-service/internal/module/booking/repositories"
	referralEntity "guide-booking-service/internal/module/referral/models/entity"
	tripEntity "guide-booking-service/internal/module/trip/models/entity"
	"guide-booking-service/internal/pkg/cancellation"
	"guide-booking-service/internal/pkg/clock"
	"guide-booking-service/internal/pkg/database"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/helpers"
	"guide-booking-service/internal/pkg/ledger"
	"guide-booking-service/internal/pkg/log"
	"guide-booking-service/internal/pkg/messagestream"
	"guide-booking-service/internal/pkg/metrics"
	"guide-booking-service/internal/pkg/money"
	"guide-booking-service/internal/pkg/payment"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TripCatalog is the trip module's read and seat inventory surface.
type TripCatalog interface {
	GetTrip(ctx context.Context, tripID uuid.UUID) (tripEntity.Trip, error)
	GetTripDate(ctx context.Context, tripDateID uuid.UUID) (tripEntity.TripDate, error)
	Reserve(ctx context.Context, tripDateID uuid.UUID, count int) error
	Release(ctx context.Context, tripDateID uuid.UUID, count int) error
}

// ReferralLedger records referral earnings for paid bookings.
type ReferralLedger interface {
	CreateEarning(ctx context.Context, bookingID, tripID, referrerID uuid.UUID, total money.Amount, rate money.Bps) (referralEntity.Earning, error)
	CancelOnBookingCancellation(ctx context.Context, bookingID uuid.UUID) error
}

type Settlement struct {
	Rates    ledger.Rates
	Currency string
}

type usecase struct {
	repo       repositories.Repositories
	log        log.Logger
	trips      TripCatalog
	referrals  ReferralLedger
	payments   payment.Processor
	tx         database.Transactor
	publish    message.Publisher
	clock      clock.Clock
	settlement Settlement
}

type Usecase interface {
	// http
	CreateBooking(ctx context.Context, actor helpers.Actor, payload *request.CreateBooking) (response.Booking, error)
	Confirm(ctx context.Context, actor helpers.Actor, bookingID uuid.UUID) (response.Booking, error)
	Decline(ctx context.Context, actor helpers.Actor, bookingID uuid.UUID, payload *request.Decline) (response.Booking, error)
	Complete(ctx context.Context, actor helpers.Actor, bookingID uuid.UUID, payload *request.Complete) (response.Booking, error)
	Cancel(ctx context.Context, actor helpers.Actor, bookingID uuid.UUID, payload *request.Cancel) (response.Booking, error)
	Get(ctx context.Context, actor helpers.Actor, bookingID uuid.UUID) (response.Booking, error)
	List(ctx context.Context, actor helpers.Actor) (response.Bookings, error)
	// dispute settlement
	GetBooking(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error)
	PolicyRefund(ctx context.Context, booking entity.Booking) (money.Amount, error)
	MarkRefundPending(ctx context.Context, bookingID uuid.UUID, idempotencyKey string, amount money.Amount) (entity.Booking, error)
	ApplyDisputeRefund(ctx context.Context, refund entity.DisputeRefund) (entity.Booking, error)
}

func New(repo repositories.Repositories, log log.Logger, trips TripCatalog, referrals ReferralLedger,
	payments payment.Processor, tx database.Transactor, publish message.Publisher, clk clock.Clock, settlement Settlement) Usecase {
	return &usecase{
		repo:       repo,
		log:        log,
		trips:      trips,
		referrals:  referrals,
		payments:   payments,
		tx:         tx,
		publish:    publish,
		clock:      clk,
		settlement: settlement,
	}
}

func (u *usecase) CreateBooking(ctx context.Context, actor helpers.Actor, payload *request.CreateBooking) (response.Booking, error) {
	if !actor.Is(helpers.RoleCustomer) {
		return response.Booking{}, errors.Forbidden("only customers can create bookings")
	}

	tripID, err := uuid.Parse(payload.TripID)
	if err != nil {
		return response.Booking{}, errors.InvalidInput("invalid trip_id")
	}
	tripDateID, err := uuid.Parse(payload.TripDateID)
	if err != nil {
		return response.Booking{}, errors.InvalidInput("invalid trip_date_id")
	}

	var referrer uuid.NullUUID
	if payload.ReferrerID != "" {
		referrerID, err := uuid.Parse(payload.ReferrerID)
		if err != nil {
			return response.Booking{}, errors.InvalidInput("invalid referrer_id")
		}
		if referrerID == actor.ID {
			return response.Booking{}, errors.InvalidInput("customers cannot refer themselves")
		}
		referrer = uuid.NullUUID{UUID: referrerID, Valid: true}
	}

	trip, err := u.trips.GetTrip(ctx, tripID)
	if err != nil {
		return response.Booking{}, err
	}
	tripDate, err := u.trips.GetTripDate(ctx, tripDateID)
	if err != nil {
		return response.Booking{}, err
	}
	if tripDate.TripID != trip.ID {
		return response.Booking{}, errors.InvalidInput("trip date does not belong to trip")
	}
	if !tripDate.StartDate.After(u.clock.Now()) {
		return response.Booking{}, errors.InvalidInput("trip date has already started")
	}
	if payload.ParticipantCount < trip.MinGroupSize || payload.ParticipantCount > trip.MaxGroupSize {
		return response.Booking{}, errors.InvalidInput(fmt.Sprintf("participant count must be between %d and %d", trip.MinGroupSize, trip.MaxGroupSize))
	}

	unitPrice := tripDate.EffectivePrice(trip)
	split, err := ledger.ComputeSplit(unitPrice, payload.ParticipantCount, u.settlement.Rates)
	if err != nil {
		return response.Booking{}, err
	}

	booking := entity.Booking{
		ID:               uuid.New(),
		TripID:           trip.ID,
		TripDateID:       tripDate.ID,
		CustomerID:       actor.ID,
		ReferrerID:       referrer,
		ParticipantCount: payload.ParticipantCount,
		UnitPrice:        unitPrice,
		TotalPrice:       split.TotalPrice,
		CommissionAmount: split.Commission,
		HostingFee:       split.HostingFee,
		GuidePayout:      split.GuidePayout,
		Status:           domain.StatusPending,
		PaymentStatus:    domain.PaymentUnpaid,
	}

	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.trips.Reserve(ctx, booking.TripDateID, booking.ParticipantCount); err != nil {
			return err
		}
		inserted, err := u.repo.InsertBooking(ctx, booking)
		if err != nil {
			return err
		}
		booking = inserted
		return nil
	})
	if err != nil {
		return response.Booking{}, err
	}

	metrics.BookingsCreated.WithLabelValues(booking.Status.String()).Inc()
	u.log.Info(ctx, "booking created",
		zap.Stringer("booking_id", booking.ID),
		zap.Stringer("trip_date_id", booking.TripDateID),
		zap.Int("participants", booking.ParticipantCount),
		zap.Stringer("total_price", booking.TotalPrice))
	u.emit(ctx, messagestream.TopicBookingCreated, booking)

	if !trip.IsInstantBook {
		return toBookingResponse(booking), nil
	}

	confirmed, err := u.chargeAndConfirm(ctx, booking, trip)
	if err != nil {
		if errors.Is(err, errors.CodePaymentProcessor) && !payment.IsOutcomeUnknown(err) {
			if _, cancelErr := u.cancelAfterFailedCharge(ctx, booking.ID, actor.ID); cancelErr != nil {
				u.log.Error(ctx, "error cancel booking after failed charge", cancelErr, zap.Stringer("booking_id", booking.ID))
			}
		}
		return response.Booking{}, err
	}

	return toBookingResponse(confirmed), nil
}

func (u *usecase) Confirm(ctx context.Context, actor helpers.Actor, bookingID uuid.UUID) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	trip, err := u.authorizeGuide(ctx, actor, booking)
	if err != nil {
		return response.Booking{}, err
	}

	if !booking.Status.CanTransitionTo(domain.StatusConfirmed) {
		metrics.BookingTransitions.WithLabelValues(domain.StatusConfirmed.String(), "rejected").Inc()
		return response.Booking{}, errors.InvalidTransition(fmt.Sprintf("cannot confirm a %s booking", booking.Status))
	}

	confirmed, err := u.chargeAndConfirm(ctx, booking, trip)
	if err != nil {
		return response.Booking{}, err
	}

	return toBookingResponse(confirmed), nil
}

func (u *usecase) Decline(ctx context.Context, actor helpers.Actor, bookingID uuid.UUID, payload *request.Decline) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if _, err := u.authorizeGuide(ctx, actor, booking); err != nil {
		return response.Booking{}, err
	}

	if booking.Status != domain.StatusPending {
		metrics.BookingTransitions.WithLabelValues(domain.StatusCancelled.String(), "rejected").Inc()
		return response.Booking{}, errors.InvalidTransition(fmt.Sprintf("cannot decline a %s booking", booking.Status))
	}

	booking, err = u.resolvePendingCharge(ctx, booking)
	if err != nil {
		return response.Booking{}, err
	}

	reason := payload.Reason
	if reason == "" {
		reason = "declined by guide"
	}

	cancelled, err := u.cancelWithRefund(ctx, booking, actor.ID, reason, booking.Collected())
	if err != nil {
		return response.Booking{}, err
	}

	return toBookingResponse(cancelled), nil
}

func (u *usecase) Complete(ctx context.Context, actor helpers.Actor, bookingID uuid.UUID, payload *request.Complete) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if _, err := u.authorizeGuide(ctx, actor, booking); err != nil {
		return response.Booking{}, err
	}

	if !booking.Status.CanTransitionTo(domain.StatusCompleted) {
		metrics.BookingTransitions.WithLabelValues(domain.StatusCompleted.String(), "rejected").Inc()
		return response.Booking{}, errors.InvalidTransition(fmt.Sprintf("cannot complete a %s booking", booking.Status))
	}

	tripDate, err := u.trips.GetTripDate(ctx, booking.TripDateID)
	if err != nil {
		return response.Booking{}, err
	}
	if tripDate.EndDate.After(u.clock.Now()) && !payload.Override {
		return response.Booking{}, errors.InvalidTransition("trip date has not ended yet")
	}

	transition := entity.NewTransition(booking)
	transition.ToStatus = domain.StatusCompleted
	completed, err := u.repo.ApplyTransition(ctx, transition)
	if err != nil {
		return response.Booking{}, err
	}

	metrics.BookingTransitions.WithLabelValues(domain.StatusCompleted.String(), "success").Inc()
	u.emit(ctx, messagestream.TopicBookingCompleted, completed)
	return toBookingResponse(completed), nil
}

func (u *usecase) Cancel(ctx context.Context, actor helpers.Actor, bookingID uuid.UUID, payload *request.Cancel) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	switch {
	case actor.Is(helpers.RoleAdmin):
	case actor.Is(helpers.RoleCustomer) && booking.CustomerID == actor.ID:
	default:
		return response.Booking{}, errors.Forbidden("only the booking's customer or an admin can cancel")
	}

	if !booking.Status.CanTransitionTo(domain.StatusCancelled) {
		metrics.BookingTransitions.WithLabelValues(domain.StatusCancelled.String(), "rejected").Inc()
		return response.Booking{}, errors.InvalidTransition(fmt.Sprintf("cannot cancel a %s booking", booking.Status))
	}

	booking, err = u.resolvePendingCharge(ctx, booking)
	if err != nil {
		return response.Booking{}, err
	}

	refund, err := u.PolicyRefund(ctx, booking)
	if err != nil {
		return response.Booking{}, err
	}

	reason := payload.Reason
	if reason == "" {
		reason = fmt.Sprintf("cancelled by %s", actor.Role)
	}

	cancelled, err := u.cancelWithRefund(ctx, booking, actor.ID, reason, refund)
	if err != nil {
		return response.Booking{}, err
	}

	return toBookingResponse(cancelled), nil
}

func (u *usecase) Get(ctx context.Context, actor helpers.Actor, bookingID uuid.UUID) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if actor.Is(helpers.RoleCustomer) && booking.CustomerID == actor.ID {
		return toBookingResponse(booking), nil
	}
	if _, err := u.authorizeGuide(ctx, actor, booking); err != nil {
		return response.Booking{}, errors.Forbidden("booking is not visible to this user")
	}

	return toBookingResponse(booking), nil
}

func (u *usecase) List(ctx context.Context, actor helpers.Actor) (response.Bookings, error) {
	var (
		bookings []entity.Booking
		err      error
	)
	switch actor.Role {
	case helpers.RoleCustomer:
		bookings, err = u.repo.FindBookingsByCustomerID(ctx, actor.ID)
	case helpers.RoleGuide:
		bookings, err = u.repo.FindBookingsByGuideID(ctx, actor.ID)
	default:
		return response.Bookings{}, errors.Forbidden("bookings can only be listed by customers and guides")
	}
	if err != nil {
		return response.Bookings{}, err
	}

	resp := response.Bookings{Bookings: make([]response.Booking, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, toBookingResponse(b))
	}
	return resp, nil
}

func (u *usecase) GetBooking(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error) {
	return u.repo.FindBookingByID(ctx, bookingID)
}

// PolicyRefund is the cancellation policy amount for booking as of now.
func (u *usecase) PolicyRefund(ctx context.Context, booking entity.Booking) (money.Amount, error) {
	if !booking.PaymentStatus.HasCharge() {
		return 0, nil
	}

	tripDate, err := u.trips.GetTripDate(ctx, booking.TripDateID)
	if err != nil {
		return 0, err
	}

	days := cancellation.DaysUntil(tripDate.StartDate, u.clock.Now())
	return cancellation.Refund(booking.TotalPrice, booking.RefundedAmount, days), nil
}

func (u *usecase) MarkRefundPending(ctx context.Context, bookingID uuid.UUID, idempotencyKey string, amount money.Amount) (entity.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return entity.Booking{}, err
	}
	return u.markRefundPending(ctx, booking, idempotencyKey, amount)
}

func (u *usecase) ApplyDisputeRefund(ctx context.Context, refund entity.DisputeRefund) (entity.Booking, error) {
	var updated entity.Booking
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		booking, err := u.repo.FindBookingByID(ctx, refund.BookingID)
		if err != nil {
			return err
		}
		if err := checkPendingKey(booking, refund.IdempotencyKey); err != nil {
			return err
		}
		if refund.Amount > booking.Collected() {
			return errors.InvalidInput("refund exceeds the amount still collected")
		}

		transition := entity.NewTransition(booking)
		settleRefund(&transition, booking, refund.Amount)

		cancelBooking := booking.Status == domain.StatusConfirmed
		if cancelBooking {
			transition.ToStatus = domain.StatusCancelled
			transition.CancelledBy = uuid.NullUUID{UUID: refund.ResolvedBy, Valid: true}
			transition.CancellationReason = nullString("dispute approved")
		}

		updated, err = u.repo.ApplyTransition(ctx, transition)
		if err != nil {
			return err
		}

		if !cancelBooking {
			return nil
		}
		if err := u.trips.Release(ctx, booking.TripDateID, booking.ParticipantCount); err != nil {
			return err
		}
		return u.referrals.CancelOnBookingCancellation(ctx, booking.ID)
	})
	if err != nil {
		return entity.Booking{}, err
	}

	if updated.Status == domain.StatusCancelled {
		metrics.BookingTransitions.WithLabelValues(domain.StatusCancelled.String(), "success").Inc()
		u.emit(ctx, messagestream.TopicBookingCancelled, updated)
	}
	return updated, nil
}

// chargeAndConfirm charges a pending booking and moves it to confirmed/paid,
// creating the referral earning in the same transaction. The booking is marked
// charge_pending before the processor is called so an unknown outcome or a
// failed commit is never mistaken for an unpaid booking.
func (u *usecase) chargeAndConfirm(ctx context.Context, booking entity.Booking, trip tripEntity.Trip) (entity.Booking, error) {
	booking, err := u.markChargePending(ctx, booking)
	if err != nil {
		return entity.Booking{}, err
	}

	receipt, err := u.charge(ctx, booking)
	if err != nil {
		metrics.BookingTransitions.WithLabelValues(domain.StatusConfirmed.String(), "payment_failed").Inc()
		if payment.IsOutcomeUnknown(err) {
			return entity.Booking{}, fmt.Errorf("%w: %w", errors.PaymentProcessorError("charge outcome unknown, confirm again to retry"), err)
		}
		return entity.Booking{}, fmt.Errorf("%w: %w", errors.PaymentProcessorError("charge failed"), err)
	}

	transition := entity.NewTransition(booking)
	transition.ToStatus = domain.StatusConfirmed
	transition.ToPayment = domain.PaymentPaid
	transition.ChargeTransactionID = nullString(receipt.TransactionID)
	transition.LastPaymentError = sql.NullString{}

	var confirmed entity.Booking
	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		confirmed, err = u.repo.ApplyTransition(ctx, transition)
		if err != nil {
			return err
		}
		if !booking.ReferrerID.Valid || trip.ReferralPayoutBps == 0 {
			return nil
		}
		_, err = u.referrals.CreateEarning(ctx, booking.ID, booking.TripID, booking.ReferrerID.UUID, booking.TotalPrice, trip.ReferralPayoutBps)
		return err
	})
	if err != nil {
		// the booking stays charge_pending; a retry with the same key returns the same receipt
		u.log.Error(ctx, "error confirm charged booking", err,
			zap.Stringer("booking_id", booking.ID),
			zap.String("transaction_id", receipt.TransactionID))
		return entity.Booking{}, err
	}

	metrics.BookingTransitions.WithLabelValues(domain.StatusConfirmed.String(), "success").Inc()
	u.emit(ctx, messagestream.TopicBookingConfirmed, confirmed)
	return confirmed, nil
}

func (u *usecase) markChargePending(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	switch booking.PaymentStatus {
	case domain.PaymentChargePending:
		return booking, nil
	case domain.PaymentUnpaid:
	default:
		return entity.Booking{}, errors.InvalidTransition(fmt.Sprintf("cannot charge a %s booking", booking.PaymentStatus))
	}

	transition := entity.NewTransition(booking)
	transition.ToPayment = domain.PaymentChargePending
	return u.repo.ApplyTransition(ctx, transition)
}

// charge sends the booking's charge. A definite failure moves the booking
// back to unpaid; an unknown outcome leaves it charge_pending.
func (u *usecase) charge(ctx context.Context, booking entity.Booking) (payment.Receipt, error) {
	receipt, err := u.payments.Charge(ctx, payment.ChargeRequest{
		BookingID:      booking.ID,
		CustomerID:     booking.CustomerID,
		Amount:         booking.TotalPrice,
		Currency:       u.settlement.Currency,
		IdempotencyKey: payment.ChargeKey(booking.ID),
	})
	if err == nil {
		return receipt, nil
	}

	u.log.Error(ctx, "error charge booking", err, zap.Stringer("booking_id", booking.ID))
	if payment.IsOutcomeUnknown(err) {
		if recErr := u.repo.RecordPaymentError(ctx, booking.ID, err.Error()); recErr != nil {
			u.log.Warn(ctx, "error record payment error", recErr, zap.Stringer("booking_id", booking.ID))
		}
		return payment.Receipt{}, err
	}

	transition := entity.NewTransition(booking)
	transition.ToPayment = domain.PaymentUnpaid
	transition.LastPaymentError = nullString(err.Error())
	if _, revertErr := u.repo.ApplyTransition(ctx, transition); revertErr != nil {
		u.log.Error(ctx, "error revert charge pending", revertErr, zap.Stringer("booking_id", booking.ID))
	}
	return payment.Receipt{}, err
}

// resolvePendingCharge replays the charge of a charge_pending booking with the
// same idempotency key, so the booking is either paid or unpaid before it is
// cancelled. An outcome that is still unknown blocks the caller.
func (u *usecase) resolvePendingCharge(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	if booking.PaymentStatus != domain.PaymentChargePending {
		return booking, nil
	}

	receipt, err := u.charge(ctx, booking)
	if err != nil {
		if payment.IsOutcomeUnknown(err) {
			return entity.Booking{}, fmt.Errorf("%w: %w", errors.PaymentProcessorError("charge outcome still unknown, retry later"), err)
		}
		return u.repo.FindBookingByID(ctx, booking.ID)
	}

	transition := entity.NewTransition(booking)
	transition.ToPayment = domain.PaymentPaid
	transition.ChargeTransactionID = nullString(receipt.TransactionID)
	transition.LastPaymentError = sql.NullString{}
	return u.repo.ApplyTransition(ctx, transition)
}

// cancelAfterFailedCharge cancels an instant booking whose charge was declined.
func (u *usecase) cancelAfterFailedCharge(ctx context.Context, bookingID, by uuid.UUID) (entity.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return entity.Booking{}, err
	}
	return u.cancelUnpaid(ctx, booking, by, "instant booking charge failed")
}

// cancelUnpaid cancels a booking that never collected money.
func (u *usecase) cancelUnpaid(ctx context.Context, booking entity.Booking, by uuid.UUID, reason string) (entity.Booking, error) {
	return u.cancelWithRefund(ctx, booking, by, reason, 0)
}

// cancelWithRefund refunds amount first, then cancels the booking, releases
// its seats and cancels its referral earning in one transaction.
func (u *usecase) cancelWithRefund(ctx context.Context, booking entity.Booking, by uuid.UUID, reason string, amount money.Amount) (entity.Booking, error) {
	if booking.PaymentStatus == domain.PaymentChargePending {
		return entity.Booking{}, errors.InvalidTransition("a charge is pending on this booking")
	}
	key := payment.CancelRefundKey(booking.ID)
	if err := checkPendingKey(booking, key); err != nil {
		return entity.Booking{}, err
	}
	if booking.PaymentStatus == domain.PaymentRefundPending {
		amount = booking.PendingRefundAmount
	}

	if amount > 0 {
		if err := u.refund(ctx, booking, key, amount, reason); err != nil {
			return entity.Booking{}, err
		}
	}

	transition := entity.NewTransition(booking)
	transition.ToStatus = domain.StatusCancelled
	transition.CancelledBy = uuid.NullUUID{UUID: by, Valid: true}
	transition.CancellationReason = nullString(reason)
	settleRefund(&transition, booking, amount)

	var cancelled entity.Booking
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		cancelled, err = u.repo.ApplyTransition(ctx, transition)
		if err != nil {
			return err
		}
		if err := u.trips.Release(ctx, booking.TripDateID, booking.ParticipantCount); err != nil {
			return err
		}
		return u.referrals.CancelOnBookingCancellation(ctx, booking.ID)
	})
	if err != nil {
		metrics.BookingTransitions.WithLabelValues(domain.StatusCancelled.String(), "failed").Inc()
		return entity.Booking{}, err
	}

	metrics.BookingTransitions.WithLabelValues(domain.StatusCancelled.String(), "success").Inc()
	u.log.Info(ctx, "booking cancelled",
		zap.Stringer("booking_id", cancelled.ID),
		zap.Stringer("refund", amount),
		zap.String("reason", reason))
	u.emit(ctx, messagestream.TopicBookingCancelled, cancelled)
	return cancelled, nil
}

// refund sends a refund and keeps the booking retryable when the outcome is unknown.
func (u *usecase) refund(ctx context.Context, booking entity.Booking, key string, amount money.Amount, reason string) error {
	_, err := u.payments.Refund(ctx, payment.RefundRequest{
		BookingID:      booking.ID,
		Amount:         amount,
		Currency:       u.settlement.Currency,
		Reason:         reason,
		IdempotencyKey: key,
	})
	if err == nil {
		metrics.RefundsIssued.WithLabelValues("cancellation", "success").Inc()
		metrics.RefundedMinorUnits.Add(float64(amount))
		return nil
	}

	u.log.Error(ctx, "error refund booking", err, zap.Stringer("booking_id", booking.ID), zap.Stringer("amount", amount))
	if payment.IsOutcomeUnknown(err) {
		metrics.RefundsIssued.WithLabelValues("cancellation", "unknown").Inc()
		if _, markErr := u.markRefundPending(ctx, booking, key, amount); markErr != nil {
			u.log.Error(ctx, "error mark refund pending", markErr, zap.Stringer("booking_id", booking.ID))
		}
		return errors.PaymentProcessorError("refund outcome unknown, retry the cancellation")
	}

	metrics.RefundsIssued.WithLabelValues("cancellation", "failed").Inc()
	if recErr := u.repo.RecordPaymentError(ctx, booking.ID, err.Error()); recErr != nil {
		u.log.Warn(ctx, "error record payment error", recErr, zap.Stringer("booking_id", booking.ID))
	}
	return errors.PaymentProcessorError(fmt.Sprintf("refund failed: %v", err))
}

func (u *usecase) markRefundPending(ctx context.Context, booking entity.Booking, key string, amount money.Amount) (entity.Booking, error) {
	if err := checkPendingKey(booking, key); err != nil {
		return entity.Booking{}, err
	}
	if booking.PaymentStatus == domain.PaymentRefundPending {
		return booking, nil
	}
	if !booking.PaymentStatus.HasCharge() {
		return entity.Booking{}, errors.InvalidTransition("booking has no charge to refund")
	}

	transition := entity.NewTransition(booking)
	transition.ToPayment = domain.PaymentRefundPending
	transition.PendingRefundAmount = amount
	transition.PendingRefundKey = nullString(key)
	return u.repo.ApplyTransition(ctx, transition)
}

func (u *usecase) authorizeGuide(ctx context.Context, actor helpers.Actor, booking entity.Booking) (tripEntity.Trip, error) {
	trip, err := u.trips.GetTrip(ctx, booking.TripID)
	if err != nil {
		return tripEntity.Trip{}, err
	}
	if actor.Is(helpers.RoleAdmin) {
		return trip, nil
	}
	if !actor.Is(helpers.RoleGuide) || trip.GuideID != actor.ID {
		return tripEntity.Trip{}, errors.Forbidden("only the trip's guide can manage this booking")
	}
	return trip, nil
}

func (u *usecase) emit(ctx context.Context, topic string, booking entity.Booking) {
	event := response.Event{
		BookingID:     booking.ID.String(),
		TripID:        booking.TripID.String(),
		TripDateID:    booking.TripDateID.String(),
		CustomerID:    booking.CustomerID.String(),
		Status:        booking.Status.String(),
		PaymentStatus: booking.PaymentStatus.String(),
		TotalPrice:    booking.TotalPrice,
		Refunded:      booking.RefundedAmount,
		OccurredAt:    u.clock.Now(),
	}
	if err := messagestream.PublishJSON(ctx, u.publish, topic, event); err != nil {
		u.log.Warn(ctx, "error publish booking event", err, zap.String("topic", topic), zap.Stringer("booking_id", booking.ID))
	}
}

// checkPendingKey rejects a refund while a different refund is still unresolved.
func checkPendingKey(booking entity.Booking, key string) error {
	if booking.PaymentStatus == domain.PaymentRefundPending && booking.PendingRefundKey.String != key {
		return errors.InvalidTransition("another refund is pending on this booking")
	}
	return nil
}

// settleRefund records a confirmed refund of amount on the transition.
func settleRefund(t *entity.Transition, booking entity.Booking, amount money.Amount) {
	if amount > 0 {
		t.ToPayment = domain.PaymentRefunded
		t.RefundedAmount = booking.RefundedAmount + amount
	} else if booking.PaymentStatus == domain.PaymentRefundPending {
		t.ToPayment = domain.PaymentPaid
	}
	t.PendingRefundAmount = 0
	t.PendingRefundKey = sql.NullString{}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toBookingResponse(b entity.Booking) response.Booking {
	resp := response.Booking{
		ID:                  b.ID.String(),
		TripID:              b.TripID.String(),
		TripDateID:          b.TripDateID.String(),
		CustomerID:          b.CustomerID.String(),
		ParticipantCount:    b.ParticipantCount,
		UnitPrice:           b.UnitPrice,
		TotalPrice:          b.TotalPrice,
		CommissionAmount:    b.CommissionAmount,
		HostingFee:          b.HostingFee,
		GuidePayout:         b.GuidePayout,
		Status:              b.Status.String(),
		PaymentStatus:       b.PaymentStatus.String(),
		RefundedAmount:      b.RefundedAmount,
		PendingRefundAmount: b.PendingRefundAmount,
		CancellationReason:  b.CancellationReason.String,
		LastPaymentError:    b.LastPaymentError.String,
		CreatedAt:           b.CreatedAt,
		ConfirmedAt:         nullTime(b.ConfirmedAt),
		CompletedAt:         nullTime(b.CompletedAt),
		CancelledAt:         nullTime(b.CancelledAt),
	}
	if b.ReferrerID.Valid {
		referrer := b.ReferrerID.UUID.String()
		resp.ReferrerID = &referrer
	}
	return resp
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
