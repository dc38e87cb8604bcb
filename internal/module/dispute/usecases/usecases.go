package usecases

import (
	"context"
	"fmt"

	"guide-booking-service/internal/module/booking/domain"
	bookingEntity "guide-booking-service/internal/module/booking/models/entity"
	"guide-booking-service/internal/module/dispute/models/entity"
	"guide-booking-service/internal/module/dispute/models/request"
	"guide-booking-service/internal/module/dispute/models/response"
	"guide-booking-service/internal/module/dispute/repositories"
	"guide-booking-service/internal/pkg/cancellation"
	"guide-booking-service/internal/pkg/clock"
	"guide-booking-service/internal/pkg/database"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/helpers"
	"guide-booking-service/internal/pkg/log"
	"guide-booking-service/internal/pkg/messagestream"
	"guide-booking-service/internal/pkg/metrics"
	"guide-booking-service/internal/pkg/money"
	"guide-booking-service/internal/pkg/payment"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingSettlement is the booking module's surface for settling disputes.
type BookingSettlement interface {
	GetBooking(ctx context.Context, bookingID uuid.UUID) (bookingEntity.Booking, error)
	PolicyRefund(ctx context.Context, booking bookingEntity.Booking) (money.Amount, error)
	MarkRefundPending(ctx context.Context, bookingID uuid.UUID, idempotencyKey string, amount money.Amount) (bookingEntity.Booking, error)
	ApplyDisputeRefund(ctx context.Context, refund bookingEntity.DisputeRefund) (bookingEntity.Booking, error)
}

type usecase struct {
	repo     repositories.Repositories
	log      log.Logger
	bookings BookingSettlement
	payments payment.Processor
	tx       database.Transactor
	publish  message.Publisher
	clock    clock.Clock
	currency string
}

type Usecase interface {
	// http
	OpenDispute(ctx context.Context, actor helpers.Actor, payload *request.OpenDispute) (response.Dispute, error)
	Resolve(ctx context.Context, actor helpers.Actor, disputeID uuid.UUID, payload *request.Resolve) (response.Dispute, error)
	Get(ctx context.Context, actor helpers.Actor, disputeID uuid.UUID) (response.Dispute, error)
}

func New(repo repositories.Repositories, log log.Logger, bookings BookingSettlement, payments payment.Processor,
	tx database.Transactor, publish message.Publisher, clk clock.Clock, currency string) Usecase {
	return &usecase{
		repo:     repo,
		log:      log,
		bookings: bookings,
		payments: payments,
		tx:       tx,
		publish:  publish,
		clock:    clk,
		currency: currency,
	}
}

func (u *usecase) OpenDispute(ctx context.Context, actor helpers.Actor, payload *request.OpenDispute) (response.Dispute, error) {
	if !actor.Is(helpers.RoleCustomer) {
		return response.Dispute{}, errors.Forbidden("only customers can open disputes")
	}

	bookingID, err := uuid.Parse(payload.BookingID)
	if err != nil {
		return response.Dispute{}, errors.InvalidInput("invalid booking_id")
	}
	reason := entity.Reason(payload.Reason)
	if !reason.IsValid() {
		return response.Dispute{}, errors.InvalidInput("invalid dispute reason")
	}

	booking, err := u.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return response.Dispute{}, err
	}
	if booking.CustomerID != actor.ID {
		return response.Dispute{}, errors.Forbidden("booking belongs to another customer")
	}
	if !booking.PaymentStatus.HasCharge() {
		return response.Dispute{}, errors.InvalidTransition("only paid bookings can be disputed")
	}

	_, err = u.repo.FindOpenDisputeByBookingID(ctx, bookingID)
	if err == nil {
		return response.Dispute{}, errors.DuplicateDispute("booking already has an open dispute")
	}
	if !errors.Is(err, errors.CodeNotFound) {
		return response.Dispute{}, err
	}

	dispute, err := u.repo.InsertDispute(ctx, entity.Dispute{
		ID:          uuid.New(),
		BookingID:   bookingID,
		InitiatorID: actor.ID,
		Reason:      reason,
		Description: payload.Description,
		Status:      entity.StatusOpen,
	})
	if err != nil {
		return response.Dispute{}, err
	}

	metrics.Disputes.WithLabelValues("opened").Inc()
	u.log.Info(ctx, "dispute opened",
		zap.Stringer("dispute_id", dispute.ID),
		zap.Stringer("booking_id", bookingID),
		zap.String("reason", string(reason)))
	u.emit(ctx, messagestream.TopicDisputeOpened, dispute)
	return toDisputeResponse(dispute), nil
}

func (u *usecase) Resolve(ctx context.Context, actor helpers.Actor, disputeID uuid.UUID, payload *request.Resolve) (response.Dispute, error) {
	if !actor.Is(helpers.RoleAdmin) {
		return response.Dispute{}, errors.Forbidden("only admins can resolve disputes")
	}

	dispute, err := u.repo.FindDisputeByID(ctx, disputeID)
	if err != nil {
		return response.Dispute{}, err
	}
	if !dispute.IsOpen() {
		return response.Dispute{}, errors.AlreadyResolved("dispute is already resolved")
	}

	var resolved entity.Dispute
	switch entity.Resolution(payload.Resolution) {
	case entity.ResolutionDenied:
		resolved, err = u.deny(ctx, actor, dispute, payload)
	case entity.ResolutionApproved:
		resolved, err = u.approve(ctx, actor, dispute, payload)
	default:
		return response.Dispute{}, errors.InvalidInput("resolution must be approved or denied")
	}
	if err != nil {
		return response.Dispute{}, err
	}

	metrics.Disputes.WithLabelValues(resolved.Resolution.String).Inc()
	u.log.Info(ctx, "dispute resolved",
		zap.Stringer("dispute_id", resolved.ID),
		zap.String("resolution", resolved.Resolution.String),
		zap.Stringer("refund", resolved.Refunded()))
	u.emit(ctx, messagestream.TopicDisputeResolved, resolved)
	return toDisputeResponse(resolved), nil
}

func (u *usecase) Get(ctx context.Context, actor helpers.Actor, disputeID uuid.UUID) (response.Dispute, error) {
	dispute, err := u.repo.FindDisputeByID(ctx, disputeID)
	if err != nil {
		return response.Dispute{}, err
	}
	if !actor.Is(helpers.RoleAdmin) && dispute.InitiatorID != actor.ID {
		return response.Dispute{}, errors.Forbidden("dispute belongs to another customer")
	}
	return toDisputeResponse(dispute), nil
}

// deny resolves the dispute without a refund. A refund already sent for it
// must be settled by retrying the approval first.
func (u *usecase) deny(ctx context.Context, actor helpers.Actor, dispute entity.Dispute, payload *request.Resolve) (entity.Dispute, error) {
	if dispute.PendingRefundAmount > 0 {
		return entity.Dispute{}, errors.InvalidTransition("a refund is pending on this dispute, retry the approval")
	}

	booking, err := u.bookings.GetBooking(ctx, dispute.BookingID)
	if err != nil {
		return entity.Dispute{}, err
	}
	if booking.PaymentStatus == domain.PaymentRefundPending && booking.PendingRefundKey.String == payment.DisputeRefundKey(dispute.ID) {
		return entity.Dispute{}, errors.InvalidTransition("a refund is pending on this dispute, retry the approval")
	}

	return u.repo.ResolveDispute(ctx, entity.Resolve{
		DisputeID:  dispute.ID,
		Resolution: entity.ResolutionDenied,
		ResolvedBy: actor.ID,
		Notes:      payload.Notes,
	})
}

// approve refunds the booking and resolves the dispute. The dispute stays
// open unless the processor confirmed the refund.
func (u *usecase) approve(ctx context.Context, actor helpers.Actor, dispute entity.Dispute, payload *request.Resolve) (entity.Dispute, error) {
	booking, err := u.bookings.GetBooking(ctx, dispute.BookingID)
	if err != nil {
		return entity.Dispute{}, err
	}

	key := payment.DisputeRefundKey(dispute.ID)
	if booking.PaymentStatus == domain.PaymentRefundPending && booking.PendingRefundKey.String != key {
		return entity.Dispute{}, errors.InvalidTransition("another refund is pending on this booking")
	}

	amount, err := u.refundAmount(ctx, dispute, booking, payload)
	if err != nil {
		return entity.Dispute{}, err
	}

	if amount > 0 {
		if err := u.refund(ctx, dispute, booking, key, amount); err != nil {
			return entity.Dispute{}, err
		}
	}

	var resolved entity.Dispute
	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := u.bookings.ApplyDisputeRefund(ctx, bookingEntity.DisputeRefund{
			BookingID:      booking.ID,
			ResolvedBy:     actor.ID,
			IdempotencyKey: key,
			Amount:         amount,
		})
		if err != nil {
			return err
		}

		resolved, err = u.repo.ResolveDispute(ctx, entity.Resolve{
			DisputeID:    dispute.ID,
			Resolution:   entity.ResolutionApproved,
			RefundAmount: amount,
			ResolvedBy:   actor.ID,
			Notes:        payload.Notes,
		})
		return err
	})
	if err != nil {
		u.log.Error(ctx, "error settle approved dispute", err,
			zap.Stringer("dispute_id", dispute.ID),
			zap.Stringer("booking_id", booking.ID),
			zap.Stringer("refund", amount))
		return entity.Dispute{}, err
	}
	return resolved, nil
}

// refundAmount picks the pending amount on a retry, otherwise the override or
// the policy amount, capped at what is still collected.
func (u *usecase) refundAmount(ctx context.Context, dispute entity.Dispute, booking bookingEntity.Booking, payload *request.Resolve) (money.Amount, error) {
	if dispute.PendingRefundAmount > 0 {
		return dispute.PendingRefundAmount, nil
	}

	if payload.RefundAmount != nil {
		if err := cancellation.ValidateOverride(*payload.RefundAmount, booking.TotalPrice); err != nil {
			return 0, err
		}
		return payload.RefundAmount.Min(booking.Collected()), nil
	}

	amount, err := u.bookings.PolicyRefund(ctx, booking)
	if err != nil {
		return 0, err
	}
	return amount.Min(booking.Collected()), nil
}

func (u *usecase) refund(ctx context.Context, dispute entity.Dispute, booking bookingEntity.Booking, key string, amount money.Amount) error {
	_, err := u.payments.Refund(ctx, payment.RefundRequest{
		BookingID:      booking.ID,
		Amount:         amount,
		Currency:       u.currency,
		Reason:         "dispute approved",
		IdempotencyKey: key,
	})
	if err == nil {
		metrics.RefundsIssued.WithLabelValues("dispute", "success").Inc()
		metrics.RefundedMinorUnits.Add(float64(amount))
		return nil
	}

	u.log.Error(ctx, "error refund dispute", err, zap.Stringer("dispute_id", dispute.ID), zap.Stringer("amount", amount))
	if payment.IsOutcomeUnknown(err) {
		metrics.RefundsIssued.WithLabelValues("dispute", "unknown").Inc()
		if _, markErr := u.bookings.MarkRefundPending(ctx, booking.ID, key, amount); markErr != nil {
			u.log.Error(ctx, "error mark booking refund pending", markErr, zap.Stringer("booking_id", booking.ID))
		}
		if _, markErr := u.repo.MarkRefundPending(ctx, dispute.ID, amount); markErr != nil {
			u.log.Error(ctx, "error mark dispute refund pending", markErr, zap.Stringer("dispute_id", dispute.ID))
		}
		return errors.PaymentProcessorError("refund outcome unknown, retry the resolution")
	}

	metrics.RefundsIssued.WithLabelValues("dispute", "failed").Inc()
	if recErr := u.repo.RecordRefundError(ctx, dispute.ID, err.Error()); recErr != nil {
		u.log.Warn(ctx, "error record refund error", recErr, zap.Stringer("dispute_id", dispute.ID))
	}
	return errors.PaymentProcessorError(fmt.Sprintf("refund failed: %v", err))
}

func (u *usecase) emit(ctx context.Context, topic string, dispute entity.Dispute) {
	event := response.Event{
		DisputeID:    dispute.ID.String(),
		BookingID:    dispute.BookingID.String(),
		Status:       string(dispute.Status),
		Resolution:   dispute.Resolution.String,
		RefundAmount: dispute.RefundAmount,
		OccurredAt:   u.clock.Now(),
	}
	if err := messagestream.PublishJSON(ctx, u.publish, topic, event); err != nil {
		u.log.Warn(ctx, "error publish dispute event", err, zap.String("topic", topic), zap.Stringer("dispute_id", dispute.ID))
	}
}

func toDisputeResponse(d entity.Dispute) response.Dispute {
	resp := response.Dispute{
		ID:                  d.ID.String(),
		BookingID:           d.BookingID.String(),
		InitiatorID:         d.InitiatorID.String(),
		Reason:              string(d.Reason),
		Description:         d.Description,
		Status:              string(d.Status),
		Resolution:          nullString(d.Resolution.String, d.Resolution.Valid),
		RefundAmount:        d.RefundAmount,
		PendingRefundAmount: d.PendingRefundAmount,
		LastRefundError:     nullString(d.LastRefundError.String, d.LastRefundError.Valid),
		Notes:               nullString(d.Notes.String, d.Notes.Valid),
		CreatedAt:           d.CreatedAt,
	}
	if d.ResolvedBy.Valid {
		resp.ResolvedBy = nullString(d.ResolvedBy.UUID.String(), true)
	}
	if d.ResolvedAt.Valid {
		resolvedAt := d.ResolvedAt.Time
		resp.ResolvedAt = &resolvedAt
	}
	return resp
}

func nullString(s string, valid bool) *string {
	if !valid {
		return nil
	}
	return &s
}
