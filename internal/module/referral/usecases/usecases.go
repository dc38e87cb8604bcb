package usecases

import (
	"context"
	goerrors "errors"
	"fmt"

	"guide-booking-service/internal/module/referral/models/entity"
	"guide-booking-service/internal/module/referral/models/request"
	"guide-booking-service/internal/module/referral/models/response"
	"guide-booking-service/internal/module/referral/repositories"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/helpers"
	"guide-booking-service/internal/pkg/ledger"
	"guide-booking-service/internal/pkg/lock"
	"guide-booking-service/internal/pkg/log"
	"guide-booking-service/internal/pkg/messagestream"
	"guide-booking-service/internal/pkg/metrics"
	"guide-booking-service/internal/pkg/money"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const payoutBatchLock = "lock:referral:payout_batch"

type PayoutConfig struct {
	BatchSize int
	Currency  string
}

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	locker  lock.Locker
	payout  PayoutConfig
}

type Usecase interface {
	// booking settlement
	CreateEarning(ctx context.Context, bookingID, tripID, referrerID uuid.UUID, total money.Amount, rate money.Bps) (entity.Earning, error)
	CancelOnBookingCancellation(ctx context.Context, bookingID uuid.UUID) error
	// payouts
	MarkPaid(ctx context.Context, earningID uuid.UUID) (entity.Earning, error)
	MarkFailed(ctx context.Context, earningID uuid.UUID, reason string) (entity.Earning, error)
	RunPayoutBatch(ctx context.Context) (response.PayoutBatch, error)
	ApplyPayoutResult(ctx context.Context, payload *request.PayoutResult) error
	// http
	ListEarnings(ctx context.Context, actor helpers.Actor) (response.Earnings, error)
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, locker lock.Locker, payout PayoutConfig) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		locker:  locker,
		payout:  payout,
	}
}

// CreateEarning records the referrer's share of a paid booking. A zero rate,
// or a share that rounds to zero, records nothing.
func (u *usecase) CreateEarning(ctx context.Context, bookingID, tripID, referrerID uuid.UUID, total money.Amount, rate money.Bps) (entity.Earning, error) {
	if rate < 0 || rate > ledger.MaxReferralBps {
		return entity.Earning{}, errors.OutOfRange(fmt.Sprintf("referral rate %d bps outside 0..%d", rate, ledger.MaxReferralBps))
	}

	amount := ledger.ReferralAmount(total, rate)
	if amount == 0 {
		return entity.Earning{}, nil
	}

	earning, err := u.repo.InsertEarning(ctx, entity.Earning{
		ID:             uuid.New(),
		BookingID:      bookingID,
		TripID:         tripID,
		ReferrerID:     referrerID,
		EarningsAmount: amount,
		Status:         entity.EarningPending,
	})
	if err != nil {
		return entity.Earning{}, err
	}

	metrics.EarningsTransitions.WithLabelValues(entity.EarningPending.String()).Inc()
	u.log.Info(ctx, "referral earning created",
		zap.Stringer("earning_id", earning.ID),
		zap.Stringer("booking_id", bookingID),
		zap.Stringer("amount", amount))
	if err := messagestream.PublishJSON(ctx, u.publish, messagestream.TopicEarningCreated, toEarningResponse(earning)); err != nil {
		u.log.Warn(ctx, "error publish earning created", err, zap.Stringer("earning_id", earning.ID))
	}
	return earning, nil
}

func (u *usecase) CancelOnBookingCancellation(ctx context.Context, bookingID uuid.UUID) error {
	cancelled, err := u.repo.CancelEarningsByBookingID(ctx, bookingID)
	if err != nil {
		return err
	}
	if cancelled > 0 {
		metrics.EarningsTransitions.WithLabelValues(entity.EarningCancelled.String()).Add(float64(cancelled))
		u.log.Info(ctx, "referral earning cancelled", zap.Stringer("booking_id", bookingID))
	}
	return nil
}

func (u *usecase) MarkPaid(ctx context.Context, earningID uuid.UUID) (entity.Earning, error) {
	return u.transition(ctx, earningID, entity.EarningPaid, "")
}

func (u *usecase) MarkFailed(ctx context.Context, earningID uuid.UUID, reason string) (entity.Earning, error) {
	if reason == "" {
		reason = "payout failed"
	}
	return u.transition(ctx, earningID, entity.EarningFailed, reason)
}

func (u *usecase) transition(ctx context.Context, earningID uuid.UUID, to entity.EarningStatus, reason string) (entity.Earning, error) {
	earning, err := u.repo.FindEarningByID(ctx, earningID)
	if err != nil {
		return entity.Earning{}, err
	}

	// redelivered results are no-ops
	if earning.Status == to {
		return earning, nil
	}
	if !earning.Status.CanTransitionTo(to) {
		return entity.Earning{}, errors.InvalidTransition(fmt.Sprintf("cannot move a %s earning to %s", earning.Status, to))
	}

	updated, err := u.repo.UpdateEarningStatus(ctx, earningID, earning.Status, to, reason)
	if err != nil {
		return entity.Earning{}, err
	}

	metrics.EarningsTransitions.WithLabelValues(to.String()).Inc()
	return updated, nil
}

// RunPayoutBatch requests a payout for every payable earning. Only one
// replica runs a batch at a time; the others skip.
func (u *usecase) RunPayoutBatch(ctx context.Context) (response.PayoutBatch, error) {
	var batch response.PayoutBatch
	err := u.locker.WithLock(ctx, payoutBatchLock, func(ctx context.Context) error {
		earnings, err := u.repo.FindPayableEarnings(ctx, u.payout.BatchSize)
		if err != nil {
			return err
		}
		batch.Selected = len(earnings)

		for _, e := range earnings {
			msg := request.PayoutRequested{
				EarningID:  e.ID.String(),
				BookingID:  e.BookingID.String(),
				ReferrerID: e.ReferrerID.String(),
				Amount:     e.EarningsAmount,
				Currency:   u.payout.Currency,
			}
			if err := messagestream.PublishJSON(ctx, u.publish, messagestream.TopicPayoutRequested, msg); err != nil {
				u.log.Error(ctx, "error publish payout request", err, zap.Stringer("earning_id", e.ID))
				continue
			}
			if err := u.repo.MarkPayoutRequested(ctx, e.ID); err != nil {
				return err
			}
			batch.Published++
		}
		return nil
	})
	if goerrors.Is(err, lock.ErrNotAcquired) {
		u.log.Info(ctx, "payout batch already running elsewhere, skipping")
		return response.PayoutBatch{}, nil
	}
	if err != nil {
		return response.PayoutBatch{}, err
	}

	u.log.Info(ctx, "payout batch done", zap.Int("selected", batch.Selected), zap.Int("published", batch.Published))
	return batch, nil
}

func (u *usecase) ApplyPayoutResult(ctx context.Context, payload *request.PayoutResult) error {
	earningID, err := uuid.Parse(payload.EarningID)
	if err != nil {
		return errors.InvalidInput("invalid earning_id")
	}

	switch entity.EarningStatus(payload.Status) {
	case entity.EarningPaid:
		_, err = u.MarkPaid(ctx, earningID)
	case entity.EarningFailed:
		_, err = u.MarkFailed(ctx, earningID, payload.Reason)
	default:
		return errors.InvalidInput(fmt.Sprintf("unknown payout status %q", payload.Status))
	}
	return err
}

func (u *usecase) ListEarnings(ctx context.Context, actor helpers.Actor) (response.Earnings, error) {
	earnings, err := u.repo.FindEarningsByReferrerID(ctx, actor.ID)
	if err != nil {
		return response.Earnings{}, err
	}

	resp := response.Earnings{Earnings: make([]response.Earning, 0, len(earnings))}
	for _, e := range earnings {
		resp.Earnings = append(resp.Earnings, toEarningResponse(e))
	}
	return resp, nil
}

func toEarningResponse(e entity.Earning) response.Earning {
	resp := response.Earning{
		ID:             e.ID.String(),
		BookingID:      e.BookingID.String(),
		TripID:         e.TripID.String(),
		ReferrerID:     e.ReferrerID.String(),
		EarningsAmount: e.EarningsAmount,
		Status:         e.Status.String(),
		FailureReason:  e.FailureReason.String,
		CreatedAt:      e.CreatedAt,
	}
	if e.PaidAt.Valid {
		paidAt := e.PaidAt.Time
		resp.PaidAt = &paidAt
	}
	return resp
}
