package usecases

import (
	"context"
	"fmt"

	"guide-booking-service/internal/module/trip/models/entity"
	"guide-booking-service/internal/module/trip/models/request"
	"guide-booking-service/internal/module/trip/models/response"
	"guide-booking-service/internal/module/trip/repositories"
	"guide-booking-service/internal/pkg/database"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/helpers"
	"guide-booking-service/internal/pkg/ledger"
	"guide-booking-service/internal/pkg/log"
	"guide-booking-service/internal/pkg/metrics"
	"guide-booking-service/internal/pkg/money"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	// http
	UpdateReferralSettings(ctx context.Context, actor helpers.Actor, tripID uuid.UUID, payload *request.ReferralSettings) (response.Trip, error)
	GetAvailability(ctx context.Context, tripDateID uuid.UUID) (response.Availability, error)
	// seat inventory
	Reserve(ctx context.Context, tripDateID uuid.UUID, count int) error
	Release(ctx context.Context, tripDateID uuid.UUID, count int) error
	// read
	GetTrip(ctx context.Context, tripID uuid.UUID) (entity.Trip, error)
	GetTripDate(ctx context.Context, tripDateID uuid.UUID) (entity.TripDate, error)
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) UpdateReferralSettings(ctx context.Context, actor helpers.Actor, tripID uuid.UUID, payload *request.ReferralSettings) (response.Trip, error) {
	if payload.ReferralPayoutPercent == nil {
		return response.Trip{}, errors.InvalidInput("referral_payout_percent is required")
	}

	bps, err := money.PercentToBps(*payload.ReferralPayoutPercent)
	if err != nil || bps < 0 || bps > ledger.MaxReferralBps {
		return response.Trip{}, errors.OutOfRange(fmt.Sprintf("referral payout percent must be within 0.0 and %.1f", ledger.MaxReferralBps.Percent()))
	}

	trip, err := u.repo.FindTripByID(ctx, tripID)
	if err != nil {
		return response.Trip{}, err
	}

	if !actor.Is(helpers.RoleGuide) || trip.GuideID != actor.ID {
		return response.Trip{}, errors.Forbidden("only the trip's guide can change referral settings")
	}

	updated, err := u.repo.UpdateReferralBps(ctx, tripID, bps)
	if err != nil {
		return response.Trip{}, err
	}

	return toTripResponse(updated), nil
}

func (u *usecase) GetAvailability(ctx context.Context, tripDateID uuid.UUID) (response.Availability, error) {
	spots, ok, err := u.repo.GetCachedAvailability(ctx, tripDateID)
	if err != nil {
		u.log.Warn(ctx, "availability cache unavailable", err)
	}
	if ok {
		return response.Availability{TripDateID: tripDateID.String(), SpotsAvailable: spots, Cached: true}, nil
	}

	tripDate, err := u.repo.FindTripDateByID(ctx, tripDateID)
	if err != nil {
		return response.Availability{}, err
	}

	if err := u.repo.SetCachedAvailability(ctx, tripDateID, tripDate.SpotsAvailable); err != nil {
		u.log.Warn(ctx, "error cache availability", err)
	}

	return response.Availability{TripDateID: tripDateID.String(), SpotsAvailable: tripDate.SpotsAvailable}, nil
}

func (u *usecase) Reserve(ctx context.Context, tripDateID uuid.UUID, count int) error {
	if count < 1 {
		return errors.InvalidInput("reserve count must be at least 1")
	}

	remaining, err := u.repo.ReserveSpots(ctx, tripDateID, count)
	if err != nil {
		if errors.Is(err, errors.CodeInsufficientSpots) {
			metrics.SeatReservationsRejected.Inc()
		}
		return err
	}

	database.AfterCommit(ctx, func(ctx context.Context) { u.invalidate(ctx, tripDateID) })
	u.log.Info(ctx, "spots reserved", zap.Stringer("trip_date_id", tripDateID), zap.Int("count", count), zap.Int("remaining", remaining))
	return nil
}

func (u *usecase) Release(ctx context.Context, tripDateID uuid.UUID, count int) error {
	if count < 1 {
		return errors.InvalidInput("release count must be at least 1")
	}

	remaining, err := u.repo.ReleaseSpots(ctx, tripDateID, count)
	if err != nil {
		return err
	}

	database.AfterCommit(ctx, func(ctx context.Context) { u.invalidate(ctx, tripDateID) })
	u.log.Info(ctx, "spots released", zap.Stringer("trip_date_id", tripDateID), zap.Int("count", count), zap.Int("remaining", remaining))
	return nil
}

// invalidate drops the cached availability once the new count is committed,
// so readers never cache a count that may still roll back.
func (u *usecase) invalidate(ctx context.Context, tripDateID uuid.UUID) {
	if err := u.repo.InvalidateAvailability(ctx, tripDateID); err != nil {
		u.log.Warn(ctx, "error invalidate availability cache", err, zap.Stringer("trip_date_id", tripDateID))
	}
}

func (u *usecase) GetTrip(ctx context.Context, tripID uuid.UUID) (entity.Trip, error) {
	return u.repo.FindTripByID(ctx, tripID)
}

func (u *usecase) GetTripDate(ctx context.Context, tripDateID uuid.UUID) (entity.TripDate, error) {
	return u.repo.FindTripDateByID(ctx, tripDateID)
}

func toTripResponse(trip entity.Trip) response.Trip {
	return response.Trip{
		ID:                    trip.ID.String(),
		GuideID:               trip.GuideID.String(),
		Title:                 trip.Title,
		PricePerPerson:        trip.PricePerPerson,
		MinGroupSize:          trip.MinGroupSize,
		MaxGroupSize:          trip.MaxGroupSize,
		ReferralPayoutPercent: trip.ReferralPayoutBps.Percent(),
		IsInstantBook:         trip.IsInstantBook,
	}
}
