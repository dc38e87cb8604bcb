package repositories

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"
	"strconv"
	"time"

	"guide-booking-service/internal/module/trip/models/entity"
	"guide-booking-service/internal/pkg/database"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/log"
	"guide-booking-service/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	redisClient *redis.Client
	cacheTTL    time.Duration
}

type Repositories interface {
	// db
	FindTripByID(ctx context.Context, tripID uuid.UUID) (entity.Trip, error)
	FindTripDateByID(ctx context.Context, tripDateID uuid.UUID) (entity.TripDate, error)
	UpdateReferralBps(ctx context.Context, tripID uuid.UUID, bps money.Bps) (entity.Trip, error)
	ReserveSpots(ctx context.Context, tripDateID uuid.UUID, count int) (int, error)
	ReleaseSpots(ctx context.Context, tripDateID uuid.UUID, count int) (int, error)
	// redis
	GetCachedAvailability(ctx context.Context, tripDateID uuid.UUID) (int, bool, error)
	SetCachedAvailability(ctx context.Context, tripDateID uuid.UUID, spots int) error
	InvalidateAvailability(ctx context.Context, tripDateID uuid.UUID) error
}

func New(db *sqlx.DB, log log.Logger, redisClient *redis.Client, cacheTTL time.Duration) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

const tripColumns = `id, guide_id, title, price_per_person, min_group_size, max_group_size,
	referral_payout_bps, is_instant_book, created_at, updated_at`

const tripDateColumns = `id, trip_id, start_date, end_date, spots_total, spots_available,
	price_override, is_available, created_at, updated_at`

// FindTripByID implements Repositories.
func (r *repositories) FindTripByID(ctx context.Context, tripID uuid.UUID) (entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	var trip entity.Trip
	err := database.Executor(ctx, r.db).GetContext(ctx, &trip, query, tripID)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Trip{}, errors.NotFound("trip not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find trip by id", err, zap.Stringer("trip_id", tripID))
		return entity.Trip{}, errors.InternalServerError("error find trip by id")
	}
	return trip, nil
}

// FindTripDateByID implements Repositories.
func (r *repositories) FindTripDateByID(ctx context.Context, tripDateID uuid.UUID) (entity.TripDate, error) {
	query := `SELECT ` + tripDateColumns + ` FROM trip_dates WHERE id = $1`
	var tripDate entity.TripDate
	err := database.Executor(ctx, r.db).GetContext(ctx, &tripDate, query, tripDateID)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.TripDate{}, errors.NotFound("trip date not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find trip date by id", err, zap.Stringer("trip_date_id", tripDateID))
		return entity.TripDate{}, errors.InternalServerError("error find trip date by id")
	}
	return tripDate, nil
}

// UpdateReferralBps implements Repositories.
func (r *repositories) UpdateReferralBps(ctx context.Context, tripID uuid.UUID, bps money.Bps) (entity.Trip, error) {
	query := `UPDATE trips SET referral_payout_bps = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + tripColumns
	var trip entity.Trip
	err := database.Executor(ctx, r.db).GetContext(ctx, &trip, query, tripID, bps)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Trip{}, errors.NotFound("trip not found")
	}
	if err != nil {
		r.log.Error(ctx, "error update referral settings", err, zap.Stringer("trip_id", tripID))
		return entity.Trip{}, errors.InternalServerError("error update referral settings")
	}
	return trip, nil
}

// ReserveSpots implements Repositories. The check and the decrement are one
// statement so two callers can never both take the last spot.
func (r *repositories) ReserveSpots(ctx context.Context, tripDateID uuid.UUID, count int) (int, error) {
	query := `UPDATE trip_dates SET spots_available = spots_available - $2, updated_at = NOW()
		WHERE id = $1 AND is_available AND spots_available >= $2
		RETURNING spots_available`
	var remaining int
	err := database.Executor(ctx, r.db).QueryRowxContext(ctx, query, tripDateID, count).Scan(&remaining)
	if goerrors.Is(err, sql.ErrNoRows) {
		tripDate, findErr := r.FindTripDateByID(ctx, tripDateID)
		if findErr != nil {
			return 0, findErr
		}
		if !tripDate.IsAvailable {
			return 0, errors.InsufficientSpots("trip date is not open for booking")
		}
		return 0, errors.InsufficientSpots(fmt.Sprintf("requested %d spots, %d available", count, tripDate.SpotsAvailable))
	}
	if err != nil {
		r.log.Error(ctx, "error reserve spots", err, zap.Stringer("trip_date_id", tripDateID))
		return 0, errors.InternalServerError("error reserve spots")
	}
	return remaining, nil
}

// ReleaseSpots implements Repositories. Releasing past spots_total means the
// counter and the bookings disagree; that is reported, never clamped.
func (r *repositories) ReleaseSpots(ctx context.Context, tripDateID uuid.UUID, count int) (int, error) {
	query := `UPDATE trip_dates SET spots_available = spots_available + $2, updated_at = NOW()
		WHERE id = $1 AND spots_available + $2 <= spots_total
		RETURNING spots_available`
	var remaining int
	err := database.Executor(ctx, r.db).QueryRowxContext(ctx, query, tripDateID, count).Scan(&remaining)
	if goerrors.Is(err, sql.ErrNoRows) {
		tripDate, findErr := r.FindTripDateByID(ctx, tripDateID)
		if findErr != nil {
			return 0, findErr
		}
		r.log.Error(ctx, "seat release would exceed spots total",
			zap.Stringer("trip_date_id", tripDateID),
			zap.Int("release", count),
			zap.Int("spots_available", tripDate.SpotsAvailable),
			zap.Int("spots_total", tripDate.SpotsTotal))
		return 0, errors.DataIntegrity("seat release would exceed spots total")
	}
	if err != nil {
		r.log.Error(ctx, "error release spots", err, zap.Stringer("trip_date_id", tripDateID))
		return 0, errors.InternalServerError("error release spots")
	}
	return remaining, nil
}

func availabilityKey(tripDateID uuid.UUID) string {
	return fmt.Sprintf("trip_date:%s:spots_available", tripDateID)
}

// GetCachedAvailability implements Repositories.
func (r *repositories) GetCachedAvailability(ctx context.Context, tripDateID uuid.UUID) (int, bool, error) {
	data, err := r.redisClient.Get(ctx, availabilityKey(tripDateID)).Result()
	if goerrors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.InternalServerError("error get cached availability")
	}
	spots, err := strconv.Atoi(data)
	if err != nil {
		return 0, false, errors.InternalServerError("error parse cached availability")
	}
	return spots, true, nil
}

// SetCachedAvailability implements Repositories.
func (r *repositories) SetCachedAvailability(ctx context.Context, tripDateID uuid.UUID, spots int) error {
	if err := r.redisClient.Set(ctx, availabilityKey(tripDateID), spots, r.cacheTTL).Err(); err != nil {
		return errors.InternalServerError("error set cached availability")
	}
	return nil
}

// InvalidateAvailability implements Repositories.
func (r *repositories) InvalidateAvailability(ctx context.Context, tripDateID uuid.UUID) error {
	if err := r.redisClient.Del(ctx, availabilityKey(tripDateID)).Err(); err != nil {
		return errors.InternalServerError("error invalidate cached availability")
	}
	return nil
}
