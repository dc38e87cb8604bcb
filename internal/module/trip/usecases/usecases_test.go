package usecases_test

import (
	"context"
	"testing"

	"guide-booking-service/internal/module/trip/mocks"
	"guide-booking-service/internal/module/trip/models/entity"
	"guide-booking-service/internal/module/trip/models/request"
	"guide-booking-service/internal/module/trip/usecases"
	"guide-booking-service/internal/pkg/database"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/helpers"
	log_internal "guide-booking-service/internal/pkg/log"
	"guide-booking-service/internal/pkg/money"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, log_internal.GetLogger())
}

func teardown() {
	repoMock = nil
	uc = nil
}

func percent(v float64) *float64 { return &v }

func TestUpdateReferralSettings(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	guide := helpers.Actor{ID: uuid.New(), Role: helpers.RoleGuide}
	trip := entity.Trip{ID: tripID, GuideID: guide.ID, PricePerPerson: money.FromMajor(450), MaxGroupSize: 8}

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		updated := trip
		updated.ReferralPayoutBps = 150
		repoMock.On("FindTripByID", ctx, tripID).Return(trip, nil)
		repoMock.On("UpdateReferralBps", ctx, tripID, money.Bps(150)).Return(updated, nil)

		resp, err := uc.UpdateReferralSettings(ctx, guide, tripID, &request.ReferralSettings{ReferralPayoutPercent: percent(1.5)})

		require.NoError(t, err)
		assert.Equal(t, 1.5, resp.ReferralPayoutPercent)
		repoMock.AssertExpectations(t)
	})

	for _, p := range []float64{-0.1, 2.01, 5, 1.234} {
		t.Run("out of range", func(t *testing.T) {
			setup()
			defer teardown()

			_, err := uc.UpdateReferralSettings(ctx, guide, tripID, &request.ReferralSettings{ReferralPayoutPercent: percent(p)})

			assert.True(t, errors.Is(err, errors.CodeOutOfRange), "percent %v", p)
			repoMock.AssertNotCalled(t, "UpdateReferralBps", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("bounds are inclusive", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindTripByID", ctx, tripID).Return(trip, nil)
		repoMock.On("UpdateReferralBps", ctx, tripID, mock.Anything).Return(trip, nil)

		_, err := uc.UpdateReferralSettings(ctx, guide, tripID, &request.ReferralSettings{ReferralPayoutPercent: percent(0)})
		assert.NoError(t, err)
		_, err = uc.UpdateReferralSettings(ctx, guide, tripID, &request.ReferralSettings{ReferralPayoutPercent: percent(2.0)})
		assert.NoError(t, err)
	})

	t.Run("other guide is forbidden", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindTripByID", ctx, tripID).Return(trip, nil)
		other := helpers.Actor{ID: uuid.New(), Role: helpers.RoleGuide}

		_, err := uc.UpdateReferralSettings(ctx, other, tripID, &request.ReferralSettings{ReferralPayoutPercent: percent(1)})

		assert.True(t, errors.Is(err, errors.CodeForbidden))
	})
}

func TestReserve(t *testing.T) {
	ctx := context.Background()
	tripDateID := uuid.New()

	t.Run("success invalidates cache", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("ReserveSpots", ctx, tripDateID, 2).Return(3, nil)
		repoMock.On("InvalidateAvailability", ctx, tripDateID).Return(nil)

		assert.NoError(t, uc.Reserve(ctx, tripDateID, 2))
		repoMock.AssertExpectations(t)
	})

	t.Run("cache is invalidated after the transaction commits", func(t *testing.T) {
		setup()
		defer teardown()

		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		tr := database.NewTransactor(sqlx.NewDb(db, "postgres"))
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repoMock.On("ReserveSpots", mock.Anything, tripDateID, 2).Return(3, nil)
		repoMock.On("InvalidateAvailability", ctx, tripDateID).Return(nil)

		err = tr.WithinTx(ctx, func(ctx context.Context) error {
			if err := uc.Reserve(ctx, tripDateID, 2); err != nil {
				return err
			}
			repoMock.AssertNotCalled(t, "InvalidateAvailability", mock.Anything, mock.Anything)
			return nil
		})

		require.NoError(t, err)
		repoMock.AssertExpectations(t)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("rolled back reservation leaves the cache alone", func(t *testing.T) {
		setup()
		defer teardown()

		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		tr := database.NewTransactor(sqlx.NewDb(db, "postgres"))
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repoMock.On("ReserveSpots", mock.Anything, tripDateID, 2).Return(3, nil)

		err = tr.WithinTx(ctx, func(ctx context.Context) error {
			if err := uc.Reserve(ctx, tripDateID, 2); err != nil {
				return err
			}
			return errors.InvalidTransition("booking was modified concurrently, reload and retry")
		})

		assert.True(t, errors.Is(err, errors.CodeInvalidTransition))
		repoMock.AssertNotCalled(t, "InvalidateAvailability", mock.Anything, mock.Anything)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("insufficient spots", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("ReserveSpots", ctx, tripDateID, 9).Return(0, errors.InsufficientSpots("requested 9 spots, 3 available"))

		err := uc.Reserve(ctx, tripDateID, 9)

		assert.True(t, errors.Is(err, errors.CodeInsufficientSpots))
		repoMock.AssertNotCalled(t, "InvalidateAvailability", mock.Anything, mock.Anything)
	})

	t.Run("invalid count", func(t *testing.T) {
		setup()
		defer teardown()

		assert.True(t, errors.Is(uc.Reserve(ctx, tripDateID, 0), errors.CodeInvalidInput))
	})
}

func TestRelease(t *testing.T) {
	ctx := context.Background()
	tripDateID := uuid.New()

	t.Run("integrity error surfaces", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("ReleaseSpots", ctx, tripDateID, 2).Return(0, errors.DataIntegrity("seat release would exceed spots total"))

		err := uc.Release(ctx, tripDateID, 2)

		assert.True(t, errors.Is(err, errors.CodeDataIntegrity))
	})

	t.Run("cache failure does not fail release", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("ReleaseSpots", ctx, tripDateID, 1).Return(4, nil)
		repoMock.On("InvalidateAvailability", ctx, tripDateID).Return(errors.InternalServerError("error invalidate cached availability"))

		assert.NoError(t, uc.Release(ctx, tripDateID, 1))
	})
}

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()
	tripDateID := uuid.New()

	t.Run("cache hit", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetCachedAvailability", ctx, tripDateID).Return(4, true, nil)

		resp, err := uc.GetAvailability(ctx, tripDateID)

		require.NoError(t, err)
		assert.Equal(t, 4, resp.SpotsAvailable)
		assert.True(t, resp.Cached)
		repoMock.AssertNotCalled(t, "FindTripDateByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss loads and fills", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetCachedAvailability", ctx, tripDateID).Return(0, false, nil)
		repoMock.On("FindTripDateByID", ctx, tripDateID).Return(entity.TripDate{ID: tripDateID, SpotsTotal: 6, SpotsAvailable: 2}, nil)
		repoMock.On("SetCachedAvailability", ctx, tripDateID, 2).Return(nil)

		resp, err := uc.GetAvailability(ctx, tripDateID)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.SpotsAvailable)
		assert.False(t, resp.Cached)
		repoMock.AssertExpectations(t)
	})
}
