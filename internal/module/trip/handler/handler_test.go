package handler_test

import (
	"net/http"
	"testing"

	"guide-booking-service/internal/module/trip/handler"
	"guide-booking-service/internal/module/trip/mocks"
	"guide-booking-service/internal/module/trip/models/request"
	"guide-booking-service/internal/module/trip/models/response"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/helpers"
	log_internal "guide-booking-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	h   *handler.TripHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.TripHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		helpers.SetActor(c, helpers.Actor{ID: guideID, Role: helpers.RoleGuide})
		return c.Next()
	})
	app.Put("/api/v1/trips/:id/referral-settings", h.UpdateReferralSettings)
	app.Get("/api/v1/trip-dates/:id/availability", h.GetAvailability)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

var guideID = uuid.New()

func TestUpdateReferralSettings(t *testing.T) {
	tripID := uuid.New()
	actor := helpers.Actor{ID: guideID, Role: helpers.RoleGuide}

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		p := 1.5
		ucm.On("UpdateReferralSettings", mock.Anything, actor, tripID, &request.ReferralSettings{ReferralPayoutPercent: &p}).
			Return(response.Trip{ID: tripID.String(), ReferralPayoutPercent: 1.5}, nil)

		resp, err := app.Test(newJSONRequest(http.MethodPut, "/api/v1/trips/"+tripID.String()+"/referral-settings", `{"referral_payout_percent":1.5}`))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("out of range maps to 422", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("UpdateReferralSettings", mock.Anything, actor, tripID, mock.Anything).
			Return(response.Trip{}, errors.OutOfRange("referral payout percent must be within 0.0 and 2.0"))

		resp, err := app.Test(newJSONRequest(http.MethodPut, "/api/v1/trips/"+tripID.String()+"/referral-settings", `{"referral_payout_percent":3}`))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("missing field", func(t *testing.T) {
		setup()
		defer teardown()

		resp, err := app.Test(newJSONRequest(http.MethodPut, "/api/v1/trips/"+tripID.String()+"/referral-settings", `{}`))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		ucm.AssertNotCalled(t, "UpdateReferralSettings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("bad trip id", func(t *testing.T) {
		setup()
		defer teardown()

		resp, err := app.Test(newJSONRequest(http.MethodPut, "/api/v1/trips/not-a-uuid/referral-settings", `{"referral_payout_percent":1}`))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetAvailability(t *testing.T) {
	setup()
	defer teardown()

	tripDateID := uuid.New()
	ucm.On("GetAvailability", mock.Anything, tripDateID).Return(response.Availability{TripDateID: tripDateID.String(), SpotsAvailable: 3}, nil)

	resp, err := app.Test(newJSONRequest(http.MethodGet, "/api/v1/trip-dates/"+tripDateID.String()+"/availability", ""))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
