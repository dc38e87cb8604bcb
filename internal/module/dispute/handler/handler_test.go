package handler_test

import (
	"net/http"
	"testing"

	"guide-booking-service/internal/module/dispute/handler"
	"guide-booking-service/internal/module/dispute/mocks"
	"guide-booking-service/internal/module/dispute/models/request"
	"guide-booking-service/internal/module/dispute/models/response"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/helpers"
	log_internal "guide-booking-service/internal/pkg/log"
	"guide-booking-service/internal/pkg/money"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	h   *handler.DisputeHandler
	ucm *mocks.Usecase
	app *fiber.App
)

var actor = helpers.Actor{ID: uuid.New(), Role: helpers.RoleAdmin}

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.DisputeHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		helpers.SetActor(c, actor)
		return c.Next()
	})
	app.Post("/api/v1/disputes", h.OpenDispute)
	app.Get("/api/v1/disputes/:id", h.ShowDispute)
	app.Post("/api/v1/disputes/:id/resolve", h.Resolve)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func TestOpenDispute(t *testing.T) {
	bookingID := uuid.NewString()

	t.Run("created", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("OpenDispute", mock.Anything, actor, &request.OpenDispute{
			BookingID: bookingID, Reason: "guide_no_show", Description: "no show",
		}).Return(response.Dispute{ID: uuid.NewString(), Status: "open"}, nil)

		resp, err := app.Test(newJSONRequest(http.MethodPost, "/api/v1/disputes",
			`{"booking_id":"`+bookingID+`","reason":"guide_no_show","description":"no show"}`))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		ucm.AssertExpectations(t)
	})

	t.Run("unknown reason", func(t *testing.T) {
		setup()
		defer teardown()

		resp, err := app.Test(newJSONRequest(http.MethodPost, "/api/v1/disputes",
			`{"booking_id":"`+bookingID+`","reason":"bored"}`))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		ucm.AssertNotCalled(t, "OpenDispute", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("OpenDispute", mock.Anything, actor, mock.Anything).
			Return(response.Dispute{}, errors.DuplicateDispute("booking already has an open dispute"))

		resp, err := app.Test(newJSONRequest(http.MethodPost, "/api/v1/disputes",
			`{"booking_id":"`+bookingID+`","reason":"other"}`))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestResolve(t *testing.T) {
	disputeID := uuid.New()

	t.Run("approved with override", func(t *testing.T) {
		setup()
		defer teardown()

		override := money.FromMajor(100)
		ucm.On("Resolve", mock.Anything, actor, disputeID, &request.Resolve{
			Resolution: "approved", RefundAmount: &override, Notes: "partial",
		}).Return(response.Dispute{ID: disputeID.String(), Status: "resolved", RefundAmount: &override}, nil)

		resp, err := app.Test(newJSONRequest(http.MethodPost, "/api/v1/disputes/"+disputeID.String()+"/resolve",
			`{"resolution":"approved","refund_amount":"100.00","notes":"partial"}`))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		ucm.AssertExpectations(t)
	})

	t.Run("already resolved", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("Resolve", mock.Anything, actor, disputeID, mock.Anything).
			Return(response.Dispute{}, errors.AlreadyResolved("dispute is already resolved"))

		resp, err := app.Test(newJSONRequest(http.MethodPost, "/api/v1/disputes/"+disputeID.String()+"/resolve",
			`{"resolution":"denied"}`))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("bad id", func(t *testing.T) {
		setup()
		defer teardown()

		resp, err := app.Test(newJSONRequest(http.MethodPost, "/api/v1/disputes/nope/resolve", `{"resolution":"denied"}`))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestShowDispute(t *testing.T) {
	setup()
	defer teardown()

	disputeID := uuid.New()
	ucm.On("Get", mock.Anything, actor, disputeID).Return(response.Dispute{ID: disputeID.String()}, nil)

	resp, err := app.Test(newJSONRequest(http.MethodGet, "/api/v1/disputes/"+disputeID.String(), ""))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
