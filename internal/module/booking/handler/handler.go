package handler

import (
	"fmt"

	"guide-booking-service/internal/module/booking/models/request"
	"guide-booking-service/internal/module/booking/usecases"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.InvalidInput(err.Error()))
	}

	actor, err := helpers.ActorFromCtx(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), actor, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create booking")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	actor, err := helpers.ActorFromCtx(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.List(ctx.UserContext(), actor)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) ShowBooking(ctx *fiber.Ctx) error {
	actor, bookingID, err := h.target(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.Get(ctx.UserContext(), actor, bookingID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show booking")
}

func (h *BookingHandler) Confirm(ctx *fiber.Ctx) error {
	actor, bookingID, err := h.target(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.Confirm(ctx.UserContext(), actor, bookingID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error confirm booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success confirm booking")
}

func (h *BookingHandler) Decline(ctx *fiber.Ctx) error {
	actor, bookingID, err := h.target(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.Decline
	if err := h.parseOptional(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.Decline(ctx.UserContext(), actor, bookingID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error decline booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success decline booking")
}

func (h *BookingHandler) Complete(ctx *fiber.Ctx) error {
	actor, bookingID, err := h.target(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.Complete
	if err := h.parseOptional(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.Complete(ctx.UserContext(), actor, bookingID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error complete booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success complete booking")
}

func (h *BookingHandler) Cancel(ctx *fiber.Ctx) error {
	actor, bookingID, err := h.target(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.Cancel
	if err := h.parseOptional(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.Cancel(ctx.UserContext(), actor, bookingID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success cancel booking")
}

func (h *BookingHandler) target(ctx *fiber.Ctx) (helpers.Actor, uuid.UUID, error) {
	actor, err := helpers.ActorFromCtx(ctx)
	if err != nil {
		return helpers.Actor{}, uuid.Nil, err
	}

	bookingID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse booking id: %v", err))
		return helpers.Actor{}, uuid.Nil, errors.BadRequest("error parse booking id")
	}

	return actor, bookingID, nil
}

// parseOptional binds and validates a body that may be omitted.
func (h *BookingHandler) parseOptional(ctx *fiber.Ctx, req interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return errors.BadRequest("error parse request")
	}
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return errors.InvalidInput(err.Error())
	}
	return nil
}
