package handler

import (
	"fmt"

	"guide-booking-service/internal/module/trip/models/request"
	"guide-booking-service/internal/module/trip/usecases"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type TripHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *TripHandler) UpdateReferralSettings(ctx *fiber.Ctx) error {
	tripID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse trip id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse trip id"))
	}

	var req request.ReferralSettings
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

	resp, err := h.Usecase.UpdateReferralSettings(ctx.UserContext(), actor, tripID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update referral settings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update referral settings")
}

func (h *TripHandler) GetAvailability(ctx *fiber.Ctx) error {
	tripDateID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse trip date id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse trip date id"))
	}

	resp, err := h.Usecase.GetAvailability(ctx.UserContext(), tripDateID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get availability: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get availability")
}
