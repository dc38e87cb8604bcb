package handler

import (
	"fmt"

	"guide-booking-service/internal/module/dispute/models/request"
	"guide-booking-service/internal/module/dispute/usecases"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type DisputeHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *DisputeHandler) OpenDispute(ctx *fiber.Ctx) error {
	var req request.OpenDispute
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

	resp, err := h.Usecase.OpenDispute(ctx.UserContext(), actor, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error open dispute: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success open dispute")
}

func (h *DisputeHandler) ShowDispute(ctx *fiber.Ctx) error {
	actor, disputeID, err := h.target(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.Get(ctx.UserContext(), actor, disputeID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show dispute: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show dispute")
}

func (h *DisputeHandler) Resolve(ctx *fiber.Ctx) error {
	actor, disputeID, err := h.target(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.Resolve
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.InvalidInput(err.Error()))
	}

	resp, err := h.Usecase.Resolve(ctx.UserContext(), actor, disputeID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error resolve dispute: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success resolve dispute")
}

func (h *DisputeHandler) target(ctx *fiber.Ctx) (helpers.Actor, uuid.UUID, error) {
	actor, err := helpers.ActorFromCtx(ctx)
	if err != nil {
		return helpers.Actor{}, uuid.Nil, err
	}

	disputeID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse dispute id: %v", err))
		return helpers.Actor{}, uuid.Nil, errors.BadRequest("error parse dispute id")
	}

	return actor, disputeID, nil
}
