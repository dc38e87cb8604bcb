package handler

import (
	"context"
	"fmt"

	"guide-booking-service/internal/module/referral/models/request"
	"guide-booking-service/internal/module/referral/usecases"
	"guide-booking-service/internal/pkg/helpers"
	"guide-booking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type ReferralHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *ReferralHandler) ShowEarnings(ctx *fiber.Ctx) error {
	actor, err := helpers.ActorFromCtx(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ListEarnings(ctx.UserContext(), actor)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show earnings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show earnings")
}

// ProcessPayoutBatch handles the periodic referral:payout_batch task.
func (h *ReferralHandler) ProcessPayoutBatch(ctx context.Context, t *asynq.Task) error {
	batch, err := h.Usecase.RunPayoutBatch(ctx)
	if err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error run payout batch: %v", err))
		return err
	}

	h.Log.Ctx(ctx).Info(fmt.Sprintf("payout batch requested %d of %d earnings", batch.Published, batch.Selected))
	return nil
}

// ConsumePayoutResult applies results from the payout system. Payloads that
// can never be applied go straight to the poison queue; other failures are
// retried by the router.
func (h *ReferralHandler) ConsumePayoutResult(msg *message.Message) error {
	var req request.PayoutResult
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return h.poison(msg, err)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		return h.poison(msg, err)
	}

	if err := h.Usecase.ApplyPayoutResult(msg.Context(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error apply payout result: %v", err))
		return err
	}

	return nil
}

func (h *ReferralHandler) poison(msg *message.Message, cause error) error {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: messagestream.TopicPayoutResult,
		ErrorMsg:    cause.Error(),
		Payload:     string(msg.Payload),
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)
	err := h.Publish.Publish(messagestream.TopicPoisoned, message.NewMessage(watermill.NewUUID(), jsonPayload))
	if err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}

	return err
}
