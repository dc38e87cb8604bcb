package helpers

import (
	"fmt"
	"net/http"

	"guide-booking-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

type Response struct {
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return respond(ctx, log, http.StatusOK, data, message)
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return respond(ctx, log, http.StatusCreated, data, message)
}

func respond(ctx *fiber.Ctx, log *otelzap.Logger, status int, data interface{}, message string) error {
	log.Ctx(ctx.UserContext()).Info(fmt.Sprintf("%s %s: %s", ctx.Method(), ctx.Path(), message))
	return ctx.Status(status).JSON(Response{
		Message: message,
		Data:    data,
	})
}

// RespError writes err using its taxonomy code. Unknown errors become 500 and
// every 5xx is reported to APM.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	ce := errors.As(err)
	if ce.HTTPCode >= http.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("%s %s: %v", ctx.Method(), ctx.Path(), err))
		apm.CaptureError(ctx.UserContext(), err).Send()
	}

	return ctx.Status(ce.HTTPCode).JSON(Response{
		Code:    ce.Code,
		Message: ce.Message,
	})
}
