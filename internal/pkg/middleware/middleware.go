package middleware

import (
	"fmt"
	"strings"

	"guide-booking-service/internal/module/user/repositories"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log  *otelzap.Logger
	Repo repositories.Repositories
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	// get token from header
	auth := ctx.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	resp, err := m.Repo.ValidateToken(ctx.UserContext(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	userID, err := uuid.Parse(resp.UserID)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse user id: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	role := helpers.Role(resp.Role)
	switch role {
	case helpers.RoleCustomer, helpers.RoleGuide, helpers.RoleAdmin:
	default:
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error unknown role %q", resp.Role))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	helpers.SetActor(ctx, helpers.Actor{ID: userID, Role: role})

	return ctx.Next()
}
