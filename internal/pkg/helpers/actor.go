package helpers

import (
	"guide-booking-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleGuide    Role = "guide"
	RoleAdmin    Role = "admin"
)

// Actor is the caller of a core operation. It is always passed explicitly.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) Is(role Role) bool {
	return a.Role == role
}

const (
	localUserID = "user_id"
	localRole   = "role"
)

// SetActor stores the authenticated caller on the request.
func SetActor(ctx *fiber.Ctx, actor Actor) {
	ctx.Locals(localUserID, actor.ID)
	ctx.Locals(localRole, actor.Role)
}

// ActorFromCtx reads the caller stored by the token middleware.
func ActorFromCtx(ctx *fiber.Ctx) (Actor, error) {
	id, ok := ctx.Locals(localUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return Actor{}, errors.UnauthorizedError("missing actor")
	}
	role, ok := ctx.Locals(localRole).(Role)
	if !ok {
		return Actor{}, errors.UnauthorizedError("missing actor role")
	}
	return Actor{ID: id, Role: role}, nil
}
