package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"guide-booking-service/internal/module/user/mocks"
	"guide-booking-service/internal/module/user/models/response"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/helpers"
	log_internal "guide-booking-service/internal/pkg/log"
	"guide-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newApp(repo *mocks.Repositories) *fiber.App {
	m := &middleware.Middleware{Log: log_internal.Setup(), Repo: repo}
	app := fiber.New()
	app.Get("/whoami", m.ValidateToken, func(c *fiber.Ctx) error {
		actor, err := helpers.ActorFromCtx(c)
		if err != nil {
			return err
		}
		return c.SendString(string(actor.Role) + ":" + actor.ID.String())
	})
	return app
}

func TestValidateToken(t *testing.T) {
	userID := uuid.New()

	t.Run("sets the actor", func(t *testing.T) {
		repo := &mocks.Repositories{}
		repo.On("ValidateToken", mock.Anything, "good").
			Return(response.UserServiceValidate{IsValid: true, UserID: userID.String(), Role: "guide"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer good")
		resp, err := newApp(repo).Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		repo.AssertExpectations(t)
	})

	t.Run("missing header", func(t *testing.T) {
		repo := &mocks.Repositories{}

		resp, err := newApp(repo).Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		repo.AssertNotCalled(t, "ValidateToken", mock.Anything, mock.Anything)
	})

	t.Run("rejected token", func(t *testing.T) {
		repo := &mocks.Repositories{}
		repo.On("ValidateToken", mock.Anything, "bad").
			Return(response.UserServiceValidate{}, errors.UnauthorizedError("invalid token"))

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer bad")
		resp, err := newApp(repo).Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown role", func(t *testing.T) {
		repo := &mocks.Repositories{}
		repo.On("ValidateToken", mock.Anything, "odd").
			Return(response.UserServiceValidate{IsValid: true, UserID: userID.String(), Role: "superuser"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer odd")
		resp, err := newApp(repo).Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
