package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"guide-booking-service/config"
	"guide-booking-service/internal/module/user/models/response"
	"guide-booking-service/internal/pkg/errors"
	"guide-booking-service/internal/pkg/log"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
	"go.uber.org/zap"
)

type repositories struct {
	log            log.Logger
	httpClient     *circuit.HTTPClient
	cfgUserService *config.UserServiceConfig
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
}

func New(log log.Logger, httpClient *circuit.HTTPClient, cfgUserService *config.UserServiceConfig) Repositories {
	return &repositories{
		log:            log,
		httpClient:     httpClient,
		cfgUserService: cfgUserService,
	}
}

// ValidateToken implements Repositories.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	endpoint := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s",
		r.cfgUserService.Host, r.cfgUserService.Port, url.QueryEscape(token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return response.UserServiceValidate{}, errors.InternalServerError("error build token request")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Error(ctx, "error call user service", err)
		return response.UserServiceValidate{}, errors.InternalServerError("error call user service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Warn(ctx, "invalid token", zap.Int("status", resp.StatusCode))
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		r.log.Error(ctx, "error decode token response", err)
		return response.UserServiceValidate{}, errors.InternalServerError("error decode token response")
	}

	if !respData.IsValid {
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}
