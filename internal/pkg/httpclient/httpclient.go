package httpclient

import (
	"net/http"

	"guide-booking-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	TypeConsecutive = "consecutive"
	TypeThreshold   = "threshold"
	TypeRate        = "rate"
)

// InitCircuitBreaker builds the breaker shared by outbound HTTP calls.
func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case TypeThreshold:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	case TypeRate:
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.MinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFails)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, &http.Client{})
}
