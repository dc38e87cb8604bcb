package payment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

type gateway struct {
	baseURL string
	apiKey  string
	client  *circuit.HTTPClient
}

// NewGateway talks JSON over HTTP to the payment gateway through the shared
// circuit-breaker client.
func NewGateway(baseURL, apiKey string, client *circuit.HTTPClient) Processor {
	return &gateway{baseURL: baseURL, apiKey: apiKey, client: client}
}

type gatewayError struct {
	Message string `json:"message"`
}

func (g *gateway) Charge(ctx context.Context, req ChargeRequest) (Receipt, error) {
	return g.post(ctx, "/v1/charges", req.IdempotencyKey, req)
}

func (g *gateway) Refund(ctx context.Context, req RefundRequest) (Receipt, error) {
	return g.post(ctx, "/v1/refunds", req.IdempotencyKey, req)
}

func (g *gateway) post(ctx context.Context, path, idempotencyKey string, body interface{}) (Receipt, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return Receipt{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return Receipt{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	if g.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return Receipt{}, classify(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var receipt Receipt
		if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
			// the gateway applied the request but the body is unreadable
			return Receipt{}, fmt.Errorf("%w: decode receipt: %v", ErrOutcomeUnknown, err)
		}
		return receipt, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var ge gatewayError
		_ = json.NewDecoder(resp.Body).Decode(&ge)
		return Receipt{}, fmt.Errorf("%w: %d %s", ErrDeclined, resp.StatusCode, ge.Message)
	default:
		return Receipt{}, fmt.Errorf("%w: gateway status %d", ErrOutcomeUnknown, resp.StatusCode)
	}
}

func classify(err error) error {
	if errors.Is(err, circuit.ErrBreakerOpen) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if errors.Is(err, circuit.ErrBreakerTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrOutcomeUnknown, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrOutcomeUnknown, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrOutcomeUnknown, err)
}
