package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"inn/config"
	"inn/infras/otel"
	"inn/shared/constant"
)

const (
	otelAttrPaymentID = "payment_id"
	otelAttrAmount    = "amount"

	defaultTimeoutSeconds = 10
)

// ChargeRequest is the payload sent to the payment provider.
type ChargeRequest struct {
	PaymentID string  `json:"payment_id"`
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
}

// ChargeResult is the provider's verdict on a charge attempt.
type ChargeResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
}

type Gateway interface {
	ProcessPayment(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}

type gatewayImpl struct {
	client *http.Client
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, tracer otel.Otel) Gateway {
	timeoutSeconds := cfg.External.Payment.TimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = defaultTimeoutSeconds
	}

	return &gatewayImpl{
		client: &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
		config: cfg,
		otel:   tracer,
	}
}

func (g *gatewayImpl) ProcessPayment(ctx context.Context, req ChargeRequest) (result ChargeResult, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".ProcessPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrPaymentID: req.PaymentID,
		otelAttrAmount:    req.Amount,
	})

	body, err := json.Marshal(req)
	if err != nil {
		return result, fmt.Errorf("failed to marshal charge request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.External.Payment.BaseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return result, fmt.Errorf("failed to build charge request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	httpReq.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+g.config.External.Payment.APIKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return result, fmt.Errorf("failed to call payment provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return result, fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("failed to decode charge result: %w", err)
	}

	log.Debug().
		Str("payment_id", req.PaymentID).
		Str("status", result.Status).
		Bool("success", result.Success).
		Msg("payment provider responded")

	return result, nil
}
