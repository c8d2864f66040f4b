package phonepe

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"pawfinders_backend/internal/feature/payments/domain/entity"
	"pawfinders_backend/internal/feature/payments/usecase"
	"pawfinders_backend/internal/platform/externalapi/phonepe/dto"
)

const (
	payEndpoint        = "/pg/v1/pay"
	statusEndpointBase = "/pg/v1/status"

	// Both calls are idempotent per merchant transaction id, so transport
	// failures are retried a bounded number of times with backoff.
	maxAttempts  = 3
	retryBackoff = 200 * time.Millisecond
)

// Client is a PaymentGateway implementation backed by the PhonePe API.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements the payments gateway interface.
var _ usecase.PaymentGateway = (*Client)(nil)

// NewClient creates a new Client with the given configuration and HTTP
// client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// InitiatePay registers the transaction with PhonePe and returns the URL of
// the hosted payment page. The payload is base64-encoded and signed with the
// salt key; the signature travels in the X-VERIFY header.
func (c *Client) InitiatePay(ctx context.Context, merchantTxnID string, amountMinor int64, redirectURL string) (string, error) {
	payload := dto.PayPayload{
		MerchantID:            c.cfg.MerchantID,
		MerchantTransactionID: merchantTxnID,
		Amount:                amountMinor,
		RedirectURL:           redirectURL,
		RedirectMode:          "REDIRECT",
		MobileNumber:          c.cfg.MobileNumber,
		PaymentInstrument:     dto.PaymentInstrument{Type: "PAY_PAGE"},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal pay payload: %w", err)
	}
	base64Payload := base64.StdEncoding.EncodeToString(raw)
	xVerify := SignPayRequest(base64Payload, payEndpoint, c.cfg.SaltKey, c.cfg.SaltIndex)

	body, err := json.Marshal(dto.PayRequest{Request: base64Payload})
	if err != nil {
		return "", fmt.Errorf("marshal pay request: %w", err)
	}

	res, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+payEndpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-VERIFY", xVerify)
		return req, nil
	})
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("phonepe pay http %d", res.StatusCode)
	}

	var payRes dto.PayResponse
	if err := json.NewDecoder(res.Body).Decode(&payRes); err != nil {
		return "", fmt.Errorf("decode pay response: %w", err)
	}

	payPageURL := payRes.Data.InstrumentResponse.RedirectInfo.URL
	if !payRes.Success || payPageURL == "" {
		return "", fmt.Errorf("%w: %s", usecase.ErrInitiationRejected, payRes.Message)
	}

	return payPageURL, nil
}

// FetchStatus queries PhonePe for the transaction's outcome. The status call
// is a GET, so only the endpoint path and the salt key are signed.
func (c *Client) FetchStatus(ctx context.Context, merchantTxnID string) (*entity.GatewayStatus, error) {
	endpointPath := fmt.Sprintf("%s/%s/%s", statusEndpointBase, c.cfg.MerchantID, merchantTxnID)
	xVerify := SignStatusRequest(endpointPath, c.cfg.SaltKey, c.cfg.SaltIndex)

	res, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+endpointPath, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-VERIFY", xVerify)
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("phonepe status http %d", res.StatusCode)
	}

	var statusRes dto.StatusResponse
	if err := json.NewDecoder(res.Body).Decode(&statusRes); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}

	code := statusRes.Code
	if code == "" {
		code = "PAYMENT_ERROR"
	}
	return &entity.GatewayStatus{
		Code:        code,
		Message:     statusRes.Message,
		AmountMinor: statusRes.Data.Amount,
	}, nil
}

// doWithRetry executes the request, retrying transport failures with a
// linear backoff. HTTP error responses are not retried; they are answers.
func (c *Client) doWithRetry(ctx context.Context, build func() (*http.Request, error)) (*http.Response, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := build()
		if err != nil {
			return nil, err
		}
		res, err := c.client.Do(req)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if attempt == maxAttempts {
			break
		}
		slog.Warn("phonepe request failed, retrying", "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return nil, fmt.Errorf("phonepe request failed after %d attempts: %w", maxAttempts, lastErr)
}
