package phonepe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pawfinders_backend/internal/feature/payments/usecase"
	"pawfinders_backend/internal/platform/externalapi/phonepe/dto"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:      baseURL,
		MerchantID:   "MID123",
		SaltKey:      "test-salt-key",
		SaltIndex:    1,
		MobileNumber: "9999999999",
		Timeout:      10 * time.Second,
	}
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	cfg := testConfig("https://api.test.com")
	client := NewClient(cfg, &http.Client{})

	if client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.cfg.MerchantID != cfg.MerchantID {
		t.Errorf("expected merchant id %q, got %q", cfg.MerchantID, client.cfg.MerchantID)
	}
}

func TestClient_InitiatePay_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/pg/v1/pay" {
			t.Errorf("expected path /pg/v1/pay, got %s", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		var req dto.PayRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}

		// The signature must cover exactly the base64 payload that was sent
		wantVerify := SignPayRequest(req.Request, "/pg/v1/pay", "test-salt-key", 1)
		if got := r.Header.Get("X-VERIFY"); got != wantVerify {
			t.Errorf("expected X-VERIFY %q, got %q", wantVerify, got)
		}

		raw, err := base64.StdEncoding.DecodeString(req.Request)
		if err != nil {
			t.Fatalf("payload is not valid base64: %v", err)
		}
		var payload dto.PayPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("payload is not valid JSON: %v", err)
		}
		if payload.MerchantID != "MID123" {
			t.Errorf("expected merchantId MID123, got %s", payload.MerchantID)
		}
		if payload.MerchantTransactionID != "txn-1" {
			t.Errorf("expected merchantTransactionId txn-1, got %s", payload.MerchantTransactionID)
		}
		if payload.Amount != 10000 {
			t.Errorf("expected amount 10000, got %d", payload.Amount)
		}
		if payload.RedirectURL != "http://localhost:5000/redirect-url/txn-1" {
			t.Errorf("unexpected redirectUrl %s", payload.RedirectURL)
		}
		if payload.RedirectMode != "REDIRECT" {
			t.Errorf("expected redirectMode REDIRECT, got %s", payload.RedirectMode)
		}
		if payload.PaymentInstrument.Type != "PAY_PAGE" {
			t.Errorf("expected instrument PAY_PAGE, got %s", payload.PaymentInstrument.Type)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"code": "PAYMENT_INITIATED",
			"data": {
				"instrumentResponse": {
					"redirectInfo": {"url": "https://pay.example.com/page/txn-1"}
				}
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), server.Client())

	url, err := client.InitiatePay(context.Background(), "txn-1", 10000, "http://localhost:5000/redirect-url/txn-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://pay.example.com/page/txn-1" {
		t.Errorf("expected pay page URL, got %q", url)
	}
}

func TestClient_InitiatePay_Rejected(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "code": "BAD_REQUEST", "message": "merchant blocked"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), server.Client())

	_, err := client.InitiatePay(context.Background(), "txn-1", 10000, "http://localhost:5000/redirect-url/txn-1")
	if !errors.Is(err, usecase.ErrInitiationRejected) {
		t.Fatalf("expected ErrInitiationRejected, got %v", err)
	}
}

func TestClient_InitiatePay_MissingRedirectURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "code": "PAYMENT_INITIATED", "data": {}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), server.Client())

	_, err := client.InitiatePay(context.Background(), "txn-1", 10000, "http://localhost:5000/redirect-url/txn-1")
	if !errors.Is(err, usecase.ErrInitiationRejected) {
		t.Fatalf("expected ErrInitiationRejected, got %v", err)
	}
}

func TestClient_InitiatePay_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), server.Client())

	_, err := client.InitiatePay(context.Background(), "txn-1", 10000, "http://localhost:5000/redirect-url/txn-1")
	if err == nil {
		t.Fatal("expected error but got nil")
	}
}

func TestClient_FetchStatus_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		wantPath := "/pg/v1/status/MID123/txn-1"
		if r.URL.Path != wantPath {
			t.Errorf("expected path %s, got %s", wantPath, r.URL.Path)
		}
		wantVerify := SignStatusRequest(wantPath, "test-salt-key", 1)
		if got := r.Header.Get("X-VERIFY"); got != wantVerify {
			t.Errorf("expected X-VERIFY %q, got %q", wantVerify, got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"code": "PAYMENT_SUCCESS",
			"message": "Your request has been successfully completed.",
			"data": {"amount": 10000}
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), server.Client())

	status, err := client.FetchStatus(context.Background(), "txn-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Code != "PAYMENT_SUCCESS" {
		t.Errorf("expected code PAYMENT_SUCCESS, got %s", status.Code)
	}
	if status.AmountMinor != 10000 {
		t.Errorf("expected amount 10000, got %d", status.AmountMinor)
	}
}

func TestClient_FetchStatus_EmptyCodeDefaults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), server.Client())

	status, err := client.FetchStatus(context.Background(), "txn-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Code != "PAYMENT_ERROR" {
		t.Errorf("expected default code PAYMENT_ERROR, got %s", status.Code)
	}
}

func TestClient_FetchStatus_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad request", http.StatusBadRequest},
		{"unauthorized", http.StatusUnauthorized},
		{"internal server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := NewClient(testConfig(server.URL), server.Client())

			if _, err := client.FetchStatus(context.Background(), "txn-1"); err == nil {
				t.Fatal("expected error but got nil")
			}
		})
	}
}

func TestClient_RetriesTransportFailures(t *testing.T) {
	t.Parallel()

	// A server that is shut down immediately produces transport errors; the
	// client must give up after its bounded attempts rather than hang.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(testConfig(url), &http.Client{Timeout: time.Second})

	_, err := client.FetchStatus(context.Background(), "txn-1")
	if err == nil {
		t.Fatal("expected error but got nil")
	}
}
