// Package handler provides the HTTP handlers for the payments feature.
//
// Payment routes are browser-navigation targets, not JSON APIs: every
// failure degrades to a redirect to the local status page with a
// human-readable error in the query string, never a 5xx.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"pawfinders_backend/internal/feature/payments/usecase"
)

// statusPage is the local page that displays the payment outcome.
const statusPage = "/payment-status.html"

// PaymentUsecase defines the payment operations used by the handlers.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type PaymentUsecase interface {
	// Initiate records the payment and returns the processor's hosted
	// payment page URL.
	Initiate(ctx context.Context, amountMajor float64) (string, error)
	// Resolve fetches and persists the outcome for an initiated payment.
	Resolve(ctx context.Context, merchantTxnID string) (*usecase.Outcome, error)
}

// PaymentHandler handles the payment initiation and callback routes.
type PaymentHandler struct {
	uc PaymentUsecase
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(uc PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Pay handles GET /pay?totalValue=<amount>. On success the caller is
// redirected to the processor's payment page; on any failure to the local
// status page with an error reason.
func (h *PaymentHandler) Pay(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("totalValue"), 64)
	if err != nil {
		failureRedirect(c, "Invalid amount")
		return
	}

	payPageURL, err := h.uc.Initiate(c.Request.Context(), amount)
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		failureRedirect(c, "Invalid amount")
	case errors.Is(err, usecase.ErrInitiationRejected):
		slog.Warn("payment initiation rejected", "error", err)
		failureRedirect(c, "Payment initiation failed")
	case err != nil:
		slog.Error("payment initiation error", "error", err)
		failureRedirect(c, "Server Error")
	default:
		c.Redirect(http.StatusFound, payPageURL)
	}
}

// RedirectCallback handles GET /redirect-url/:merchantTransactionId, the
// target the processor redirects the payer back to. It resolves the outcome
// server-to-server and forwards the payer to the local status page.
func (h *PaymentHandler) RedirectCallback(c *gin.Context) {
	merchantTxnID := c.Param("merchantTransactionId")

	outcome, err := h.uc.Resolve(c.Request.Context(), merchantTxnID)
	switch {
	case errors.Is(err, usecase.ErrTransactionNotFound):
		slog.Warn("callback for unknown transaction", "merchant_txn_id", merchantTxnID, "remote_addr", c.ClientIP())
		failureRedirect(c, "Unknown transaction")
	case err != nil:
		slog.Error("payment status resolution error", "merchant_txn_id", merchantTxnID, "error", err)
		failureRedirect(c, "Error Fetching Status")
	case outcome.Succeeded:
		amount := strconv.FormatFloat(outcome.AmountMajor, 'f', -1, 64)
		c.Redirect(http.StatusFound, fmt.Sprintf("%s?status=success&amount=%s", statusPage, amount))
	default:
		failureRedirect(c, outcome.Message)
	}
}

// failureRedirect sends the caller to the status page with the given error
// text in the query string.
func failureRedirect(c *gin.Context, message string) {
	c.Redirect(http.StatusFound, fmt.Sprintf("%s?status=failed&error=%s", statusPage, url.QueryEscape(message)))
}
