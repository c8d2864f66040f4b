package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"pawfinders_backend/internal/feature/payments/domain/entity"
)

// PaymentSuccessCode is the processor status code that marks a paid
// transaction. Every other code is treated as a failure.
const PaymentSuccessCode = "PAYMENT_SUCCESS"

// TransactionRepository abstracts the persistence layer for payment
// transactions. Following Go convention, the interface is defined by the
// consumer (usecase), not the provider (adapters).
type TransactionRepository interface {
	// Create persists a new transaction. Returns ErrDuplicateTransaction if
	// the merchant transaction id is already taken.
	Create(ctx context.Context, txn *entity.Transaction) error

	// FindByMerchantTransactionID returns the transaction for the given id,
	// or ErrTransactionNotFound.
	FindByMerchantTransactionID(ctx context.Context, merchantTxnID string) (*entity.Transaction, error)

	// UpdateStatus transitions the transaction to the given terminal status.
	UpdateStatus(ctx context.Context, merchantTxnID string, status entity.Status, reason string) error
}

// PaymentGateway abstracts the external payment processor.
type PaymentGateway interface {
	// InitiatePay registers the transaction with the processor and returns
	// the URL of its hosted payment page.
	InitiatePay(ctx context.Context, merchantTxnID string, amountMinor int64, redirectURL string) (string, error)

	// FetchStatus queries the processor for the transaction's outcome.
	FetchStatus(ctx context.Context, merchantTxnID string) (*entity.GatewayStatus, error)
}

// Outcome is the resolved result of a payment, ready for display.
type Outcome struct {
	Succeeded   bool
	AmountMajor float64
	Message     string
}

// paymentUsecase drives the initiate/resolve payment flow against the
// durable transaction record.
type paymentUsecase struct {
	txns    TransactionRepository
	gateway PaymentGateway
	baseURL string
}

// NewPaymentUsecase creates a new paymentUsecase. baseURL is this server's
// externally reachable base URL, used to build the processor's redirect
// target.
func NewPaymentUsecase(txns TransactionRepository, gateway PaymentGateway, baseURL string) *paymentUsecase {
	return &paymentUsecase{txns: txns, gateway: gateway, baseURL: baseURL}
}

// Initiate validates the amount, records a pending transaction and hands it
// to the processor. It returns the URL of the processor's hosted payment
// page the caller should be redirected to.
func (u *paymentUsecase) Initiate(ctx context.Context, amountMajor float64) (string, error) {
	amountMinor := int64(math.Round(amountMajor * 100))
	if amountMinor <= 0 {
		return "", ErrInvalidAmount
	}

	merchantTxnID := uuid.NewString()
	txn := &entity.Transaction{
		MerchantTransactionID: merchantTxnID,
		AmountMinor:           amountMinor,
		Status:                entity.StatusPending,
	}
	if err := u.txns.Create(ctx, txn); err != nil {
		return "", fmt.Errorf("persist transaction: %w", err)
	}

	redirectURL := u.baseURL + "/redirect-url/" + merchantTxnID
	payPageURL, err := u.gateway.InitiatePay(ctx, merchantTxnID, amountMinor, redirectURL)
	if err != nil {
		// Best effort: the redirect to the failure page must not depend on
		// this write succeeding.
		if updErr := u.txns.UpdateStatus(ctx, merchantTxnID, entity.StatusFailed, "initiation failed"); updErr != nil {
			slog.Warn("failed to mark transaction failed", "merchant_txn_id", merchantTxnID, "error", updErr)
		}
		return "", fmt.Errorf("initiate pay: %w", err)
	}

	return payPageURL, nil
}

// Resolve is triggered by the processor's redirect callback. It verifies the
// merchant transaction id belongs to a transaction this server initiated,
// queries the processor for the outcome and persists the terminal state.
func (u *paymentUsecase) Resolve(ctx context.Context, merchantTxnID string) (*Outcome, error) {
	if _, err := u.txns.FindByMerchantTransactionID(ctx, merchantTxnID); err != nil {
		return nil, err
	}

	status, err := u.gateway.FetchStatus(ctx, merchantTxnID)
	if err != nil {
		return nil, fmt.Errorf("fetch status: %w", err)
	}

	if status.Code == PaymentSuccessCode {
		if updErr := u.txns.UpdateStatus(ctx, merchantTxnID, entity.StatusSuccess, ""); updErr != nil {
			slog.Warn("failed to persist success status", "merchant_txn_id", merchantTxnID, "error", updErr)
		}
		return &Outcome{
			Succeeded:   true,
			AmountMajor: float64(status.AmountMinor) / 100,
		}, nil
	}

	message := status.Message
	if message == "" {
		message = "Transaction Failed"
	}
	if updErr := u.txns.UpdateStatus(ctx, merchantTxnID, entity.StatusFailed, message); updErr != nil {
		slog.Warn("failed to persist failed status", "merchant_txn_id", merchantTxnID, "error", updErr)
	}
	return &Outcome{Succeeded: false, Message: message}, nil
}
