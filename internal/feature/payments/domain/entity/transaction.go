// Package entity defines the domain entities for the payments feature.
package entity

import "time"

// Status is the lifecycle state of a payment transaction.
type Status string

const (
	// StatusPending marks a transaction that has been initiated but not yet
	// resolved via the processor's status check.
	StatusPending Status = "PENDING"
	// StatusSuccess marks a transaction the processor reported as paid.
	StatusSuccess Status = "SUCCESS"
	// StatusFailed marks a transaction that was rejected, errored, or could
	// not be initiated.
	StatusFailed Status = "FAILED"
)

// Transaction is the durable record of a payment, keyed by the merchant
// transaction id generated at initiation. It survives process restarts so a
// processor-side completion can always be correlated with an initiation.
type Transaction struct {
	ID uint `gorm:"primaryKey"`

	// MerchantTransactionID correlates an initiated payment with its later
	// status check. Unique across all transactions.
	MerchantTransactionID string `gorm:"uniqueIndex;size:64;not null"`

	// AmountMinor is the amount in minor currency units (paise).
	AmountMinor int64 `gorm:"not null"`

	Status Status `gorm:"size:16;not null"`

	// FailureReason carries the processor's message for failed transactions.
	FailureReason string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the table name used by gorm.
func (Transaction) TableName() string { return "payment_transactions" }

// GatewayStatus is the processor's view of a transaction as returned by the
// server-to-server status check.
type GatewayStatus struct {
	Code        string
	Message     string
	AmountMinor int64
}
