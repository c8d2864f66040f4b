// Package usecase implements the business logic for the payments feature.
package usecase

import "errors"

var (
	// ErrInvalidAmount is returned when the requested amount converts to
	// zero or a negative number of minor units.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrTransactionNotFound is returned when no transaction matches the
	// given merchant transaction id.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateTransaction is returned when a transaction with the same
	// merchant transaction id already exists.
	ErrDuplicateTransaction = errors.New("transaction already exists")

	// ErrInitiationRejected is returned when the processor answered the
	// initiate call but declined it or omitted the redirect URL.
	ErrInitiationRejected = errors.New("payment initiation rejected by processor")
)
