// Package adapters provides the repository implementations for the payments
// feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"pawfinders_backend/internal/feature/payments/domain/entity"
	"pawfinders_backend/internal/feature/payments/usecase"
)

// transactionMySQL is the MySQL implementation of TransactionRepository.
type transactionMySQL struct {
	db *gorm.DB
}

var _ usecase.TransactionRepository = (*transactionMySQL)(nil)

// NewTransactionMySQL creates a new transactionMySQL with the given
// connection.
func NewTransactionMySQL(db *gorm.DB) *transactionMySQL {
	return &transactionMySQL{db: db}
}

// Create persists a new transaction. A unique-index violation on the
// merchant transaction id maps to usecase.ErrDuplicateTransaction.
func (r *transactionMySQL) Create(ctx context.Context, txn *entity.Transaction) error {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		// MySQL error 1062: duplicate entry for a unique key
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrDuplicateTransaction
		}
		return err
	}
	return nil
}

// FindByMerchantTransactionID returns the transaction for the given id, or
// usecase.ErrTransactionNotFound.
func (r *transactionMySQL) FindByMerchantTransactionID(ctx context.Context, merchantTxnID string) (*entity.Transaction, error) {
	var txn entity.Transaction
	if err := r.db.WithContext(ctx).Where("merchant_transaction_id = ?", merchantTxnID).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// UpdateStatus transitions the transaction to the given status. Updating an
// unknown id returns usecase.ErrTransactionNotFound.
func (r *transactionMySQL) UpdateStatus(ctx context.Context, merchantTxnID string, status entity.Status, reason string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Where("merchant_transaction_id = ?", merchantTxnID).
		Updates(map[string]interface{}{
			"status":         status,
			"failure_reason": reason,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTransactionNotFound
	}
	return nil
}
