// Package adapters provides the repository implementations for the donations
// feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"pawfinders_backend/internal/feature/donations/domain/entity"
	"pawfinders_backend/internal/feature/donations/usecase"
)

type donationMySQL struct {
	db *gorm.DB
}

var _ usecase.DonationRepository = (*donationMySQL)(nil)

// NewDonationMySQL creates a new donationMySQL with the given connection.
func NewDonationMySQL(db *gorm.DB) *donationMySQL {
	return &donationMySQL{db: db}
}

func (r *donationMySQL) Create(ctx context.Context, donation *entity.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationMySQL) List(ctx context.Context) ([]entity.Donation, error) {
	var donations []entity.Donation
	if err := r.db.WithContext(ctx).Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}
