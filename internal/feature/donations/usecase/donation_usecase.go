// Package usecase implements the business logic for donations.
package usecase

import (
	"context"

	"pawfinders_backend/internal/feature/donations/domain/entity"
)

// DonationRepository abstracts the persistence layer for donations.
type DonationRepository interface {
	Create(ctx context.Context, donation *entity.Donation) error
	List(ctx context.Context) ([]entity.Donation, error)
}

// DonationUsecase provides the donation operations.
type DonationUsecase struct {
	repo DonationRepository
}

// NewDonationUsecase creates a new DonationUsecase with the given repository.
func NewDonationUsecase(repo DonationRepository) *DonationUsecase {
	return &DonationUsecase{repo: repo}
}

// Record persists a donation. Pet details are kept only for "pet" and
// "both" donations; the money amount only for "money" and "both".
func (u *DonationUsecase) Record(ctx context.Context, donation *entity.Donation) error {
	if donation.DonationType != "pet" && donation.DonationType != "both" {
		donation.PetDetails = nil
	}
	if donation.DonationType != "money" && donation.DonationType != "both" {
		donation.DonationAmount = nil
	}
	return u.repo.Create(ctx, donation)
}

// List returns all recorded donations.
func (u *DonationUsecase) List(ctx context.Context) ([]entity.Donation, error) {
	return u.repo.List(ctx)
}
