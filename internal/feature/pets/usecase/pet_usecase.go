// Package usecase implements the business logic for lost-pet reports.
package usecase

import (
	"context"

	"pawfinders_backend/internal/feature/pets/domain/entity"
)

// PetRepository abstracts the persistence layer for pet reports. Following
// Go convention, the interface is defined by the consumer (usecase), not the
// provider (adapters).
type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	List(ctx context.Context) ([]entity.Pet, error)
}

// ReportInput carries the lost-pet form fields. ImagePath is the stored
// upload path, empty when no image was attached.
type ReportInput struct {
	Breed               string
	LastSeenLocation    string
	DistinctiveFeatures string
	ContactInfo         string
	ImagePath           string
}

// PetUsecase provides the lost-pet report operations.
type PetUsecase struct {
	repo PetRepository
}

// NewPetUsecase creates a new PetUsecase with the given repository.
func NewPetUsecase(repo PetRepository) *PetUsecase {
	return &PetUsecase{repo: repo}
}

// Report persists a new lost-pet report and returns the stored record.
func (u *PetUsecase) Report(ctx context.Context, in ReportInput) (*entity.Pet, error) {
	pet := &entity.Pet{
		Breed:               in.Breed,
		LastSeenLocation:    in.LastSeenLocation,
		DistinctiveFeatures: in.DistinctiveFeatures,
		ContactInfo:         in.ContactInfo,
		ImagePath:           in.ImagePath,
	}
	if err := u.repo.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// List returns all lost-pet reports.
func (u *PetUsecase) List(ctx context.Context) ([]entity.Pet, error) {
	return u.repo.List(ctx)
}
