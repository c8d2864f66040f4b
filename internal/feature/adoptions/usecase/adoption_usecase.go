// Package usecase implements the business logic for adoption applications.
package usecase

import (
	"context"
	"errors"

	"pawfinders_backend/internal/feature/adoptions/domain/entity"
)

// ErrAgreementRequired is returned when the applicant did not agree to
// provide a safe and loving home. No record is created in that case.
var ErrAgreementRequired = errors.New("agreement required")

// AdoptionRepository abstracts the persistence layer for adoption
// applications.
type AdoptionRepository interface {
	Create(ctx context.Context, adoption *entity.Adoption) error
}

// ApplyInput carries the adoption application form fields.
type ApplyInput struct {
	Name    string
	Contact string
	Email   string
	Address string
	Country string
	Pet     string
	Agree   bool
}

// AdoptionUsecase provides the adoption application operations.
type AdoptionUsecase struct {
	repo AdoptionRepository
}

// NewAdoptionUsecase creates a new AdoptionUsecase.
func NewAdoptionUsecase(repo AdoptionRepository) *AdoptionUsecase {
	return &AdoptionUsecase{repo: repo}
}

// Apply validates the agreement flag and persists the application.
func (u *AdoptionUsecase) Apply(ctx context.Context, in ApplyInput) error {
	if !in.Agree {
		return ErrAgreementRequired
	}
	return u.repo.Create(ctx, &entity.Adoption{
		Name:    in.Name,
		Contact: in.Contact,
		Email:   in.Email,
		Address: in.Address,
		Country: in.Country,
		Pet:     in.Pet,
		Agreed:  true,
	})
}
