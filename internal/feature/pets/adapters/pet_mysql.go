// Package adapters provides the repository implementations for the pets
// feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"pawfinders_backend/internal/feature/pets/domain/entity"
	"pawfinders_backend/internal/feature/pets/usecase"
)

// petMySQL is the MySQL implementation of the PetRepository interface.
type petMySQL struct {
	db *gorm.DB
}

var _ usecase.PetRepository = (*petMySQL)(nil)

// NewPetMySQL creates a new petMySQL with the given connection.
func NewPetMySQL(db *gorm.DB) *petMySQL {
	return &petMySQL{db: db}
}

// Create inserts a new pet report.
func (r *petMySQL) Create(ctx context.Context, pet *entity.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

// List returns all pet reports, newest first.
func (r *petMySQL) List(ctx context.Context) ([]entity.Pet, error) {
	var pets []entity.Pet
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}
