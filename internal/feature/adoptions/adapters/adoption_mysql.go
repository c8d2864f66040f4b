// Package adapters provides the repository implementations for the adoptions
// feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"pawfinders_backend/internal/feature/adoptions/domain/entity"
	"pawfinders_backend/internal/feature/adoptions/usecase"
)

type adoptionMySQL struct {
	db *gorm.DB
}

var _ usecase.AdoptionRepository = (*adoptionMySQL)(nil)

// NewAdoptionMySQL creates a new adoptionMySQL with the given connection.
func NewAdoptionMySQL(db *gorm.DB) *adoptionMySQL {
	return &adoptionMySQL{db: db}
}

func (r *adoptionMySQL) Create(ctx context.Context, adoption *entity.Adoption) error {
	return r.db.WithContext(ctx).Create(adoption).Error
}
