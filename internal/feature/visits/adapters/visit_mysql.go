// Package adapters provides the repository implementations for the visits
// feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"pawfinders_backend/internal/feature/visits/domain/entity"
	"pawfinders_backend/internal/feature/visits/usecase"
)

type visitMySQL struct {
	db *gorm.DB
}

var _ usecase.VisitRepository = (*visitMySQL)(nil)

// NewVisitMySQL creates a new visitMySQL with the given connection.
func NewVisitMySQL(db *gorm.DB) *visitMySQL {
	return &visitMySQL{db: db}
}

func (r *visitMySQL) Create(ctx context.Context, visit *entity.Visit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}
