// Package adapters provides the repository implementations for the
// appointments feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"pawfinders_backend/internal/feature/appointments/domain/entity"
	"pawfinders_backend/internal/feature/appointments/usecase"
)

type appointmentMySQL struct {
	db *gorm.DB
}

var _ usecase.AppointmentRepository = (*appointmentMySQL)(nil)

// NewAppointmentMySQL creates a new appointmentMySQL with the given
// connection.
func NewAppointmentMySQL(db *gorm.DB) *appointmentMySQL {
	return &appointmentMySQL{db: db}
}

func (r *appointmentMySQL) Create(ctx context.Context, appointment *entity.VetAppointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}
