// Package usecase implements the business logic for vet appointments.
package usecase

import (
	"context"

	"pawfinders_backend/internal/feature/appointments/domain/entity"
)

// AppointmentRepository abstracts the persistence layer for vet appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.VetAppointment) error
}

// AppointmentUsecase provides the vet appointment operations.
type AppointmentUsecase struct {
	repo AppointmentRepository
}

// NewAppointmentUsecase creates a new AppointmentUsecase.
func NewAppointmentUsecase(repo AppointmentRepository) *AppointmentUsecase {
	return &AppointmentUsecase{repo: repo}
}

// Book persists a new vet appointment.
func (u *AppointmentUsecase) Book(ctx context.Context, appointment *entity.VetAppointment) error {
	return u.repo.Create(ctx, appointment)
}
