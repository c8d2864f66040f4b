// Package usecase implements the business logic for visit scheduling.
package usecase

import (
	"context"

	"pawfinders_backend/internal/feature/visits/domain/entity"
)

// VisitRepository abstracts the persistence layer for visits.
type VisitRepository interface {
	Create(ctx context.Context, visit *entity.Visit) error
}

// VisitUsecase provides the visit scheduling operations.
type VisitUsecase struct {
	repo VisitRepository
}

// NewVisitUsecase creates a new VisitUsecase.
func NewVisitUsecase(repo VisitRepository) *VisitUsecase {
	return &VisitUsecase{repo: repo}
}

// Schedule persists a new visit.
func (u *VisitUsecase) Schedule(ctx context.Context, visit *entity.Visit) error {
	return u.repo.Create(ctx, visit)
}
