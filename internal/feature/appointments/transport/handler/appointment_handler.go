// Package handler provides the HTTP handlers for the appointments feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfinders_backend/internal/api"
	"pawfinders_backend/internal/feature/appointments/domain/entity"
)

// AppointmentUsecase defines the appointment operations used by the handler.
type AppointmentUsecase interface {
	Book(ctx context.Context, appointment *entity.VetAppointment) error
}

// AppointmentHandler handles HTTP requests for vet appointments.
type AppointmentHandler struct {
	uc AppointmentUsecase
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(uc AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Book handles POST /api/vet-appointment. All fields are optional; the
// record is stored as sent.
func (h *AppointmentHandler) Book(c *gin.Context) {
	var appointment entity.VetAppointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		slog.Warn("appointment validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	appointment.ID = 0

	if err := h.uc.Book(c.Request.Context(), &appointment); err != nil {
		slog.Error("appointment booking failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error saving appointment"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Vet appointment booked successfully!"})
}
