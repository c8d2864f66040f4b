// Package handler provides the HTTP handlers for the visits feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfinders_backend/internal/api"
	"pawfinders_backend/internal/feature/visits/domain/entity"
	"pawfinders_backend/internal/feature/visits/transport/http/dto"
)

// VisitUsecase defines the visit operations used by the handler.
type VisitUsecase interface {
	Schedule(ctx context.Context, visit *entity.Visit) error
}

// VisitHandler handles HTTP requests for visit scheduling.
type VisitHandler struct {
	uc VisitUsecase
}

// NewVisitHandler creates a new VisitHandler.
func NewVisitHandler(uc VisitUsecase) *VisitHandler {
	return &VisitHandler{uc: uc}
}

// Schedule handles POST /schedule-visit.
func (h *VisitHandler) Schedule(c *gin.Context) {
	var req dto.VisitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("visit validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	visit := &entity.Visit{
		Name:      req.Name,
		Contact:   req.Contact,
		Email:     req.Email,
		VisitDate: req.VisitDate,
		VisitTime: req.VisitTime,
		Pet:       req.Pet,
	}
	if err := h.uc.Schedule(c.Request.Context(), visit); err != nil {
		slog.Error("visit scheduling failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error scheduling visit"})
		return
	}

	c.JSON(http.StatusCreated, api.MessageResponse{Message: "Visit scheduled successfully!"})
}
