// Package handler provides the HTTP handlers for the adoptions feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfinders_backend/internal/api"
	"pawfinders_backend/internal/feature/adoptions/transport/http/dto"
	"pawfinders_backend/internal/feature/adoptions/usecase"
)

// AdoptionUsecase defines the adoption operations used by the handler.
type AdoptionUsecase interface {
	Apply(ctx context.Context, in usecase.ApplyInput) error
}

// AdoptionHandler handles HTTP requests for adoption applications.
type AdoptionHandler struct {
	uc AdoptionUsecase
}

// NewAdoptionHandler creates a new AdoptionHandler.
func NewAdoptionHandler(uc AdoptionUsecase) *AdoptionHandler {
	return &AdoptionHandler{uc: uc}
}

// Apply handles POST /apply-adoption. Applications without the agreement
// flag are rejected with 400 and create no record.
func (h *AdoptionHandler) Apply(c *gin.Context) {
	var req dto.ApplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("adoption validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.uc.Apply(c.Request.Context(), usecase.ApplyInput{
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Address: req.Address,
		Country: req.Country,
		Pet:     req.Pet,
		Agree:   req.Agree,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrAgreementRequired) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "You must agree to provide a safe and loving home."})
			return
		}
		slog.Error("adoption application failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error while processing your application"})
		return
	}

	c.JSON(http.StatusCreated, api.MessageResponse{Message: "Adoption application submitted successfully!"})
}
