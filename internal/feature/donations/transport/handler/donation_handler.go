// Package handler provides the HTTP handlers for the donations feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfinders_backend/internal/api"
	"pawfinders_backend/internal/feature/donations/domain/entity"
	"pawfinders_backend/internal/feature/donations/transport/http/dto"
)

// DonationUsecase defines the donation operations used by the handlers.
type DonationUsecase interface {
	Record(ctx context.Context, donation *entity.Donation) error
	List(ctx context.Context) ([]entity.Donation, error)
}

// DonationHandler handles HTTP requests for donations.
type DonationHandler struct {
	uc DonationUsecase
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(uc DonationUsecase) *DonationHandler {
	return &DonationHandler{uc: uc}
}

// Donate handles POST /donate.
func (h *DonationHandler) Donate(c *gin.Context) {
	var req dto.DonationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("donation validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	donation := &entity.Donation{
		DonorName:      req.DonorName,
		DonorContact:   req.DonorContact,
		DonorEmail:     req.DonorEmail,
		DonorAddress:   req.DonorAddress,
		DonationType:   req.DonationType,
		PetDetails:     req.PetDetails,
		DonationAmount: req.DonationAmount,
	}
	if err := h.uc.Record(c.Request.Context(), donation); err != nil {
		slog.Error("donation record failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error saving donation details"})
		return
	}

	c.JSON(http.StatusCreated, api.MessageResponse{Message: "Donation recorded successfully!"})
}

// List handles GET /getDonations.
func (h *DonationHandler) List(c *gin.Context) {
	donations, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("donation list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error fetching donations"})
		return
	}
	c.JSON(http.StatusOK, donations)
}
