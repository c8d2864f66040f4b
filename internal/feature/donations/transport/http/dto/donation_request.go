// Package dto defines data transfer objects for the donations feature's HTTP
// transport layer.
package dto

import "pawfinders_backend/internal/feature/donations/domain/entity"

// DonationReq represents the request body for the /donate endpoint.
type DonationReq struct {
	DonorName      string             `json:"donorName" binding:"required"`
	DonorContact   string             `json:"donorContact" binding:"required"`
	DonorEmail     string             `json:"donorEmail" binding:"required,email"`
	DonorAddress   string             `json:"donorAddress"`
	DonationType   string             `json:"donationType" binding:"required,oneof=pet money both"`
	PetDetails     *entity.PetDetails `json:"petDetails"`
	DonationAmount *float64           `json:"donationAmount"`
}
