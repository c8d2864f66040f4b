// Package dto defines data transfer objects for the visits feature's HTTP
// transport layer.
package dto

// VisitReq represents the request body for the /schedule-visit endpoint.
type VisitReq struct {
	Name      string `json:"name" binding:"required"`
	Contact   string `json:"contact" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	VisitDate string `json:"visitDate" binding:"required"`
	VisitTime string `json:"visitTime" binding:"required"`
	Pet       string `json:"pet" binding:"required"`
}
