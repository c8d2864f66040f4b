// Package dto defines data transfer objects for the adoptions feature's HTTP
// transport layer.
package dto

// ApplyReq represents the request body for the /apply-adoption endpoint.
// The agree flag is validated in the usecase so a false value yields the
// dedicated agreement error, not a generic binding error.
type ApplyReq struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required"`
	Country string `json:"country" binding:"required"`
	Pet     string `json:"pet" binding:"required"`
	Agree   bool   `json:"agree"`
}
