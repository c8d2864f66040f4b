// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// Gin's binding tags validate presence and email format.
type RegisterReq struct {
	Name        string `json:"name" binding:"required"`
	Contact     string `json:"contact" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	DateOfBirth string `json:"dob"`
	Password    string `json:"password" binding:"required"`
	Country     string `json:"country"`
}
