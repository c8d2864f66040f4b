// Package api defines the shared HTTP response envelopes used by all
// transport handlers.
package api

// MessageResponse is the generic success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic failure envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse is returned by /login on successful authentication.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
