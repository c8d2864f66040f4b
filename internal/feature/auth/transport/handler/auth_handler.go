// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfinders_backend/internal/api"
	"pawfinders_backend/internal/feature/auth/domain/entity"
	"pawfinders_backend/internal/feature/auth/transport/http/dto"
	"pawfinders_backend/internal/feature/auth/usecase"
	jwtmw "pawfinders_backend/internal/platform/jwt"
)

// AuthUsecase defines the authentication operations used by the handlers.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, in usecase.RegisterInput) error
	// Login authenticates the user and returns a JWT on success.
	Login(ctx context.Context, email, password string) (string, error)
	// Profile returns the user record for an authenticated user ID.
	Profile(ctx context.Context, id uint) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /register.
// - binds the request JSON, 400 on validation failure
// - 400 when the email is already registered
// - 500 on storage failure
// - 201 on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Name:        req.Name,
		Contact:     req.Contact,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Password:    req.Password,
		Country:     req.Country,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email already registered"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "User registered successfully"})
}

// Login handles POST /login.
// - binds the request JSON, 400 on validation failure
// - 400 when the email is unknown or the password does not match
// - 200 with a token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("login unknown email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "User not found"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login invalid credentials", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid credentials"})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		}
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Message: "Login successful", Token: token})
}

// Profile handles GET /api/profile for authenticated users.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), userID.(uint))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
			return
		}
		slog.Error("profile lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
