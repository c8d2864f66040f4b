package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"pawfinders_backend/internal/feature/auth/domain/entity"
	"pawfinders_backend/internal/feature/auth/usecase"
	jwtmw "pawfinders_backend/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, in usecase.RegisterInput) error
	LoginFunc    func(ctx context.Context, email, password string) (string, error)
	ProfileFunc  func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, in usecase.RegisterInput) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	return nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", errors.New("login failed")
}

func (m *mockAuthUsecase) Profile(ctx context.Context, id uint) (*entity.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, id)
	}
	return nil, usecase.ErrUserNotFound
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validBody := gin.H{
		"name":     "Asha",
		"contact":  "9876543210",
		"email":    "asha@example.com",
		"dob":      "1995-04-12",
		"password": "password123",
		"country":  "India",
	}

	tests := []struct {
		name             string
		requestBody      gin.H
		mockRegisterFunc func(ctx context.Context, in usecase.RegisterInput) error
		expectedStatus   int
		expectedBody     gin.H
	}{
		{
			name:             "success: user registration",
			requestBody:      validBody,
			mockRegisterFunc: func(ctx context.Context, in usecase.RegisterInput) error { return nil },
			expectedStatus:   http.StatusCreated,
			expectedBody:     gin.H{"message": "User registered successfully"},
		},
		{
			name:             "failure: invalid email address",
			requestBody:      gin.H{"name": "Asha", "contact": "9876543210", "email": "invalid-email", "password": "password123"},
			mockRegisterFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
			expectedBody:     gin.H{"error": "Key: 'RegisterReq.Email' Error:Field validation for 'Email' failed on the 'email' tag"},
		},
		{
			name:             "failure: missing name",
			requestBody:      gin.H{"contact": "9876543210", "email": "asha@example.com", "password": "password123"},
			mockRegisterFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
			expectedBody:     gin.H{"error": "Key: 'RegisterReq.Name' Error:Field validation for 'Name' failed on the 'required' tag"},
		},
		{
			name:        "failure: duplicate email",
			requestBody: validBody,
			mockRegisterFunc: func(ctx context.Context, in usecase.RegisterInput) error {
				return usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "Email already registered"},
		},
		{
			name:        "failure: storage error",
			requestBody: validBody,
			mockRegisterFunc: func(ctx context.Context, in usecase.RegisterInput) error {
				return errors.New("database down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "Server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegisterFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/register", handler.Register)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)

			// Error messages include Gin validation error details, so check partial match
			if tt.expectedStatus == http.StatusBadRequest && tt.mockRegisterFunc == nil {
				assert.Contains(t, responseBody["error"], tt.expectedBody["error"])
			} else {
				assert.Equal(t, tt.expectedBody, responseBody)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"email": "asha@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "dummy-jwt-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"message": "Login successful", "token": "dummy-jwt-token"},
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "password123"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "Key: 'LoginReq.Email' Error:Field validation for 'Email' failed on the 'email' tag"},
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "asha@example.com"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "Key: 'LoginReq.Password' Error:Field validation for 'Password' failed on the 'required' tag"},
		},
		{
			name:        "failure: unknown email",
			requestBody: gin.H{"email": "nobody@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrUserNotFound
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "User not found"},
		},
		{
			name:        "failure: wrong password",
			requestBody: gin.H{"email": "asha@example.com", "password": "wrong-password"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "Invalid credentials"},
		},
		{
			name:        "failure: token generation error",
			requestBody: gin.H{"email": "asha@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", errors.New("signing error")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "Server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/login", handler.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)

			// Error messages include Gin validation error details, so check partial match
			if tt.expectedStatus == http.StatusBadRequest && tt.mockLoginFunc == nil {
				assert.Contains(t, responseBody["error"], tt.expectedBody["error"])
			} else {
				assert.Equal(t, tt.expectedBody, responseBody)
			}
		})
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: returns the user record", func(t *testing.T) {
		stored := &entity.User{Name: "Asha", Email: "asha@example.com"}
		stored.ID = 42
		mockUC := &mockAuthUsecase{
			ProfileFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				assert.Equal(t, uint(42), id)
				return stored, nil
			},
		}
		handler := NewAuthHandler(mockUC)

		router := gin.New()
		router.GET("/api/profile", func(c *gin.Context) {
			// The JWT middleware normally sets this from the bearer token
			c.Set(jwtmw.ContextUserID, uint(42))
		}, handler.Profile)

		req, _ := http.NewRequest(http.MethodGet, "/api/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseBody gin.H
		err := json.Unmarshal(w.Body.Bytes(), &responseBody)
		assert.NoError(t, err)
		assert.Equal(t, "asha@example.com", responseBody["email"])
		// The password hash must never serialize
		assert.NotContains(t, responseBody, "password")
	})

	t.Run("failure: no user in context", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.GET("/api/profile", handler.Profile)

		req, _ := http.NewRequest(http.MethodGet, "/api/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("failure: user no longer exists", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			ProfileFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return nil, usecase.ErrUserNotFound
			},
		}
		handler := NewAuthHandler(mockUC)

		router := gin.New()
		router.GET("/api/profile", func(c *gin.Context) {
			c.Set(jwtmw.ContextUserID, uint(7))
		}, handler.Profile)

		req, _ := http.NewRequest(http.MethodGet, "/api/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
