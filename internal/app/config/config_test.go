package config

import (
	"strings"
	"testing"
)

// setRequiredEnv sets every required variable so individual tests can unset
// the one they exercise.
func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("APP_BASE_URL", "http://localhost:5000")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PHONEPE_BASE_URL", "https://api-preprod.phonepe.com/apis/pg-sandbox")
	t.Setenv("PHONEPE_MERCHANT_ID", "MID123")
	t.Setenv("PHONEPE_SALT_KEY", "test-salt-key")
}

func TestLoad_AllRequiredSet(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppBaseURL != "http://localhost:5000" {
		t.Errorf("unexpected AppBaseURL %q", cfg.AppBaseURL)
	}
	if cfg.JWTSecret != "test-secret" {
		t.Errorf("unexpected JWTSecret %q", cfg.JWTSecret)
	}
	if cfg.MerchantID != "MID123" {
		t.Errorf("unexpected MerchantID %q", cfg.MerchantID)
	}
	if cfg.SaltKey != "test-salt-key" {
		t.Errorf("unexpected SaltKey %q", cfg.SaltKey)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("FRONTEND_DIR", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("PHONEPE_SALT_INDEX", "")
	t.Setenv("PHONEPE_MOBILE_NUMBER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.FrontendDir != "./frontend" {
		t.Errorf("expected default frontend dir, got %q", cfg.FrontendDir)
	}
	if cfg.UploadDir != "./uploads" {
		t.Errorf("expected default upload dir, got %q", cfg.UploadDir)
	}
	if cfg.SaltIndex != 1 {
		t.Errorf("expected default salt index 1, got %d", cfg.SaltIndex)
	}
	if cfg.MobileNumber != "9999999999" {
		t.Errorf("expected default mobile number, got %q", cfg.MobileNumber)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("PHONEPE_SALT_INDEX", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.SaltIndex != 3 {
		t.Errorf("expected salt index 3, got %d", cfg.SaltIndex)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PHONEPE_SALT_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error but got nil")
	}

	// All missing variables are reported at once
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("error should name JWT_SECRET: %v", err)
	}
	if !strings.Contains(err.Error(), "PHONEPE_SALT_KEY") {
		t.Errorf("error should name PHONEPE_SALT_KEY: %v", err)
	}
}

func TestLoad_InvalidSaltIndex(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PHONEPE_SALT_INDEX", "abc")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "PHONEPE_SALT_INDEX") {
		t.Errorf("error should name PHONEPE_SALT_INDEX: %v", err)
	}
}
