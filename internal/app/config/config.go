// Package config loads and validates the application configuration from
// environment variables. Secrets and merchant credentials are required and
// have no embedded fallbacks: if any are missing, Load reports all of them
// at once and the server refuses to start.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the read-only application configuration. It is populated once
// at startup and never mutated afterwards.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// AppBaseURL is the externally reachable base URL of this server. It is
	// embedded into the payment redirect URL handed to the processor.
	AppBaseURL string

	// FrontendDir is the directory the static frontend is served from.
	FrontendDir string

	// UploadDir is the directory uploaded pet images are stored in.
	UploadDir string

	// JWTSecret signs login tokens. Required.
	JWTSecret string

	// PhonePe merchant credentials. MerchantID and SaltKey are required;
	// SaltIndex identifies which salt key version signed a request.
	PhonePeBaseURL string
	MerchantID     string
	SaltKey        string
	SaltIndex      int
	MobileNumber   string
}

// Load reads the configuration from the environment. All missing required
// variables are collected and reported in a single error.
func Load() (*Config, error) {
	var missing []string

	required := func(key string) string {
		v := os.Getenv(key)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	optional := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Port:           optional("PORT", "5000"),
		AppBaseURL:     required("APP_BASE_URL"),
		FrontendDir:    optional("FRONTEND_DIR", "./frontend"),
		UploadDir:      optional("UPLOAD_DIR", "./uploads"),
		JWTSecret:      required("JWT_SECRET"),
		PhonePeBaseURL: required("PHONEPE_BASE_URL"),
		MerchantID:     required("PHONEPE_MERCHANT_ID"),
		SaltKey:        required("PHONEPE_SALT_KEY"),
		MobileNumber:   optional("PHONEPE_MOBILE_NUMBER", "9999999999"),
	}

	saltIndex := optional("PHONEPE_SALT_INDEX", "1")
	idx, err := strconv.Atoi(saltIndex)
	if err != nil {
		return nil, fmt.Errorf("PHONEPE_SALT_INDEX must be an integer, got %q", saltIndex)
	}
	cfg.SaltIndex = idx

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
