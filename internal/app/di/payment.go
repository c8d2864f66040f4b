// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"time"

	"pawfinders_backend/internal/app/config"
	"pawfinders_backend/internal/platform/externalapi/phonepe"
	infrahttp "pawfinders_backend/internal/platform/http"
)

// NewPaymentGateway creates a fully configured PhonePe client with an HTTP
// client carrying an explicit timeout.
func NewPaymentGateway(cfg *config.Config) *phonepe.Client {
	gatewayCfg := phonepe.Config{
		BaseURL:      cfg.PhonePeBaseURL,
		MerchantID:   cfg.MerchantID,
		SaltKey:      cfg.SaltKey,
		SaltIndex:    cfg.SaltIndex,
		MobileNumber: cfg.MobileNumber,
		Timeout:      10 * time.Second,
	}
	httpClient := infrahttp.NewHTTPClient(gatewayCfg.Timeout)
	return phonepe.NewClient(gatewayCfg, httpClient)
}
