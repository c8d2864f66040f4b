// Package phonepe provides a client for the PhonePe payment gateway API.
package phonepe

import "time"

// Config holds the merchant credentials and endpoint configuration for the
// PhonePe client. Values come from the application configuration; there are
// no embedded defaults for credentials.
type Config struct {
	BaseURL      string        // Gateway base URL (e.g. the pg-sandbox host)
	MerchantID   string        // Merchant identifier issued by PhonePe
	SaltKey      string        // Shared secret used to sign requests
	SaltIndex    int           // Identifies which salt key version signed a request
	MobileNumber string        // Mobile number sent with the pay payload
	Timeout      time.Duration // HTTP request timeout
}
