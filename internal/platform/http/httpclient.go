package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client configured for outbound calls to
// external services such as the payment processor.
//
// http.DefaultClient has no timeout, so outbound requests always go through
// this client. The transport is configured explicitly for connection
// stability and resource management:
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - MaxIdleConns: capped at 100 to avoid exhaustion under load
//   - Client.Timeout: whole-request timeout supplied by the caller
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
