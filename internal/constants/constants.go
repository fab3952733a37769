// Package constants holds shared timeouts, limits, and defaults.
package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default per-attempt timeout for API requests.
	DefaultHTTPTimeout = 80 * time.Second
)

// Retry limits and backoff bounds.
const (
	// DefaultRetryMax is the default number of retries after the first
	// attempt.
	DefaultRetryMax = 2

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API endpoints and versions.
const (
	// DefaultEndpoint is the live API endpoint.
	DefaultEndpoint = "https://api.stripe.com"

	// DefaultUserAgent identifies this client on the wire.
	DefaultUserAgent = "stripe-go/1.0.0"
)
