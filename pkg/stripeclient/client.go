// Package stripeclient provides the main entry point for creating payments
// API clients.
package stripeclient

import (
	"strings"

	"github.com/mdedetrich/stripe-go/internal/client"
	"github.com/mdedetrich/stripe-go/internal/constants"
	"github.com/mdedetrich/stripe-go/pkg/stripe"
)

// New creates a new API client from the given configuration. The endpoint is
// normalized (trailing slash trimmed, "https://" added when no scheme is
// present) and defaults to the live API endpoint when empty.
func New(config *stripe.Config) (stripe.Client, error) {
	if config == nil {
		return nil, stripe.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, stripe.ErrAPIKeyRequired
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	return client.New(config)
}

// NewWithKey creates a new client for the live API with just an API key.
func NewWithKey(apiKey string) (stripe.Client, error) {
	return New(&stripe.Config{APIKey: apiKey})
}
