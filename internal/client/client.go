// Package client provides the concrete implementation of stripe.Client.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mdedetrich/stripe-go/internal/constants"
	"github.com/mdedetrich/stripe-go/internal/http"
	"github.com/mdedetrich/stripe-go/pkg/stripe"
)

// Client implements the stripe.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     stripe.Logger

	// Resource clients
	charges   stripe.ChargesClient
	customers stripe.CustomersClient
	transfers stripe.TransfersClient
}

// New creates a new API client.
func New(config *stripe.Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, stripe.ErrAPIKeyRequired
	}

	if config.Endpoint == "" {
		return nil, stripe.ErrEndpointRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.Endpoint, config.APIKey, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.Endpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *stripe.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.APIVersion != "" {
		httpOpts = append(httpOpts, http.WithAPIVersion(config.APIVersion))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	switch {
	case config.NoRetries:
		httpOpts = append(httpOpts, http.WithRetryConfig(0, constants.DefaultRetryWaitMin, constants.DefaultRetryWaitMax))
	case config.RetryMax > 0:
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.charges = NewChargesClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.transfers = NewTransfersClient(c.httpClient)
}

// Charges implements stripe.Client.Charges.
func (c *Client) Charges() stripe.ChargesClient {
	return c.charges
}

// Customers implements stripe.Client.Customers.
func (c *Client) Customers() stripe.CustomersClient {
	return c.customers
}

// Transfers implements stripe.Client.Transfers.
func (c *Client) Transfers() stripe.TransfersClient {
	return c.transfers
}

// GetBalance implements stripe.Client.GetBalance.
func (c *Client) GetBalance(ctx context.Context) (*stripe.Balance, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/balance", nil)
	if err != nil {
		return nil, fmt.Errorf("getting balance: %w", err)
	}

	var balance stripe.Balance

	err = json.Unmarshal(resp.Body, &balance)
	if err != nil {
		return nil, stripe.NewProtocolError(resp.StatusCode, resp.Body, err)
	}

	return &balance, nil
}

// requestOptions maps shared params onto the transport's per-call headers.
func requestOptions(params *stripe.Params) *http.RequestOptions {
	if params == nil {
		return nil
	}

	return &http.RequestOptions{
		IdempotencyKey: params.IdempotencyKey,
		StripeAccount:  params.StripeAccount,
	}
}
