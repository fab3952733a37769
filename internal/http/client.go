// Package http implements the transport layer shared by every resource
// client: authentication, idempotency headers, retry handling, and error
// classification.
package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	cleanhttp "github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/mdedetrich/stripe-go/internal/constants"
	"github.com/mdedetrich/stripe-go/pkg/stripe"
)

// Header names used by the protocol.
const (
	headerIdempotencyKey = "Idempotency-Key"
	headerStripeAccount  = "Stripe-Account"
	headerStripeVersion  = "Stripe-Version"
)

// Request represents one API request before execution.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   url.Values

	// IdempotencyKey is attached as-is on every physical attempt of this
	// request. Post and Delete mint one when the caller supplied none.
	IdempotencyKey string
	// StripeAccount routes the call to a connected account.
	StripeAccount string
}

// Response represents an API response with a fully read body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// RequestOptions carries the per-call headers a resource client may set.
type RequestOptions struct {
	IdempotencyKey string
	StripeAccount  string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger for the client.
func WithLogger(logger stripe.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAPIVersion pins the Stripe-Version header sent on every request.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.retry.HTTPClient = httpClient
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retry.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig tunes the retry budget and backoff bounds. A retryMax of k
// yields at most k+1 attempts per logical call; 0 disables retrying.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retry.RetryMax = retryMax
		c.retry.RetryWaitMin = waitMin
		c.retry.RetryWaitMax = waitMax
	}
}

// WithKeyGenerator replaces the idempotency key generator.
func WithKeyGenerator(generate func() string) Option {
	return func(c *Client) {
		c.newKey = generate
	}
}

// Client executes API requests. The API key is attached as the Basic-auth
// username with an empty password; it is never written to the logger. The
// underlying connection pool is safe for concurrent use by many simultaneous
// logical calls; attempts within one call are strictly sequential.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	apiVersion string
	debug      bool
	logger     stripe.Logger
	newKey     func() string
	retry      *retryablehttp.Client
}

// NewClient creates a new API client.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retry := retryablehttp.NewClient()
	retry.HTTPClient = cleanhttp.DefaultPooledClient()
	retry.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retry.RetryMax = constants.DefaultRetryMax
	retry.RetryWaitMin = constants.DefaultRetryWaitMin
	retry.RetryWaitMax = constants.DefaultRetryWaitMax
	retry.Logger = nil
	retry.CheckRetry = retryPolicy
	retry.ErrorHandler = exhaustedHandler

	client := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		apiKey:    apiKey,
		userAgent: constants.DefaultUserAgent,
		newKey:    uuid.NewString,
		retry:     retry,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get issues a GET request. GET never carries an idempotency header.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a form-encoded body. A missing idempotency
// key is minted once here, before the first attempt, so every retry of this
// logical call reissues the identical key.
func (c *Client) Post(ctx context.Context, path string, form url.Values, opts *RequestOptions) (*Response, error) {
	req := &Request{Method: http.MethodPost, Path: path, Body: form}
	c.applyOptions(req, opts)

	return c.Do(ctx, req)
}

// Delete issues a DELETE request. Like Post, a missing idempotency key is
// minted before the first attempt.
func (c *Client) Delete(ctx context.Context, path string, opts *RequestOptions) (*Response, error) {
	req := &Request{Method: http.MethodDelete, Path: path}
	c.applyOptions(req, opts)

	return c.Do(ctx, req)
}

func (c *Client) applyOptions(req *Request, opts *RequestOptions) {
	if opts != nil {
		req.IdempotencyKey = opts.IdempotencyKey
		req.StripeAccount = opts.StripeAccount
	}

	if req.IdempotencyKey == "" {
		req.IdempotencyKey = c.newKey()
	}
}

// Do executes the request, retrying transient failures and classifying every
// non-2xx outcome into the error taxonomy.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	c.logDebug("API request", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
		"params": req.Body.Encode(),
	})

	resp, err := c.retry.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logDebug("API response", map[string]interface{}{
		"method":      req.Method,
		"path":        req.Path,
		"status_code": resp.StatusCode,
	})

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return &Response{StatusCode: resp.StatusCode, Headers: resp.Header, Body: body}, nil
	}

	return nil, stripe.ClassifyResponse(resp.StatusCode, body)
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var rawBody interface{}
	if req.Body != nil {
		rawBody = []byte(req.Body.Encode())
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.SetBasicAuth(c.apiKey, "")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if c.apiVersion != "" {
		httpReq.Header.Set(headerStripeVersion, c.apiVersion)
	}

	if req.IdempotencyKey != "" {
		httpReq.Header.Set(headerIdempotencyKey, req.IdempotencyKey)
	}

	if req.StripeAccount != "" {
		httpReq.Header.Set(headerStripeAccount, req.StripeAccount)
	}

	return httpReq, nil
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

// retryPolicy decides whether an attempt's outcome permits another attempt.
// The decision keys off the classified kind, not the raw status: connection
// errors, rate limits, transient server errors, and decoded api_error /
// api_connection_error bodies are retryable; every other classified error is
// terminal. A cancelled context stops all further transitions.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		// transport failure: the request's effect is unknown, reissuing is
		// safe under the unchanged idempotency key
		return true, nil
	}

	if resp == nil {
		return false, nil
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return false, nil
	}

	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if readErr != nil {
		return false, fmt.Errorf("reading response body: %w", readErr)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))

	return stripe.Retryable(stripe.ClassifyResponse(resp.StatusCode, body)), nil
}

// exhaustedHandler converts an exhausted retry budget into MaxRetriesError
// wrapping the final attempt's classified failure. Context errors pass
// through untouched so callers see their own cancellation.
func exhaustedHandler(resp *http.Response, err error, numTries int) (*http.Response, error) {
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		if resp != nil {
			_ = resp.Body.Close()
		}

		return nil, err
	}

	last := err
	if err != nil {
		last = &stripe.ConnectionError{Err: err}
	}

	if resp != nil {
		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		if readErr == nil {
			last = stripe.ClassifyResponse(resp.StatusCode, body)
		}
	}

	return nil, &stripe.MaxRetriesError{Attempts: numTries, LastErr: last}
}
