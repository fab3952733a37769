package stripe

import (
	"context"
	"time"
)

// ChargesClient provides access to charge operations.
type ChargesClient interface {
	Create(ctx context.Context, params *ChargeParams) (*Charge, error)
	Get(ctx context.Context, id string) (*Charge, error)
	Update(ctx context.Context, id string, params *ChargeUpdateParams) (*Charge, error)
	Capture(ctx context.Context, id string, params *CaptureParams) (*Charge, error)
	List(ctx context.Context, params *ChargeListParams) (*List[Charge], error)
}

// CustomersClient provides access to customer operations.
type CustomersClient interface {
	Create(ctx context.Context, params *CustomerParams) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, id string, params *CustomerParams) (*Customer, error)
	Delete(ctx context.Context, id string, params *Params) (*Deleted, error)
	List(ctx context.Context, params *CustomerListParams) (*List[Customer], error)
}

// TransfersClient provides access to transfer operations.
type TransfersClient interface {
	Create(ctx context.Context, params *TransferParams) (*Transfer, error)
	Get(ctx context.Context, id string) (*Transfer, error)
	Update(ctx context.Context, id string, params *TransferUpdateParams) (*Transfer, error)
	List(ctx context.Context, params *TransferListParams) (*List[Transfer], error)
}

// Client provides access to all resource-specific clients plus the account
// balance endpoint.
type Client interface {
	Charges() ChargesClient
	Customers() CustomersClient
	Transfers() TransfersClient

	GetBalance(ctx context.Context) (*Balance, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a stripe.Client.
//
// # Authentication
//
// APIKey is the secret key, sent as the Basic-auth username with an empty
// password on every request. It is never logged, even in debug mode.
//
// # Idempotency and retries
//
// Mutating calls carry an Idempotency-Key header: the key set on the call's
// Params if the caller supplied one, otherwise one minted by the client
// before the first attempt. The same key is reused verbatim on every retry
// of that call; each logical call gets its own key. Retry behavior can be
// tuned via RetryMax/RetryWaitMin/RetryWaitMax; only failures whose
// classified kind is safe to reissue (connection errors, rate limits,
// transient server errors, api_error responses) are retried.
type Config struct {
	// APIKey: secret API key used for Basic authentication. Required.
	APIKey string

	// Endpoint: base URL for the API. stripeclient.New normalizes this value
	// by trimming a trailing slash and adding "https://" if no scheme is
	// present; it defaults to the live API endpoint when empty.
	Endpoint string

	// APIVersion: optional value for the Stripe-Version header, pinning the
	// wire schema the client was built against.
	APIVersion string

	// HTTPTimeout: overall per-attempt HTTP timeout. Most calls should rely
	// on context timeouts; this is the transport-level ceiling.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries after the first attempt. RetryMax
	// of k yields at most k+1 attempts per logical call. If 0, a default is
	// used by the client; use NoRetries to disable retrying entirely.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// NoRetries: disables automatic retrying regardless of RetryMax.
	NoRetries bool
	// Debug: enables verbose request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
