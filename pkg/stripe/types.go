package stripe

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Timestamp wraps time.Time and travels as integer seconds since the Unix
// epoch, which is how the API represents every instant on the wire. Decoding
// and re-encoding a wire value yields the identical integer.
type Timestamp struct {
	time.Time
}

// NewTimestamp creates a Timestamp truncated to whole seconds.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second)}
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.Unix(), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	secs, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("parsing unix timestamp: %w", err)
	}

	t.Time = time.Unix(secs, 0).UTC()

	return nil
}

// EncodeFormValues implements FormEncoder. Zero timestamps are omitted.
func (t Timestamp) EncodeFormValues(values url.Values, key string) error {
	if t.IsZero() {
		return nil
	}

	values.Set(key, strconv.FormatInt(t.Unix(), 10))

	return nil
}

// Currency is a three-letter ISO currency code.
type Currency string

// Commonly used currencies.
const (
	AUD Currency = "aud"
	CAD Currency = "cad"
	EUR Currency = "eur"
	GBP Currency = "gbp"
	JPY Currency = "jpy"
	USD Currency = "usd"
)

// Deleted is the envelope delete endpoints return.
type Deleted struct {
	ID      string `json:"id"      yaml:"id"`
	Object  string `json:"object"  yaml:"object"`
	Deleted bool   `json:"deleted" yaml:"deleted"`
}

// Params carries the request options shared by every mutating call.
type Params struct {
	// IdempotencyKey is reused verbatim across every retry of this call. If
	// empty, the client mints one before the first attempt.
	IdempotencyKey string `form:"-" yaml:"-"`
	// StripeAccount routes the call to a connected account.
	StripeAccount string            `form:"-"        yaml:"-"`
	Expand        []string          `form:"expand"   yaml:"expand,omitempty"`
	Metadata      map[string]string `form:"metadata" yaml:"metadata,omitempty"`
}
