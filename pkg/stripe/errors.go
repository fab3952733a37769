package stripe

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorType identifies the class of failure reported by the API. The set is
// closed; classification and retry decisions key off it.
type ErrorType string

const (
	ErrorTypeAPI            ErrorType = "api_error"
	ErrorTypeAPIConnection  ErrorType = "api_connection_error"
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeCard           ErrorType = "card_error"
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error"
	ErrorTypeRateLimit      ErrorType = "rate_limit_error"
)

// ErrorCode is the card/validation sub-reason, independent of ErrorType.
type ErrorCode string

const (
	ErrorCodeCardDeclined       ErrorCode = "card_declined"
	ErrorCodeExpiredCard        ErrorCode = "expired_card"
	ErrorCodeIncorrectCVC       ErrorCode = "incorrect_cvc"
	ErrorCodeIncorrectNumber    ErrorCode = "incorrect_number"
	ErrorCodeIncorrectZip       ErrorCode = "incorrect_zip"
	ErrorCodeInvalidCVC         ErrorCode = "invalid_cvc"
	ErrorCodeInvalidExpiryMonth ErrorCode = "invalid_expiry_month"
	ErrorCodeInvalidExpiryYear  ErrorCode = "invalid_expiry_year"
	ErrorCodeInvalidNumber      ErrorCode = "invalid_number"
	ErrorCodeMissing            ErrorCode = "missing"
	ErrorCodeProcessingError    ErrorCode = "processing_error"
	ErrorCodeRateLimit          ErrorCode = "rate_limit"
)

// Error is the structured error object from the API's error envelope.
type Error struct {
	HTTPStatus int       `json:"-"                 yaml:"-"`
	Type       ErrorType `json:"type"              yaml:"type"`
	Code       ErrorCode `json:"code,omitempty"    yaml:"code,omitempty"`
	Message    string    `json:"message,omitempty" yaml:"message,omitempty"`
	Param      string    `json:"param,omitempty"   yaml:"param,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status: %d)", e.Type, e.HTTPStatus)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.Type, e.Message, e.HTTPStatus)
}

// errorEnvelope mirrors the wire shape {"error": {...}}.
type errorEnvelope struct {
	Error *Error `json:"error"`
}

// The five status-keyed request error variants. The variant is determined
// solely by the HTTP status; the embedded *Error carries the decoded body.

// BadRequestError reports a 400 response.
type BadRequestError struct{ Err *Error }

func (e *BadRequestError) Error() string { return e.Err.Error() }
func (e *BadRequestError) Unwrap() error { return e.Err }

// UnauthorizedError reports a 401 response.
type UnauthorizedError struct{ Err *Error }

func (e *UnauthorizedError) Error() string { return e.Err.Error() }
func (e *UnauthorizedError) Unwrap() error { return e.Err }

// RequestFailedError reports a 402 response.
type RequestFailedError struct{ Err *Error }

func (e *RequestFailedError) Error() string { return e.Err.Error() }
func (e *RequestFailedError) Unwrap() error { return e.Err }

// NotFoundError reports a 404 response.
type NotFoundError struct{ Err *Error }

func (e *NotFoundError) Error() string { return e.Err.Error() }
func (e *NotFoundError) Unwrap() error { return e.Err }

// TooManyRequestsError reports a 429 response. Always retryable.
type TooManyRequestsError struct{ Err *Error }

func (e *TooManyRequestsError) Error() string { return e.Err.Error() }
func (e *TooManyRequestsError) Unwrap() error { return e.Err }

// ServerError reports a transient 5xx (500/502/503/504) response. The body
// is carried raw; no decode is attempted. Always retryable.
type ServerError struct {
	StatusCode int
	Body       []byte
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (status: %d)", e.StatusCode)
}

// ConnectionError reports a transport-level failure before any response was
// received. The request's effect is unknown, so it is always retryable under
// the same idempotency key.
type ConnectionError struct{ Err error }

func (e *ConnectionError) Error() string { return fmt.Sprintf("connection error: %v", e.Err) }
func (e *ConnectionError) Unwrap() error { return e.Err }

// ProtocolError reports a response outside the protocol: an unhandled status
// or a body that failed to decode against the expected schema. Never retried.
type ProtocolError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// NewProtocolError wraps a schema mismatch with the raw response for debugging.
func NewProtocolError(statusCode int, body []byte, err error) *ProtocolError {
	return &ProtocolError{StatusCode: statusCode, Body: body, Err: err}
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error (status: %d): %v: %s", e.StatusCode, e.Err, truncateBody(e.Body))
}

func (e *ProtocolError) Unwrap() error { return e.Err }

const maxBodyInError = 200

func truncateBody(body []byte) string {
	if len(body) > maxBodyInError {
		return string(body[:maxBodyInError]) + "..."
	}

	return string(body)
}

// MaxRetriesError reports that the retry budget was exhausted. It wraps the
// last classified failure so callers can tell "gave up" apart from
// "definitively rejected" and still inspect the final attempt's outcome.
type MaxRetriesError struct {
	Attempts int
	LastErr  error
}

func (e *MaxRetriesError) Error() string {
	if e.LastErr == nil {
		return fmt.Sprintf("request failed after %d attempts", e.Attempts)
	}

	return fmt.Sprintf("request failed after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *MaxRetriesError) Unwrap() error { return e.LastErr }

// Static errors for err113 compliance.
var (
	ErrUnhandledStatus    = errors.New("unhandled response status")
	ErrMissingErrorObject = errors.New("error envelope has no error object")
	ErrConfigRequired     = errors.New("config is required")
	ErrAPIKeyRequired     = errors.New("API key is required")
	ErrEndpointRequired   = errors.New("API endpoint is required")
	ErrParamsRequired     = errors.New("params are required")
	ErrNoMoreItems        = errors.New("no more items")

	ErrAmountInvalid                  = errors.New("amount must be greater than zero")
	ErrCurrencyRequired               = errors.New("currency is required")
	ErrDestinationRequired            = errors.New("destination is required")
	ErrSourceConflict                 = errors.New("source params: token and card are mutually exclusive")
	ErrCreatedFilterConflict          = errors.New("created filter: timestamp and range are mutually exclusive")
	ErrStatementDescriptorTooLong     = errors.New("statement descriptor must be at most 22 characters")
	ErrStatementDescriptorInvalidChar = errors.New(`statement descriptor must not contain <, >, " or '`)
)

// ClassifyResponse maps a non-2xx status and body to the error taxonomy. It
// is a pure function of the status code and body shape:
//
//	400/401/402/404/429  decoded error envelope in the matching variant
//	500/502/503/504      ServerError carrying the raw body
//	anything else        ProtocolError
//
// A 4xx body that fails to decode yields a ProtocolError, never a default
// variant.
func ClassifyResponse(statusCode int, body []byte) error {
	switch statusCode {
	case 400, 401, 402, 404, 429:
		apiErr, err := ParseErrorResponse(body)
		if err != nil {
			return &ProtocolError{StatusCode: statusCode, Body: body, Err: err}
		}

		apiErr.HTTPStatus = statusCode

		switch statusCode {
		case 400:
			return &BadRequestError{Err: apiErr}
		case 401:
			return &UnauthorizedError{Err: apiErr}
		case 402:
			return &RequestFailedError{Err: apiErr}
		case 404:
			return &NotFoundError{Err: apiErr}
		default:
			return &TooManyRequestsError{Err: apiErr}
		}
	case 500, 502, 503, 504:
		return &ServerError{StatusCode: statusCode, Body: body}
	default:
		return &ProtocolError{StatusCode: statusCode, Body: body, Err: ErrUnhandledStatus}
	}
}

// ParseErrorResponse parses the error envelope from JSON.
func ParseErrorResponse(data []byte) (*Error, error) {
	var envelope errorEnvelope

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error envelope: %w", err)
	}

	if envelope.Error == nil {
		return nil, ErrMissingErrorObject
	}

	return envelope.Error, nil
}

// Retryable reports whether a classified error is safe to retry under an
// unchanged idempotency key. Rate limits and transient server or connection
// failures are retryable, as is a decoded error of type api_error or
// api_connection_error regardless of status. Every other classified error is
// certain, not transient, and is never retried.
func Retryable(err error) bool {
	var tooMany *TooManyRequestsError
	if errors.As(err, &tooMany) {
		return true
	}

	var server *ServerError
	if errors.As(err, &server) {
		return true
	}

	var conn *ConnectionError
	if errors.As(err, &conn) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeAPI || apiErr.Type == ErrorTypeAPIConnection
	}

	return false
}

// IsCardError checks if the error is a card error.
func IsCardError(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeCard
	}

	return false
}

// IsAuthenticationError checks if the error is an authentication error.
func IsAuthenticationError(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeAuthentication
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	var notFound *NotFoundError

	return errors.As(err, &notFound)
}

// IsRateLimit checks if the error is a rate limit error.
func IsRateLimit(err error) bool {
	var tooMany *TooManyRequestsError

	return errors.As(err, &tooMany)
}
