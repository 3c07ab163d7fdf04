package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidJSON is wrapped by FetchError when the body does not parse.
var ErrInvalidJSON = errors.New("response body is not valid JSON")

// FetchError is returned when the market data request fails at the transport,
// status or decoding level.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to fetch token data: %s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch token data: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MissingFieldError is returned when a required field is absent from a pair.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Path)
}

// ConfigurationError lists required settings that were not provided.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("telegram bot token or chat ID not found in environment variables (missing %s)",
		strings.Join(e.Missing, ", "))
}

// DeliveryError wraps any failure of the messaging API for one record.
type DeliveryError struct {
	Token string // name of the token the message was about
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to send telegram message for %s: %v", e.Token, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies the errors a fetch and analyze run can end with.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindFetch
	KindMissingField
	KindConfiguration
	KindDelivery
)

func (k ErrorKind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindMissingField:
		return "missing_field"
	case KindConfiguration:
		return "configuration"
	case KindDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// KindOf walks the error chain and returns the first known kind.
func KindOf(err error) ErrorKind {
	var (
		fetchErr    *FetchError
		missingErr  *MissingFieldError
		configErr   *ConfigurationError
		deliveryErr *DeliveryError
	)

	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &fetchErr):
		return KindFetch
	case errors.As(err, &missingErr):
		return KindMissingField
	case errors.As(err, &configErr):
		return KindConfiguration
	case errors.As(err, &deliveryErr):
		return KindDelivery
	default:
		return KindUnknown
	}
}
