package cardapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
)

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// ConfigError means the client cannot make requests at all.
type ConfigError struct {
	ErrorMessage
}

// NetworkError means the card service could not be reached or did not
// answer in time.
type NetworkError struct {
	ErrorMessage
	Timeout bool
	Err     error
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError is a non-2xx answer. Message holds the service's own error
// text when it sent one.
type StatusError struct {
	ErrorMessage
	StatusCode int
}

// DecodeError means a 2xx answer whose body was not the expected JSON.
type DecodeError struct {
	ErrorMessage
	Err error
}

func (e *DecodeError) Unwrap() error { return e.Err }

func NewConfigError(message string) *ConfigError {
	return &ConfigError{ErrorMessage: ErrorMessage{Message: message}}
}

func NewStatusError(statusCode int, message string) *StatusError {
	return &StatusError{
		ErrorMessage: ErrorMessage{Message: message},
		StatusCode:   statusCode,
	}
}

// classifyRequestError turns a transport failure into a *NetworkError. A
// request the caller cancelled is returned wrapped as is; the card service
// was not at fault.
func classifyRequestError(ctx context.Context, operation string, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("card service %s: %w", operation, err)
	}
	if isTimeoutError(ctx, err) {
		return &NetworkError{
			ErrorMessage: ErrorMessage{Message: "card service " + operation + " timeout: " + err.Error()},
			Timeout:      true,
			Err:          err,
		}
	}
	return &NetworkError{
		ErrorMessage: ErrorMessage{Message: "card service " + operation + " network error: " + err.Error()},
		Err:          err,
	}
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
