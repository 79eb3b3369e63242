package api

import (
	"errors"
	"fmt"
)

// ErrCityNotFound is returned when a city search matches nothing.
var ErrCityNotFound = errors.New("city not found")

// MalformedResponseError reports a payload that failed boundary validation.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ProviderError carries the provider's own error code and message.
type ProviderError struct {
	Endpoint   string
	StatusCode int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s answered %d (cod %s): %s", e.Endpoint, e.StatusCode, e.Code, e.Message)
}
