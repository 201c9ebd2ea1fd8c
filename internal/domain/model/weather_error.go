package model

import (
	"errors"
	"net/http"
)

// ErrorKind classifies why a weather lookup failed.
type ErrorKind string

const (
	UnknownCity         ErrorKind = "UnknownCity"
	ProviderUnavailable ErrorKind = "ProviderUnavailable"
	MalformedPayload    ErrorKind = "MalformedPayload"
	TypeMismatch        ErrorKind = "TypeMismatch"
)

// WeatherError is the single error type returned by the weather use case.
// StatusCode is the HTTP status the failure maps to.
type WeatherError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Cause      error
}

func (e *WeatherError) Error() string {
	return e.Message
}

func (e *WeatherError) Unwrap() error {
	return e.Cause
}

func NewUnknownCityError(message string) *WeatherError {
	return &WeatherError{Kind: UnknownCity, StatusCode: http.StatusBadRequest, Message: message}
}

// NewProviderUnavailableError keeps the upstream status, or uses 502 when there is none.
func NewProviderUnavailableError(statusCode int, message string, cause error) *WeatherError {
	if statusCode == 0 {
		statusCode = http.StatusBadGateway
	}
	return &WeatherError{Kind: ProviderUnavailable, StatusCode: statusCode, Message: message, Cause: cause}
}

func NewMalformedPayloadError(message string, cause error) *WeatherError {
	return &WeatherError{Kind: MalformedPayload, StatusCode: http.StatusUnprocessableEntity, Message: message, Cause: cause}
}

func NewTypeMismatchError(message string, cause error) *WeatherError {
	return &WeatherError{Kind: TypeMismatch, StatusCode: http.StatusUnprocessableEntity, Message: message, Cause: cause}
}

// IsKind reports whether err is a *WeatherError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var weatherErr *WeatherError
	return errors.As(err, &weatherErr) && weatherErr.Kind == kind
}
