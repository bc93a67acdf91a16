package error

import "errors"

// API-surface errors shared by the HTTP middleware and controllers.
var (
	// ErrMissingAPIKey is returned when a request carries no API key.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidAPIKey is returned when the provided API key does not match.
	ErrInvalidAPIKey = errors.New("invalid API key")
)

// APIErrorCode defines error codes for API-surface errors.
type APIErrorCode string

const (
	ErrCodeMissingAPIKey APIErrorCode = "API-010001"
	ErrCodeInvalidAPIKey APIErrorCode = "API-010002"
	ErrCodeRateLimited   APIErrorCode = "API-010003"
	ErrCodeInvalidBody   APIErrorCode = "API-010004"
	ErrCodeInternal      APIErrorCode = "API-020001"
)
