package utils

import "errors"

// API error codes returned in the response envelope.
var (
	ErrInvalidRequest = errors.New("INVALID_REQUEST")
	ErrInternal       = errors.New("INTERNAL_ERROR")
	ErrRateLimited    = errors.New("RATE_LIMITED")
	ErrTimeout        = errors.New("REPORT_TIMEOUT")
)
