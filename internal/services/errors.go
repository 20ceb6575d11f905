package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers. Anything
// else propagating out of a service is treated as a storage failure
// (generic 500, no internal detail leaked).
var (
	ErrNotFound    = errors.New("not found")
	ErrRateLimited = errors.New("rate limit exceeded")
	ErrValidation  = errors.New("validation failed")
)
