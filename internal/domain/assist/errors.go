package assist

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit
// error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrUnavailable indicates no AI provider is configured.
var ErrUnavailable = errors.New("ai assistance not configured")

// ErrUpstream indicates the AI provider failed on its side.
var ErrUpstream = errors.New("ai provider error")
