package compliance

import (
	"context"
	"errors"
)

// ErrUnknownControl is returned by the server-backed service when a
// status write references an id absent from the catalog. The pure
// in-memory registry tolerates unknown ids; the durable path does not.
var ErrUnknownControl = errors.New("unknown control id")

// ErrValidation indicates a malformed status query or write.
var ErrValidation = errors.New("invalid control request")

// StatusRepository persists status records keyed by
// (organization, control id).
type StatusRepository interface {
	List(ctx context.Context, org string) (map[string]Record, error)
	Set(ctx context.Context, org, controlID string, rec Record) error
}
