package tasks

import (
	"context"
	"errors"
)

// ErrNotFound indicates the task id does not exist in the organization.
var ErrNotFound = errors.New("task not found")

// ErrValidation indicates a malformed task request.
var ErrValidation = errors.New("invalid task request")

// Filter narrows a task listing; empty fields are inactive.
type Filter struct {
	Status    Status
	ControlID string
}

// Repository persists tasks.
type Repository interface {
	Save(ctx context.Context, t *Task) error
	Get(ctx context.Context, org, id string) (*Task, error)
	List(ctx context.Context, org string, f Filter) ([]*Task, error)
	Delete(ctx context.Context, org, id string) error
}
