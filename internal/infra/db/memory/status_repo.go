package memory

import (
	"context"
	"sync"

	domain "github.com/hansol-labs/compliboard/internal/domain/compliance"
)

type StatusRepository struct {
	mu   sync.RWMutex
	recs map[string]map[string]domain.Record
}

func NewStatusRepository() *StatusRepository {
	return &StatusRepository{recs: make(map[string]map[string]domain.Record)}
}

func (r *StatusRepository) List(ctx context.Context, org string) (map[string]domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]domain.Record, len(r.recs[org]))
	for id, rec := range r.recs[org] {
		out[id] = rec
	}
	return out, nil
}

func (r *StatusRepository) Set(ctx context.Context, org, controlID string, rec domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.recs[org]
	if !ok {
		m = make(map[string]domain.Record)
		r.recs[org] = m
	}
	m[controlID] = rec
	return nil
}
