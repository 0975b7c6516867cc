package client

import (
	"context"
	"sync"

	"github.com/hansol-labs/compliboard/internal/domain/documents"
)

// DocumentCache keeps the last fetched document list and coalesces
// refreshes: any number of concurrent Refresh calls while a fetch is
// in flight share that single fetch instead of stacking requests.
type DocumentCache struct {
	client *Client
	filter documents.Filter

	mu       sync.Mutex
	list     *documents.List
	inflight chan struct{} // closed when the current fetch finishes
	lastErr  error
}

func NewDocumentCache(c *Client, f documents.Filter) *DocumentCache {
	return &DocumentCache{client: c, filter: f}
}

// Get returns the cached list, fetching it on first use.
func (dc *DocumentCache) Get(ctx context.Context) (*documents.List, error) {
	dc.mu.Lock()
	if dc.list != nil {
		list := dc.list
		dc.mu.Unlock()
		return list, nil
	}
	dc.mu.Unlock()
	return dc.Refresh(ctx)
}

// Refresh refetches the list. Concurrent callers join the fetch
// already in flight and all see its outcome.
func (dc *DocumentCache) Refresh(ctx context.Context) (*documents.List, error) {
	dc.mu.Lock()
	if dc.inflight != nil {
		done := dc.inflight
		dc.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		dc.mu.Lock()
		list, err := dc.list, dc.lastErr
		dc.mu.Unlock()
		return list, err
	}

	done := make(chan struct{})
	dc.inflight = done
	dc.mu.Unlock()

	list, err := dc.client.ListDocuments(ctx, dc.filter)

	dc.mu.Lock()
	if err == nil {
		dc.list = list
	}
	dc.lastErr = err
	dc.inflight = nil
	close(done)
	dc.mu.Unlock()

	return list, err
}

// Invalidate drops the cached list so the next Get refetches.
func (dc *DocumentCache) Invalidate() {
	dc.mu.Lock()
	dc.list = nil
	dc.mu.Unlock()
}
