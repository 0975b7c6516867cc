package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hansol-labs/compliboard/internal/domain/documents"
)

// countingServer serves a fixed document list and counts list hits,
// holding each response briefly so concurrent refreshes overlap.
func countingServer(t *testing.T, hits *atomic.Int64) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		time.Sleep(50 * time.Millisecond)
		json.NewEncoder(w).Encode(documents.List{
			Documents: []*documents.Document{{ID: "d1", Name: "policy.pdf"}},
			Total:     1,
		})
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, "")
}

func TestCacheGetFetchesOnce(t *testing.T) {
	var hits atomic.Int64
	dc := NewDocumentCache(countingServer(t, &hits), documents.Filter{})
	ctx := context.Background()

	list, err := dc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)

	// cached reads do not refetch
	for i := 0; i < 5; i++ {
		_, err := dc.Get(ctx)
		require.NoError(t, err)
	}
	require.Equal(t, int64(1), hits.Load())
}

// Concurrent refreshes while a fetch is in flight coalesce into that
// single fetch.
func TestCacheCoalescesRefreshes(t *testing.T) {
	var hits atomic.Int64
	dc := NewDocumentCache(countingServer(t, &hits), documents.Filter{})
	ctx := context.Background()

	const callers = 8
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			list, err := dc.Refresh(ctx)
			require.NoError(t, err)
			require.Equal(t, 1, list.Total)
		}()
	}
	wg.Wait()

	// all callers shared at most a couple of fetches, not one each
	require.LessOrEqual(t, hits.Load(), int64(2))
}

func TestCacheInvalidate(t *testing.T) {
	var hits atomic.Int64
	dc := NewDocumentCache(countingServer(t, &hits), documents.Filter{})
	ctx := context.Background()

	_, err := dc.Get(ctx)
	require.NoError(t, err)
	dc.Invalidate()
	_, err = dc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), hits.Load())
}
