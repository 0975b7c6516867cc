package storage

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hansol-labs/compliboard/internal/domain/documents"
)

// Memory is an in-process blob store for local development and tests.
// Presigned URLs point at Handler, which must be mounted by the
// server (PUT/GET /blobs/{key}), so the presigned path works without
// an object store.
type Memory struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string][]byte
	types   map[string]string
}

// NewMemory creates an empty store. baseURL is the externally
// reachable prefix the Handler is mounted at, without trailing slash.
func NewMemory(baseURL string) *Memory {
	return &Memory{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (m *Memory) Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *Memory) PresignedPut(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return m.baseURL + "/" + key, nil
}

func (m *Memory) PresignedGet(ctx context.Context, key, filename string, expiry time.Duration) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.objects[key]; !ok {
		return "", documents.ErrObjectMissing
	}
	return m.baseURL + "/" + key, nil
}

func (m *Memory) Stat(ctx context.Context, key string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	if !ok {
		return 0, documents.ErrObjectMissing
	}
	return int64(len(data)), nil
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	delete(m.types, key)
	return nil
}

// Handler serves the raw object namespace. The mount path prefix is
// stripped by the router; the remaining path is the object key.
func (m *Memory) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, "/")
		if key == "" {
			http.Error(w, "missing key", http.StatusBadRequest)
			return
		}
		switch r.Method {
		case http.MethodPut:
			if err := m.Put(r.Context(), key, r.Header.Get("Content-Type"), r.ContentLength, r.Body); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			m.mu.RLock()
			data, ok := m.objects[key]
			ct := m.types[key]
			m.mu.RUnlock()
			if !ok {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			if ct != "" {
				w.Header().Set("Content-Type", ct)
			}
			w.Write(data)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}
