// Package memory holds mutex-guarded map repositories. They back the
// dev profile (no database configured) and the test suites.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	domain "github.com/hansol-labs/compliboard/internal/domain/documents"
)

type DocumentRepository struct {
	mu   sync.RWMutex
	docs map[string]*domain.Document
}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{docs: make(map[string]*domain.Document)}
}

func (r *DocumentRepository) Save(ctx context.Context, d *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.docs[d.ID] = &cp
	return nil
}

func (r *DocumentRepository) Get(ctx context.Context, org, id string) (*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.docs[id]
	if !ok || d.OrganizationID != org {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *DocumentRepository) List(ctx context.Context, org string, f domain.Filter) (*domain.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := &domain.List{Documents: []*domain.Document{}}
	search := strings.ToLower(f.Search)
	for _, d := range r.docs {
		if d.OrganizationID != org {
			continue
		}
		if f.ControlID != "" && d.ControlID != f.ControlID {
			continue
		}
		if f.TaskID != "" && d.TaskID != f.TaskID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Description), search) {
			continue
		}
		cp := *d
		out.Documents = append(out.Documents, &cp)
		out.TotalSize += d.FileSize
	}
	sort.Slice(out.Documents, func(i, j int) bool {
		a, b := out.Documents[i], out.Documents[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	out.Total = len(out.Documents)
	return out, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, org, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok || d.OrganizationID != org {
		return domain.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

func (r *DocumentRepository) NextVersion(ctx context.Context, org, name string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, d := range r.docs {
		if d.OrganizationID == org && d.Name == name {
			count++
		}
	}
	return count + 1, nil
}
