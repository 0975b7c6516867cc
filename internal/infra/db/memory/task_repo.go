package memory

import (
	"context"
	"sort"
	"sync"

	domain "github.com/hansol-labs/compliboard/internal/domain/tasks"
)

type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]*domain.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[string]*domain.Task)}
}

func (r *TaskRepository) Save(ctx context.Context, t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *TaskRepository) Get(ctx context.Context, org, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok || t.OrganizationID != org {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *TaskRepository) List(ctx context.Context, org string, f domain.Filter) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.OrganizationID != org {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.ControlID != "" && t.ControlID != f.ControlID {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return out, nil
}

func (r *TaskRepository) Delete(ctx context.Context, org, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.OrganizationID != org {
		return domain.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}
