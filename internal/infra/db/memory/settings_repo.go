package memory

import (
	"context"
	"sync"

	domain "github.com/hansol-labs/compliboard/internal/domain/settings"
)

type SettingsRepository struct {
	mu       sync.RWMutex
	settings map[string]domain.Settings
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{settings: make(map[string]domain.Settings)}
}

func (r *SettingsRepository) Load(ctx context.Context, org string) (domain.Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.settings[org]
	return s, ok, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[s.OrganizationID] = s
	return nil
}
