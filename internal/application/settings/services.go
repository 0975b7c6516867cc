package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hansol-labs/compliboard/internal/application"
	"github.com/hansol-labs/compliboard/internal/domain/catalog"
	domain "github.com/hansol-labs/compliboard/internal/domain/settings"
)

// ErrValidation indicates a malformed settings request.
var ErrValidation = errors.New("invalid settings request")

// Service owns the per-organization settings record. Reads fall back
// to the defaults; every write stamps updated_at.
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
}

// Patch is a partial settings update; nil fields are left unchanged.
type Patch struct {
	CompanySize *catalog.CompanySize `json:"company_size,omitempty"`
	CompanyName *string              `json:"company_name,omitempty"`
}

// Get returns the saved settings, or the defaults for a fresh
// organization.
func (s *Service) Get(ctx context.Context, org string) (domain.Settings, error) {
	st, ok, err := s.Repo.Load(ctx, org)
	if err != nil {
		return domain.Settings{}, err
	}
	if !ok {
		return domain.Default(org), nil
	}
	return st, nil
}

// Update applies a partial patch. Changing the company size reshapes
// the visible checklist on the next read; tracked statuses are kept.
func (s *Service) Update(ctx context.Context, org string, p Patch) (domain.Settings, error) {
	st, err := s.Get(ctx, org)
	if err != nil {
		return domain.Settings{}, err
	}
	if p.CompanySize != nil {
		if !p.CompanySize.Valid() {
			return domain.Settings{}, fmt.Errorf("%w: company size %q", ErrValidation, *p.CompanySize)
		}
		st.CompanySize = *p.CompanySize
	}
	if p.CompanyName != nil {
		if strings.TrimSpace(*p.CompanyName) == "" {
			return domain.Settings{}, fmt.Errorf("%w: company name cannot be empty", ErrValidation)
		}
		st.CompanyName = *p.CompanyName
	}
	st.OrganizationID = org
	st.UpdatedAt = s.Clock.Now()
	if err := s.Repo.Save(ctx, st); err != nil {
		return domain.Settings{}, err
	}
	return st, nil
}
