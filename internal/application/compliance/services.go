package compliance

import (
	"context"
	"fmt"

	"github.com/hansol-labs/compliboard/internal/application"
	"github.com/hansol-labs/compliboard/internal/domain/catalog"
	domain "github.com/hansol-labs/compliboard/internal/domain/compliance"
	"github.com/hansol-labs/compliboard/internal/domain/settings"
)

// Service exposes the checklist views for one organization: the
// profile-filtered catalog, per-item status, category roll-ups and
// status writes. Reads degrade to defaults; writes against unknown
// ids fail (the durable path is strict where the in-memory model is
// lenient).
type Service struct {
	Statuses domain.StatusRepository
	Settings settings.Repository
	Clock    application.Clock
}

// ControlView is one visible checklist entry with its tracked state.
type ControlView struct {
	catalog.Item
	Status   domain.Status `json:"status"`
	Progress int           `json:"progress"`
}

// ControlDetail adds the render-time parsed tip steps.
type ControlDetail struct {
	ControlView
	TipSteps []catalog.TipStep `json:"tip_steps,omitempty"`
}

// List returns the organization's visible items after profile
// selection and filtering, with status attached.
func (s *Service) List(ctx context.Context, org string, q domain.Query) ([]ControlView, error) {
	reg, items, err := s.load(ctx, org)
	if err != nil {
		return nil, err
	}
	filtered := reg.Filter(items, q)
	out := make([]ControlView, 0, len(filtered))
	for _, it := range filtered {
		rec := reg.Status(it.ID)
		out = append(out, ControlView{Item: it, Status: rec.Status, Progress: rec.Progress})
	}
	return out, nil
}

// Get returns one visible item with parsed guidance. Ids outside the
// catalog or the active profile are NotFound.
func (s *Service) Get(ctx context.Context, org, id string) (*ControlDetail, error) {
	reg, items, err := s.load(ctx, org)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID != id {
			continue
		}
		rec := reg.Status(it.ID)
		d := &ControlDetail{
			ControlView: ControlView{Item: it, Status: rec.Status, Progress: rec.Progress},
		}
		if it.Tip != "" {
			d.TipSteps = catalog.ParseTip(it.Tip)
		}
		return d, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownControl, id)
}

// Stats returns the per-category roll-up for one variant.
func (s *Service) Stats(ctx context.Context, org string, kind catalog.Kind) ([]domain.CategoryStat, error) {
	reg, items, err := s.load(ctx, org)
	if err != nil {
		return nil, err
	}
	return reg.CategoryStats(items, kind), nil
}

// Summary returns the overall completion over the visible items,
// optionally narrowed to one variant.
func (s *Service) Summary(ctx context.Context, org string, kind catalog.Kind) (domain.Summary, error) {
	reg, items, err := s.load(ctx, org)
	if err != nil {
		return domain.Summary{}, err
	}
	if kind != "" {
		items = reg.Filter(items, domain.Query{Kind: kind})
	}
	return reg.Overall(items), nil
}

// SetStatus applies the transition rule and persists the result.
// Unknown catalog ids are rejected.
func (s *Service) SetStatus(ctx context.Context, org, id string, next domain.Status) (domain.Record, error) {
	if _, ok := catalog.Find(id); !ok {
		return domain.Record{}, fmt.Errorf("%w: %s", domain.ErrUnknownControl, id)
	}
	records, err := s.Statuses.List(ctx, org)
	if err != nil {
		return domain.Record{}, err
	}
	prev, ok := records[id]
	if !ok {
		prev = domain.DefaultRecord
	}
	rec := domain.Apply(prev, next)
	if err := s.Statuses.Set(ctx, org, id, rec); err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

// SetProgress overwrites progress for an in-flight item.
func (s *Service) SetProgress(ctx context.Context, org, id string, progress int) (domain.Record, error) {
	if _, ok := catalog.Find(id); !ok {
		return domain.Record{}, fmt.Errorf("%w: %s", domain.ErrUnknownControl, id)
	}
	records, err := s.Statuses.List(ctx, org)
	if err != nil {
		return domain.Record{}, err
	}
	reg := domain.NewRegistryWith(records)
	rec := reg.SetProgress(id, progress)
	if err := s.Statuses.Set(ctx, org, id, rec); err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

// load builds the registry and visible item list for an organization
// from its saved settings (or the defaults).
func (s *Service) load(ctx context.Context, org string) (*domain.Registry, []catalog.Item, error) {
	st, ok, err := s.Settings.Load(ctx, org)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		st = settings.Default(org)
	}
	records, err := s.Statuses.List(ctx, org)
	if err != nil {
		return nil, nil, err
	}
	reg := domain.NewRegistryWith(records)
	items := domain.ApplicableItems(catalog.ProfileFor(st.CompanySize))
	return reg, items, nil
}
