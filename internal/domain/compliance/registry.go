package compliance

import (
	"math"
	"strings"
	"sync"

	"github.com/hansol-labs/compliboard/internal/domain/catalog"
)

// Query filters a visible item list. Zero-value fields are inactive.
// Predicates are applied category, then status, then search; search is
// authoritative once present. The result is the same regardless of
// the order filters are combined in.
type Query struct {
	Search   string
	Category string
	Status   Status
	Kind     catalog.Kind
}

// CategoryStat is a per-category completion roll-up.
type CategoryStat struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NameKo     string `json:"name_ko"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// Summary is the overall completion roll-up over a visible item list.
type Summary struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Registry combines the static catalog, a company profile and a
// mutable status map into derived views. All reads degrade to
// defaults; no registry operation fails.
type Registry struct {
	mu       sync.RWMutex
	statuses map[string]Record
}

// NewRegistry returns an empty registry (every item not_started).
func NewRegistry() *Registry {
	return &Registry{statuses: make(map[string]Record)}
}

// NewRegistryWith seeds the registry from stored records, e.g. rows
// loaded from a repository.
func NewRegistryWith(records map[string]Record) *Registry {
	r := NewRegistry()
	for id, rec := range records {
		r.statuses[id] = rec
	}
	return r
}

// Status returns the record for an item, or the default when none was
// ever set. Unknown ids are indistinguishable from untouched ones.
func (r *Registry) Status(itemID string) Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if rec, ok := r.statuses[itemID]; ok {
		return rec
	}
	return DefaultRecord
}

// SetStatus applies the transition rule to an item and returns the
// stored record. Idempotent for a repeated status.
func (r *Registry) SetStatus(itemID string, next Status) Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.statuses[itemID]
	if !ok {
		prev = DefaultRecord
	}
	rec := Apply(prev, next)
	r.statuses[itemID] = rec
	return rec
}

// SetProgress overwrites the progress of an item without changing its
// status, clamped to 0-100.
func (r *Registry) SetProgress(itemID string, progress int) Record {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.statuses[itemID]
	if !ok {
		prev = DefaultRecord
	}
	rec := Record{Status: prev.Status, Progress: progress}
	r.statuses[itemID] = rec
	return rec
}

// ApplicableItems returns the catalog subset selected by a profile:
// clauses first, then Annex-A controls, both in catalog definition
// order. Ids in the profile that do not resolve are skipped.
func ApplicableItems(profile catalog.Profile) []catalog.Item {
	clauseSet := toSet(profile.ManagementClauses)
	controlSet := toSet(profile.AnnexAControls)

	out := make([]catalog.Item, 0, len(clauseSet)+len(controlSet))
	for _, it := range catalog.ManagementClauses {
		if clauseSet[it.ID] {
			out = append(out, it)
		}
	}
	for _, it := range catalog.AnnexAControls {
		if controlSet[it.ID] {
			out = append(out, it)
		}
	}
	return out
}

// Filter narrows items to those matching every active predicate.
func (r *Registry) Filter(items []catalog.Item, q Query) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if q.Kind != "" && it.Kind != q.Kind {
			continue
		}
		if q.Category != "" && it.Category != q.Category {
			continue
		}
		if q.Status != "" && r.Status(it.ID).Status != q.Status {
			continue
		}
		if q.Search != "" && !matchesSearch(it, q.Search) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// CategoryStats rolls up completion per category of one variant.
// Categories with no applicable items are omitted. Percentage is
// rounded half-up to the nearest integer.
func (r *Registry) CategoryStats(items []catalog.Item, kind catalog.Kind) []CategoryStat {
	var stats []CategoryStat
	for _, cat := range catalog.CategoriesFor(kind) {
		completed, total := 0, 0
		for _, it := range items {
			if it.Kind != kind || it.Category != cat.ID {
				continue
			}
			total++
			if r.Status(it.ID).Status == StatusCompleted {
				completed++
			}
		}
		if total == 0 {
			continue
		}
		stats = append(stats, CategoryStat{
			ID:         cat.ID,
			Name:       cat.Name,
			NameKo:     cat.NameKo,
			Completed:  completed,
			Total:      total,
			Percentage: percent(completed, total),
		})
	}
	return stats
}

// Overall rolls up completion across a visible item list.
func (r *Registry) Overall(items []catalog.Item) Summary {
	completed := 0
	for _, it := range items {
		if r.Status(it.ID).Status == StatusCompleted {
			completed++
		}
	}
	s := Summary{Completed: completed, Total: len(items)}
	if s.Total > 0 {
		s.Percentage = percent(completed, s.Total)
	}
	return s
}

// Records returns a copy of all explicitly stored records.
func (r *Registry) Records() map[string]Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Record, len(r.statuses))
	for id, rec := range r.statuses {
		out[id] = rec
	}
	return out
}

func matchesSearch(it catalog.Item, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(it.ID), q) ||
		strings.Contains(strings.ToLower(it.TitleKo), q) ||
		strings.Contains(strings.ToLower(it.Title), q) ||
		strings.Contains(strings.ToLower(it.DescriptionKo), q)
}

func percent(completed, total int) int {
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func toSet(ids []string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
