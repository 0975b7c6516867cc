package compliance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hansol-labs/compliboard/internal/domain/catalog"
)

func TestApplyCoercion(t *testing.T) {
	// completed forces 100 regardless of prior progress
	rec := Apply(Record{Status: StatusInProgress, Progress: 40}, StatusCompleted)
	require.Equal(t, Record{Status: StatusCompleted, Progress: 100}, rec)

	// not_started forces 0
	rec = Apply(rec, StatusNotStarted)
	require.Equal(t, Record{Status: StatusNotStarted, Progress: 0}, rec)

	// in_progress preserves prior progress
	rec = Apply(Record{Status: StatusCompleted, Progress: 100}, StatusInProgress)
	require.Equal(t, Record{Status: StatusInProgress, Progress: 100}, rec)
}

// Progress survives a round trip through not_applicable.
func TestApplyNotApplicablePreservesProgress(t *testing.T) {
	rec := Apply(Record{Status: StatusInProgress, Progress: 60}, StatusNotApplicable)
	require.Equal(t, Record{Status: StatusNotApplicable, Progress: 60}, rec)

	rec = Apply(rec, StatusInProgress)
	require.Equal(t, Record{Status: StatusInProgress, Progress: 60}, rec)
}

func TestApplyIdempotent(t *testing.T) {
	for _, s := range []Status{StatusNotStarted, StatusInProgress, StatusCompleted, StatusNotApplicable} {
		once := Apply(Record{Status: StatusInProgress, Progress: 30}, s)
		twice := Apply(once, s)
		require.Equal(t, once, twice, "status %s", s)
	}
}

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()
	// untouched and unknown ids both read as the default
	require.Equal(t, DefaultRecord, r.Status("A.5.1"))
	require.Equal(t, DefaultRecord, r.Status("no-such-id"))
	require.Empty(t, r.Records())
}

func TestSetProgressClampsAndKeepsStatus(t *testing.T) {
	r := NewRegistry()
	r.SetStatus("A.5.1", StatusInProgress)

	rec := r.SetProgress("A.5.1", 150)
	require.Equal(t, Record{Status: StatusInProgress, Progress: 100}, rec)

	rec = r.SetProgress("A.5.1", -5)
	require.Equal(t, Record{Status: StatusInProgress, Progress: 0}, rec)
}

func TestApplicableItemsOrder(t *testing.T) {
	items := ApplicableItems(catalog.ProfileFor(catalog.SizeLarge))
	require.Len(t, items, len(catalog.ManagementClauses)+len(catalog.AnnexAControls))

	// clauses first, then Annex-A, both in catalog order
	sawAnnexA := false
	for _, it := range items {
		if it.Kind == catalog.KindAnnexA {
			sawAnnexA = true
		} else {
			require.False(t, sawAnnexA, "clause %s after an Annex-A control", it.ID)
		}
	}
}

// Items outside the profile stay invisible even when they carry a
// tracked status.
func TestApplicableItemsHidesExcluded(t *testing.T) {
	startup := ApplicableItems(catalog.ProfileFor(catalog.SizeStartup))
	ids := make(map[string]bool, len(startup))
	for _, it := range startup {
		ids[it.ID] = true
	}
	require.False(t, ids["A.8.30"], "A.8.30 should not apply to startups")

	r := NewRegistry()
	r.SetStatus("A.8.30", StatusCompleted)
	got := r.Filter(startup, Query{})
	for _, it := range got {
		require.NotEqual(t, "A.8.30", it.ID)
	}
}

func TestFilterGates(t *testing.T) {
	r := NewRegistry()
	items := ApplicableItems(catalog.ProfileFor(catalog.SizeLarge))
	r.SetStatus("A.5.1", StatusCompleted)

	byKind := r.Filter(items, Query{Kind: catalog.KindClause})
	for _, it := range byKind {
		require.Equal(t, catalog.KindClause, it.Kind)
	}

	byCategory := r.Filter(items, Query{Category: "A.5"})
	require.Len(t, byCategory, 37)

	byStatus := r.Filter(items, Query{Status: StatusCompleted})
	require.Len(t, byStatus, 1)
	require.Equal(t, "A.5.1", byStatus[0].ID)

	bySearch := r.Filter(items, Query{Search: "a.5.23"})
	require.Len(t, bySearch, 1)
	require.Equal(t, "A.5.23", bySearch[0].ID)
}

// Combining predicates yields the intersection no matter how the
// query is assembled.
func TestFilterCombination(t *testing.T) {
	r := NewRegistry()
	items := ApplicableItems(catalog.ProfileFor(catalog.SizeLarge))
	r.SetStatus("A.5.1", StatusCompleted)
	r.SetStatus("A.8.1", StatusCompleted)

	got := r.Filter(items, Query{Category: "A.5", Status: StatusCompleted})
	require.Len(t, got, 1)
	require.Equal(t, "A.5.1", got[0].ID)

	// search is case-insensitive and matches Korean titles too
	seoul := r.Filter(items, Query{Search: "정보보안"})
	require.NotEmpty(t, seoul)
}

func TestCategoryStatsRounding(t *testing.T) {
	r := NewRegistry()
	items := []catalog.Item{}
	for _, id := range []string{"A.6.1", "A.6.2", "A.6.3"} {
		it, ok := catalog.Find(id)
		require.True(t, ok)
		items = append(items, it)
	}
	r.SetStatus("A.6.1", StatusCompleted)

	stats := r.CategoryStats(items, catalog.KindAnnexA)
	require.Len(t, stats, 1)
	require.Equal(t, "A.6", stats[0].ID)
	require.Equal(t, 1, stats[0].Completed)
	require.Equal(t, 3, stats[0].Total)
	// 1/3 rounds to 33, not 34
	require.Equal(t, 33, stats[0].Percentage)

	r.SetStatus("A.6.2", StatusCompleted)
	stats = r.CategoryStats(items, catalog.KindAnnexA)
	// 2/3 rounds half-up to 67
	require.Equal(t, 67, stats[0].Percentage)
}

// Categories with no applicable items are omitted from the roll-up.
func TestCategoryStatsOmitsEmpty(t *testing.T) {
	r := NewRegistry()
	it, _ := catalog.Find("A.6.1")
	stats := r.CategoryStats([]catalog.Item{it}, catalog.KindAnnexA)
	require.Len(t, stats, 1)
	for _, s := range stats {
		require.NotZero(t, s.Total)
	}
}

func TestOverall(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, Summary{}, r.Overall(nil))

	items := ApplicableItems(catalog.ProfileFor(catalog.SizeStartup))
	sum := r.Overall(items)
	require.Equal(t, 0, sum.Completed)
	require.Equal(t, len(items), sum.Total)
	require.Equal(t, 0, sum.Percentage)

	for _, it := range items {
		r.SetStatus(it.ID, StatusCompleted)
	}
	sum = r.Overall(items)
	require.Equal(t, 100, sum.Percentage)
}
