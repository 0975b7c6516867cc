package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCatalogShape verifies the static catalog carries the full
// ISO 27001:2022 item set with unique ids.
func TestCatalogShape(t *testing.T) {
	require.Len(t, ManagementClauses, 23)
	require.Len(t, AnnexAControls, 93)

	seen := make(map[string]bool)
	for _, it := range Items() {
		require.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
		require.NotEmpty(t, it.Title, "item %s has no title", it.ID)
		require.NotEmpty(t, it.TitleKo, "item %s has no Korean title", it.ID)
		require.NotEmpty(t, it.Category, "item %s has no category", it.ID)
	}
}

// TestItemsOrder verifies the full listing puts clauses before Annex-A
// controls, each in definition order.
func TestItemsOrder(t *testing.T) {
	items := Items()
	require.Equal(t, "4.1", items[0].ID)
	for i, it := range items {
		if i < len(ManagementClauses) {
			require.Equal(t, KindClause, it.Kind)
		} else {
			require.Equal(t, KindAnnexA, it.Kind)
		}
	}
}

func TestFind(t *testing.T) {
	it, ok := Find("A.5.23")
	require.True(t, ok)
	require.Equal(t, KindAnnexA, it.Kind)
	require.Equal(t, "A.5", it.Category)

	it, ok = Find("9.2")
	require.True(t, ok)
	require.Equal(t, KindClause, it.Kind)

	_, ok = Find("A.99.1")
	require.False(t, ok)
}

// TestProfilesResolve verifies every id a profile lists exists in the
// catalog, and that coverage grows with company size.
func TestProfilesResolve(t *testing.T) {
	for size, p := range Profiles {
		for _, id := range append(append([]string{}, p.ManagementClauses...), p.AnnexAControls...) {
			_, ok := Find(id)
			require.True(t, ok, "profile %s lists unknown id %s", size, id)
		}
		// Clauses are mandatory at every size.
		require.Len(t, p.ManagementClauses, len(ManagementClauses), "profile %s", size)
	}

	startup := len(Profiles[SizeStartup].AnnexAControls)
	small := len(Profiles[SizeSmall].AnnexAControls)
	medium := len(Profiles[SizeMedium].AnnexAControls)
	large := len(Profiles[SizeLarge].AnnexAControls)
	require.Less(t, startup, small)
	require.Less(t, small, medium)
	require.Less(t, medium, large)
	require.Equal(t, len(AnnexAControls), large)
}

// TestProfileForFallback verifies unknown sizes fall back to startup.
func TestProfileForFallback(t *testing.T) {
	p := ProfileFor(CompanySize("enterprise"))
	require.Equal(t, SizeStartup, p.Size)
}
