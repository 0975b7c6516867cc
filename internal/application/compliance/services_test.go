package compliance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hansol-labs/compliboard/internal/domain/catalog"
	domain "github.com/hansol-labs/compliboard/internal/domain/compliance"
	memdb "github.com/hansol-labs/compliboard/internal/infra/db/memory"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestService(t *testing.T) *Service {
	t.Helper()
	return &Service{
		Statuses: memdb.NewStatusRepository(),
		Settings: memdb.NewSettingsRepository(),
		Clock:    fixedClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}
}

// A fresh organization reads the startup profile with every item at
// the default record.
func TestListDefaults(t *testing.T) {
	svc := newTestService(t)
	list, err := svc.List(context.Background(), "acme", domain.Query{})
	require.NoError(t, err)

	startup := domain.ApplicableItems(catalog.ProfileFor(catalog.SizeStartup))
	require.Len(t, list, len(startup))
	for _, v := range list {
		require.Equal(t, domain.StatusNotStarted, v.Status)
		require.Zero(t, v.Progress)
	}
}

func TestSetStatusPersists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.SetStatus(ctx, "acme", "A.5.1", domain.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, 100, rec.Progress)

	detail, err := svc.Get(ctx, "acme", "A.5.1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, detail.Status)

	// other organizations are unaffected
	other, err := svc.Get(ctx, "globex", "A.5.1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusNotStarted, other.Status)
}

// Writes against ids outside the catalog fail instead of minting
// phantom records.
func TestSetStatusUnknownControl(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.SetStatus(context.Background(), "acme", "A.99.1", domain.StatusCompleted)
	require.ErrorIs(t, err, domain.ErrUnknownControl)

	_, err = svc.SetProgress(context.Background(), "acme", "A.99.1", 50)
	require.ErrorIs(t, err, domain.ErrUnknownControl)
}

// Ids valid in the catalog but outside the active profile are not
// visible through Get.
func TestGetOutsideProfile(t *testing.T) {
	svc := newTestService(t)
	// A.8.30 exists in the catalog but not in the startup profile
	_, err := svc.Get(context.Background(), "acme", "A.8.30")
	require.ErrorIs(t, err, domain.ErrUnknownControl)
}

func TestGetParsesTip(t *testing.T) {
	svc := newTestService(t)
	detail, err := svc.Get(context.Background(), "acme", "A.5.1")
	require.NoError(t, err)
	require.NotEmpty(t, detail.TipSteps)
}

func TestStatsAndSummary(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, "acme", "4.1", domain.StatusCompleted)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, "acme", catalog.KindClause)
	require.NoError(t, err)
	require.NotEmpty(t, stats)
	require.Equal(t, "4", stats[0].ID)
	require.Equal(t, 1, stats[0].Completed)

	sum, err := svc.Summary(ctx, "acme", catalog.KindClause)
	require.NoError(t, err)
	require.Equal(t, 1, sum.Completed)
	require.Equal(t, len(catalog.ManagementClauses), sum.Total)

	all, err := svc.Summary(ctx, "acme", "")
	require.NoError(t, err)
	require.Greater(t, all.Total, sum.Total)
}

// Progress set while in progress survives a detour through
// not_applicable.
func TestProgressPreservedAcrossNotApplicable(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, "acme", "A.5.1", domain.StatusInProgress)
	require.NoError(t, err)
	_, err = svc.SetProgress(ctx, "acme", "A.5.1", 60)
	require.NoError(t, err)

	rec, err := svc.SetStatus(ctx, "acme", "A.5.1", domain.StatusNotApplicable)
	require.NoError(t, err)
	require.Equal(t, 60, rec.Progress)

	rec, err = svc.SetStatus(ctx, "acme", "A.5.1", domain.StatusInProgress)
	require.NoError(t, err)
	require.Equal(t, 60, rec.Progress)
}
