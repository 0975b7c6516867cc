package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hansol-labs/compliboard/internal/domain/catalog"
	memdb "github.com/hansol-labs/compliboard/internal/infra/db/memory"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestService(t *testing.T) *Service {
	t.Helper()
	return &Service{
		Repo:  memdb.NewSettingsRepository(),
		Clock: fixedClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}
}

// A fresh organization reads the defaults without a stored row.
func TestGetDefaults(t *testing.T) {
	svc := newTestService(t)
	st, err := svc.Get(context.Background(), "acme")
	require.NoError(t, err)
	require.Equal(t, catalog.SizeStartup, st.CompanySize)
	require.Equal(t, "내 회사", st.CompanyName)
	require.True(t, st.UpdatedAt.IsZero())
}

func TestUpdatePatch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	size := catalog.SizeMedium
	st, err := svc.Update(ctx, "acme", Patch{CompanySize: &size})
	require.NoError(t, err)
	require.Equal(t, catalog.SizeMedium, st.CompanySize)
	// untouched fields keep their defaults
	require.Equal(t, "내 회사", st.CompanyName)
	require.False(t, st.UpdatedAt.IsZero())

	name := "한솔시스템즈"
	st, err = svc.Update(ctx, "acme", Patch{CompanyName: &name})
	require.NoError(t, err)
	require.Equal(t, catalog.SizeMedium, st.CompanySize)
	require.Equal(t, "한솔시스템즈", st.CompanyName)

	got, err := svc.Get(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, st, got)
}

func TestUpdateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	bad := catalog.CompanySize("enterprise")
	_, err := svc.Update(ctx, "acme", Patch{CompanySize: &bad})
	require.ErrorIs(t, err, ErrValidation)

	empty := "  "
	_, err = svc.Update(ctx, "acme", Patch{CompanyName: &empty})
	require.ErrorIs(t, err, ErrValidation)
}
