package tasks

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/hansol-labs/compliboard/internal/domain/tasks"
	memdb "github.com/hansol-labs/compliboard/internal/infra/db/memory"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()
	return &Service{
		Repo:  memdb.NewTaskRepository(),
		Clock: fixedClock{t: now},
	}
}

func TestCreateDefaultsAndID(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	task, err := svc.Create(context.Background(), "acme", CreateCommand{
		Title:     "접근 권한 검토",
		ControlID: "A.5.18",
	})
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("task-A.5.18-%d", now.UnixMilli()), task.ID)
	require.Equal(t, domain.StatusTodo, task.Status)
	require.Equal(t, domain.PriorityMedium, task.Priority)
	require.Equal(t, now, task.CreatedAt)
}

func TestCreateWithoutControlGetsRandomID(t *testing.T) {
	svc := newTestService(t, time.Now())
	task, err := svc.Create(context.Background(), "acme", CreateCommand{Title: "t"})
	require.NoError(t, err)
	require.Contains(t, task.ID, "task-")
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t, time.Now())
	ctx := context.Background()

	_, err := svc.Create(ctx, "acme", CreateCommand{Title: "  "})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(ctx, "acme", CreateCommand{Title: "t", Status: "blocked"})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(ctx, "acme", CreateCommand{Title: "t", Priority: "asap"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := &steppingClock{t: created}
	svc := &Service{Repo: memdb.NewTaskRepository(), Clock: clock}
	ctx := context.Background()

	task, err := svc.Create(ctx, "acme", CreateCommand{Title: "t"})
	require.NoError(t, err)

	clock.t = created.Add(time.Hour)
	title := "renamed"
	got, err := svc.Update(ctx, "acme", task.ID, Patch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "renamed", got.Title)
	require.Equal(t, created, got.CreatedAt)
	require.Equal(t, created.Add(time.Hour), got.UpdatedAt)
}

type steppingClock struct{ t time.Time }

func (c *steppingClock) Now() time.Time { return c.t }

func TestSetStatusValidates(t *testing.T) {
	svc := newTestService(t, time.Now())
	ctx := context.Background()

	task, err := svc.Create(ctx, "acme", CreateCommand{Title: "t"})
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, "acme", task.ID, "done")
	require.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.SetStatus(ctx, "acme", task.ID, domain.StatusReview)
	require.NoError(t, err)
	require.Equal(t, domain.StatusReview, got.Status)
}

func TestBoardView(t *testing.T) {
	svc := newTestService(t, time.Now())
	ctx := context.Background()

	for _, s := range []domain.Status{domain.StatusTodo, domain.StatusInProgress, domain.StatusReview, domain.StatusCompleted} {
		_, err := svc.Create(ctx, "acme", CreateCommand{
			Title: "task " + string(s), Status: s,
			ControlID: "A.5." + string(s[:1]),
		})
		require.NoError(t, err)
	}

	board, err := svc.BoardView(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, board.Todo, 1)
	require.Len(t, board.InProgress, 1)
	require.Len(t, board.Review, 1)
	require.Len(t, board.Completed, 1)
}

func TestDeleteAndOrgIsolation(t *testing.T) {
	svc := newTestService(t, time.Now())
	ctx := context.Background()

	task, err := svc.Create(ctx, "acme", CreateCommand{Title: "t"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, "globex", task.ID), domain.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "acme", task.ID))
	require.ErrorIs(t, svc.Delete(ctx, "acme", task.ID), domain.ErrNotFound)
}
