package documents

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/hansol-labs/compliboard/internal/domain/documents"
	memdb "github.com/hansol-labs/compliboard/internal/infra/db/memory"
	"github.com/hansol-labs/compliboard/internal/infra/storage"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestService(t *testing.T) (*Service, *storage.Memory) {
	t.Helper()
	blobs := storage.NewMemory("http://blobs.test")
	svc := &Service{
		Repo:  memdb.NewDocumentRepository(),
		Blobs: blobs,
		Clock: fixedClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}
	return svc, blobs
}

func TestDirectUpload(t *testing.T) {
	svc, blobs := newTestService(t)
	ctx := context.Background()

	doc, err := svc.DirectUpload(ctx, "acme", "user-1", UploadCommand{
		Name:        "정보보안 정책",
		ControlID:   "A.5.1",
		Filename:    "policy.pdf",
		ContentType: "application/pdf",
		Size:        10,
		Body:        bytes.NewReader([]byte("0123456789")),
	})
	require.NoError(t, err)
	require.NotEmpty(t, doc.ID)
	require.Equal(t, 1, doc.Version)
	require.Equal(t, "acme", doc.OrganizationID)
	require.Equal(t, "user-1", doc.UploadedByID)
	require.Equal(t, int64(10), doc.FileSize)

	size, err := blobs.Stat(ctx, doc.FileKey)
	require.NoError(t, err)
	require.Equal(t, int64(10), size)
}

func TestDirectUploadRequiresFilename(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.DirectUpload(context.Background(), "acme", "u", UploadCommand{})
	require.ErrorIs(t, err, domain.ErrValidation)
}

// Re-uploading under the same display name bumps the version.
func TestVersioningByName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		doc, err := svc.DirectUpload(ctx, "acme", "u", UploadCommand{
			Name:     "접근 통제 정책",
			Filename: "access.pdf",
			Size:     4,
			Body:     bytes.NewReader([]byte("data")),
		})
		require.NoError(t, err)
		require.Equal(t, want, doc.Version)
	}

	// a different name starts back at version 1
	doc, err := svc.DirectUpload(ctx, "acme", "u", UploadCommand{
		Name:     "암호화 정책",
		Filename: "crypto.pdf",
		Size:     4,
		Body:     bytes.NewReader([]byte("data")),
	})
	require.NoError(t, err)
	require.Equal(t, 1, doc.Version)
}

func TestPresignAndConfirm(t *testing.T) {
	svc, blobs := newTestService(t)
	ctx := context.Background()

	slot, err := svc.PresignUpload(ctx, "acme", "policy.pdf", "application/pdf")
	require.NoError(t, err)
	require.NotEmpty(t, slot.UploadURL)
	require.Contains(t, slot.FileKey, "evidence/acme/")
	require.Equal(t, int(slotExpiry.Seconds()), slot.ExpiresIn)

	// simulate the client transferring to the slot
	err = blobs.Put(ctx, slot.FileKey, "application/pdf", 10, bytes.NewReader([]byte("0123456789")))
	require.NoError(t, err)

	doc, err := svc.ConfirmUpload(ctx, "acme", "u", ConfirmCommand{
		Name:    "policy.pdf",
		FileKey: slot.FileKey,
		// client-declared size disagrees; the store wins
		FileSize: 999,
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), doc.FileSize)
	require.Equal(t, 1, doc.Version)
}

// Confirming a key that was never transferred must not create an
// orphan record.
func TestConfirmRequiresObject(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ConfirmUpload(ctx, "acme", "u", ConfirmCommand{
		Name:    "ghost.pdf",
		FileKey: "evidence/acme/never-transferred",
	})
	require.ErrorIs(t, err, domain.ErrObjectMissing)

	list, err := svc.List(ctx, "acme", domain.Filter{})
	require.NoError(t, err)
	require.Zero(t, list.Total)
}

func TestUpdatePatch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	doc, err := svc.DirectUpload(ctx, "acme", "u", UploadCommand{
		Filename: "a.txt", Size: 1, Body: bytes.NewReader([]byte("x")),
	})
	require.NoError(t, err)

	desc := "updated"
	got, err := svc.Update(ctx, "acme", doc.ID, domain.Patch{Description: &desc})
	require.NoError(t, err)
	require.Equal(t, "updated", got.Description)
	require.Equal(t, doc.Name, got.Name)

	empty := " "
	_, err = svc.Update(ctx, "acme", doc.ID, domain.Patch{Name: &empty})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteRemovesObject(t *testing.T) {
	svc, blobs := newTestService(t)
	ctx := context.Background()

	doc, err := svc.DirectUpload(ctx, "acme", "u", UploadCommand{
		Filename: "a.txt", Size: 1, Body: bytes.NewReader([]byte("x")),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "acme", doc.ID))

	_, err = blobs.Stat(ctx, doc.FileKey)
	require.ErrorIs(t, err, domain.ErrObjectMissing)
	_, err = svc.DownloadURL(ctx, "acme", doc.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteOtherOrg(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	doc, err := svc.DirectUpload(ctx, "acme", "u", UploadCommand{
		Filename: "a.txt", Size: 1, Body: bytes.NewReader([]byte("x")),
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, "globex", doc.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadURL(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	doc, err := svc.DirectUpload(ctx, "acme", "u", UploadCommand{
		Filename: "a.txt", Size: 1, Body: bytes.NewReader([]byte("x")),
	})
	require.NoError(t, err)

	url, err := svc.DownloadURL(ctx, "acme", doc.ID)
	require.NoError(t, err)
	require.Contains(t, url, doc.FileKey)
}
