package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hansol-labs/compliboard/internal/application"
	appassist "github.com/hansol-labs/compliboard/internal/application/assist"
	appcompliance "github.com/hansol-labs/compliboard/internal/application/compliance"
	appdocs "github.com/hansol-labs/compliboard/internal/application/documents"
	appsettings "github.com/hansol-labs/compliboard/internal/application/settings"
	apptasks "github.com/hansol-labs/compliboard/internal/application/tasks"
	"github.com/hansol-labs/compliboard/internal/domain/documents"
	memdb "github.com/hansol-labs/compliboard/internal/infra/db/memory"
	"github.com/hansol-labs/compliboard/internal/infra/httpserver"
	"github.com/hansol-labs/compliboard/internal/infra/storage"
	"github.com/hansol-labs/compliboard/internal/middleware"
)

const testToken = "test-token-acme"

// newTestClient boots the full server stack on in-memory
// infrastructure and returns a client pointed at it.
func newTestClient(t *testing.T) *Client {
	t.Helper()

	var handler http.Handler
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	blobs := storage.NewMemory(srv.URL + "/blobs")
	clock := application.SystemClock{}
	settingsRepo := memdb.NewSettingsRepository()

	handler = httpserver.NewRouter(
		&appdocs.Service{Repo: memdb.NewDocumentRepository(), Blobs: blobs, Clock: clock},
		&appcompliance.Service{Statuses: memdb.NewStatusRepository(), Settings: settingsRepo, Clock: clock},
		&apptasks.Service{Repo: memdb.NewTaskRepository(), Clock: clock},
		&appsettings.Service{Repo: settingsRepo, Clock: clock},
		&appassist.Service{},
		httpserver.Options{
			Tokens: map[string]middleware.Principal{
				testToken: {Organization: "acme", User: "user-1"},
			},
			Blobs: blobs.Handler(),
		},
	)
	return New(srv.URL, testToken)
}

func TestDirectUploadStateSequence(t *testing.T) {
	c := newTestClient(t)

	var states []UploadState
	doc, err := c.DirectUpload(context.Background(), UploadRequest{
		Name:        "정보보안 정책",
		ControlID:   "A.5.1",
		Filename:    "policy.pdf",
		ContentType: "application/pdf",
		Data:        []byte("0123456789"),
	}, func(s UploadState) { states = append(states, s) })
	require.NoError(t, err)
	require.Equal(t, "정보보안 정책", doc.Name)
	require.Equal(t, int64(10), doc.FileSize)
	require.Equal(t, []UploadState{StateUploading, StateSucceeded}, states)
}

// A rejected direct upload ends in failed with the server's verdict.
func TestDirectUploadRejected(t *testing.T) {
	c := newTestClient(t)

	var states []UploadState
	_, err := c.DirectUpload(context.Background(), UploadRequest{
		Filename: "bad|name.pdf",
		Data:     []byte("x"),
	}, func(s UploadState) { states = append(states, s) })
	require.Error(t, err)
	require.Equal(t, []UploadState{StateUploading, StateFailed}, states)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestPresignedUploadStateSequence(t *testing.T) {
	c := newTestClient(t)

	var states []UploadState
	doc, err := c.PresignedUpload(context.Background(), UploadRequest{
		Name:        "정보보안 정책",
		ControlID:   "A.5.1",
		Filename:    "policy.pdf",
		ContentType: "application/pdf",
		Data:        []byte("0123456789"),
	}, func(s UploadState) { states = append(states, s) })
	require.NoError(t, err)
	require.Equal(t, int64(10), doc.FileSize)
	require.Equal(t, []UploadState{
		StateRequestingSlot, StateTransferring, StateConfirming, StateSucceeded,
	}, states)
}

// A rejected slot request ends in failed without touching later steps.
func TestPresignedUploadSlotRejected(t *testing.T) {
	c := newTestClient(t)

	var states []UploadState
	_, err := c.PresignedUpload(context.Background(), UploadRequest{
		Filename: "../../../etc/passwd",
		Data:     []byte("x"),
	}, func(s UploadState) { states = append(states, s) })
	require.Error(t, err)
	require.Equal(t, []UploadState{StateRequestingSlot, StateFailed}, states)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestPresignedUploadCancellation(t *testing.T) {
	c := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var states []UploadState
	_, err := c.PresignedUpload(ctx, UploadRequest{
		Filename: "policy.pdf",
		Data:     []byte("x"),
	}, func(s UploadState) { states = append(states, s) })
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, StateFailed, states[len(states)-1])
}

// Direct-path batches are independent: a failing file never aborts
// its siblings, and results keep input order.
func TestUploadAllSiblingIndependence(t *testing.T) {
	c := newTestClient(t)

	results := c.UploadAll(context.Background(), []UploadRequest{
		{Filename: "a.pdf", Data: []byte("aaa")},
		{Filename: "bad|name.pdf", Data: []byte("x")},
		{Filename: "c.pdf", Data: []byte("ccccc")},
	})
	require.Len(t, results, 3)
	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	require.NoError(t, results[2].Err)
	require.Equal(t, int64(3), results[0].Document.FileSize)
	require.Equal(t, int64(5), results[2].Document.FileSize)

	list, err := c.ListDocuments(context.Background(), documents.Filter{})
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
}

// Same property on the presigned handshake.
func TestPresignedUploadAllSiblingIndependence(t *testing.T) {
	c := newTestClient(t)

	results := c.PresignedUploadAll(context.Background(), []UploadRequest{
		{Filename: "a.pdf", Data: []byte("aaa")},
		{Filename: "../bad", Data: []byte("x")},
		{Filename: "c.pdf", Data: []byte("ccccc")},
	})
	require.Len(t, results, 3)
	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	require.NoError(t, results[2].Err)

	list, err := c.ListDocuments(context.Background(), documents.Filter{})
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
}

func TestDocumentRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	doc, err := c.PresignedUpload(ctx, UploadRequest{
		Filename: "policy.pdf",
		Data:     []byte("0123456789"),
	}, nil)
	require.NoError(t, err)

	desc := "2026년 개정판"
	updated, err := c.UpdateDocument(ctx, doc.ID, documents.Patch{Description: &desc})
	require.NoError(t, err)
	require.Equal(t, desc, updated.Description)

	url, err := c.DownloadURL(ctx, doc.ID)
	require.NoError(t, err)
	require.NotEmpty(t, url)

	require.NoError(t, c.DeleteDocument(ctx, doc.ID))
	_, err = c.DownloadURL(ctx, doc.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
}
