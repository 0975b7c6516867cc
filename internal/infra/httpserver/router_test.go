package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
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
	"github.com/hansol-labs/compliboard/internal/infra/storage"
	"github.com/hansol-labs/compliboard/internal/middleware"
)

const testToken = "test-token-acme"

// newTestServer stands up the whole stack on in-memory infrastructure,
// with the memory blob store mounted at /blobs so presigned URLs
// resolve against the test server itself.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	var handler http.Handler
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	blobs := storage.NewMemory(srv.URL + "/blobs")
	clock := application.SystemClock{}
	settingsRepo := memdb.NewSettingsRepository()

	handler = NewRouter(
		&appdocs.Service{Repo: memdb.NewDocumentRepository(), Blobs: blobs, Clock: clock},
		&appcompliance.Service{Statuses: memdb.NewStatusRepository(), Settings: settingsRepo, Clock: clock},
		&apptasks.Service{Repo: memdb.NewTaskRepository(), Clock: clock},
		&appsettings.Service{Repo: settingsRepo, Clock: clock},
		&appassist.Service{},
		Options{
			Tokens: map[string]middleware.Principal{
				testToken: {Organization: "acme", User: "user-1"},
			},
			Blobs: blobs.Handler(),
		},
	)
	return srv
}

func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/documents")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// health and metrics stay open
	for _, path := range []string{"/health", "/metrics", "/ready"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestMultipartUploadAndList(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "정보보안 정책"))
	require.NoError(t, mw.WriteField("control_id", "A.5.1"))
	fw, err := mw.CreateFormFile("file", "policy.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("0123456789"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/documents/upload", &buf)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var doc documents.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	require.Equal(t, "정보보안 정책", doc.Name)
	require.Equal(t, int64(10), doc.FileSize)

	var list documents.List
	doJSON(t, http.MethodGet, srv.URL+"/api/documents?control_id=A.5.1", nil, &list)
	require.Equal(t, 1, list.Total)
	require.Equal(t, int64(10), list.TotalSize)

	// filter by an unrelated control
	doJSON(t, http.MethodGet, srv.URL+"/api/documents?control_id=A.8.1", nil, &list)
	require.Zero(t, list.Total)
}

// The full presigned handshake against the test server: slot, PUT
// bytes, confirm, then download.
func TestPresignedUploadEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	var slot documents.UploadSlot
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/documents/presigned-upload", map[string]string{
		"filename":     "policy.pdf",
		"content_type": "application/pdf",
	}, &slot)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, slot.UploadURL)
	require.Positive(t, slot.ExpiresIn)

	put, err := http.NewRequest(http.MethodPut, slot.UploadURL, bytes.NewReader([]byte("0123456789")))
	require.NoError(t, err)
	put.Header.Set("Content-Type", "application/pdf")
	putResp, err := http.DefaultClient.Do(put)
	require.NoError(t, err)
	putResp.Body.Close()
	require.Equal(t, http.StatusOK, putResp.StatusCode)

	var doc documents.Document
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/documents/confirm-upload", map[string]any{
		"name":     "policy.pdf",
		"file_key": slot.FileKey,
	}, &doc)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, int64(10), doc.FileSize)

	var dl struct {
		DownloadURL string `json:"download_url"`
	}
	doJSON(t, http.MethodGet, srv.URL+"/api/documents/"+doc.ID+"/download", nil, &dl)
	got, err := http.Get(dl.DownloadURL)
	require.NoError(t, err)
	defer got.Body.Close()
	data, err := io.ReadAll(got.Body)
	require.NoError(t, err)
	require.Equal(t, "0123456789", string(data))
}

// Confirming a slot whose transfer never happened is rejected.
func TestConfirmWithoutTransfer(t *testing.T) {
	srv := newTestServer(t)

	var slot documents.UploadSlot
	doJSON(t, http.MethodPost, srv.URL+"/api/documents/presigned-upload", map[string]string{
		"filename": "ghost.pdf",
	}, &slot)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/documents/confirm-upload", map[string]any{
		"name":     "ghost.pdf",
		"file_key": slot.FileKey,
	}, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestControlStatusFlow(t *testing.T) {
	srv := newTestServer(t)

	var out struct {
		Status   string `json:"status"`
		Progress int    `json:"progress"`
	}
	resp := doJSON(t, http.MethodPut, srv.URL+"/api/controls/A.5.1/status", map[string]any{
		"status": "completed",
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "completed", out.Status)
	require.Equal(t, 100, out.Progress)

	// unknown ids map to 404
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/controls/A.99.1/status", map[string]any{
		"status": "completed",
	}, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// malformed status maps to 400
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/controls/A.5.1/status", map[string]any{
		"status": "done",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// malformed ids are rejected before any repository round-trip
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/controls/abc/status", map[string]any{
		"status": "completed",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var summary struct {
		Completed int `json:"completed"`
		Total     int `json:"total"`
	}
	doJSON(t, http.MethodGet, srv.URL+"/api/controls/summary", nil, &summary)
	require.Equal(t, 1, summary.Completed)
}

// Changing the company size reshapes the visible checklist.
func TestSettingsChangeReshapesControls(t *testing.T) {
	srv := newTestServer(t)

	var before struct {
		Total int `json:"total"`
	}
	doJSON(t, http.MethodGet, srv.URL+"/api/controls", nil, &before)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/settings", map[string]string{
		"company_size": "large",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var after struct {
		Total int `json:"total"`
	}
	doJSON(t, http.MethodGet, srv.URL+"/api/controls", nil, &after)
	require.Greater(t, after.Total, before.Total)
}

func TestTaskLifecycle(t *testing.T) {
	srv := newTestServer(t)

	var task struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/tasks", map[string]any{
		"title":      "접근 권한 검토",
		"control_id": "A.5.18",
	}, &task)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "todo", task.Status)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/tasks/"+task.ID+"/status", map[string]string{
		"status": "in_progress",
	}, &task)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "in_progress", task.Status)

	var board struct {
		InProgress []json.RawMessage `json:"in_progress"`
	}
	doJSON(t, http.MethodGet, srv.URL+"/api/tasks/board", nil, &board)
	require.Len(t, board.InProgress, 1)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/tasks/"+task.ID, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/tasks/"+task.ID, nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Assist without a configured client degrades to 503.
func TestAssistUnconfigured(t *testing.T) {
	srv := newTestServer(t)
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/controls/A.5.1/assist", nil, nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestProfilesEndpoint(t *testing.T) {
	srv := newTestServer(t)
	var out struct {
		Profiles []struct {
			Size         string `json:"size"`
			ControlCount int    `json:"control_count"`
		} `json:"profiles"`
	}
	doJSON(t, http.MethodGet, srv.URL+"/api/profiles", nil, &out)
	require.Len(t, out.Profiles, 4)
	require.Equal(t, "startup", out.Profiles[0].Size)
	require.Equal(t, 93, out.Profiles[3].ControlCount)
}
