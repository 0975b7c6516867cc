package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hansol-labs/compliboard/internal/domain/documents"
)

// ListDocuments fetches the document list with optional filters.
func (c *Client) ListDocuments(ctx context.Context, f documents.Filter) (*documents.List, error) {
	q := url.Values{}
	if f.ControlID != "" {
		q.Set("control_id", f.ControlID)
	}
	if f.TaskID != "" {
		q.Set("task_id", f.TaskID)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	path := "/api/documents"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out documents.List
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDocument applies a partial patch to one document.
func (c *Client) UpdateDocument(ctx context.Context, id string, p documents.Patch) (*documents.Document, error) {
	var out documents.Document
	if err := c.doJSON(ctx, http.MethodPatch, "/api/documents/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDocument removes one document and its stored object.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/documents/"+id, nil, nil)
}

// DownloadURL fetches a fresh time-limited download URL. URLs expire,
// so this is called at click time and never cached.
func (c *Client) DownloadURL(ctx context.Context, id string) (string, error) {
	var out struct {
		DownloadURL string `json:"download_url"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/documents/"+id+"/download", nil, &out); err != nil {
		return "", err
	}
	return out.DownloadURL, nil
}
