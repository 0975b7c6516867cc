package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"sync"

	"github.com/hansol-labs/compliboard/internal/domain/documents"
)

// UploadState tracks one upload through either path: the direct
// multipart post visits uploading only, the presigned handshake visits
// requesting_slot, transferring and confirming. Both end in succeeded
// or failed.
type UploadState string

const (
	StateIdle           UploadState = "idle"
	StateUploading      UploadState = "uploading"
	StateRequestingSlot UploadState = "requesting_slot"
	StateTransferring   UploadState = "transferring"
	StateConfirming     UploadState = "confirming"
	StateSucceeded      UploadState = "succeeded"
	StateFailed         UploadState = "failed"
)

// StateFunc observes state transitions of one upload. Optional.
type StateFunc func(state UploadState)

// UploadRequest carries one file plus its metadata.
type UploadRequest struct {
	Name        string
	Description string
	ControlID   string
	TaskID      string
	Filename    string
	ContentType string
	Data        []byte
}

// UploadResult is the per-file outcome of a batch upload. Exactly one
// of Document and Err is set.
type UploadResult struct {
	Document *documents.Document
	Err      error
}

// DirectUpload posts the file through the backend as one multipart
// request. Its machine is shorter than the presigned one: uploading,
// then succeeded or failed. Retrying a failure means starting over.
func (c *Client) DirectUpload(ctx context.Context, req UploadRequest, onState StateFunc) (*documents.Document, error) {
	notify := func(s UploadState) {
		if onState != nil {
			onState(s)
		}
	}
	fail := func(err error) (*documents.Document, error) {
		notify(StateFailed)
		return nil, err
	}

	notify(StateUploading)
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"name", req.Name},
		{"description", req.Description},
		{"control_id", req.ControlID},
		{"task_id", req.TaskID},
	}
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return fail(err)
		}
	}
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, req.Filename))
	if req.ContentType != "" {
		hdr.Set("Content-Type", req.ContentType)
	}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return fail(err)
	}
	if _, err := part.Write(req.Data); err != nil {
		return fail(err)
	}
	if err := mw.Close(); err != nil {
		return fail(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/documents/upload", &buf)
	if err != nil {
		return fail(err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	if c.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return fail(fmt.Errorf("uploading %s: %w", req.Filename, err))
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fail(&APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(msg))})
	}
	var doc documents.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fail(err)
	}

	notify(StateSucceeded)
	return &doc, nil
}

// PresignedUpload runs the three-step handshake: request a slot, PUT
// the bytes to the slot URL, confirm. A failure at any step leaves the
// slot abandoned; retrying means starting over with a fresh slot, the
// coordinator never reuses one. The context cancels whichever step is
// in flight.
func (c *Client) PresignedUpload(ctx context.Context, req UploadRequest, onState StateFunc) (*documents.Document, error) {
	notify := func(s UploadState) {
		if onState != nil {
			onState(s)
		}
	}
	fail := func(err error) (*documents.Document, error) {
		notify(StateFailed)
		return nil, err
	}

	notify(StateRequestingSlot)
	var slot documents.UploadSlot
	err := c.doJSON(ctx, http.MethodPost, "/api/documents/presigned-upload", map[string]string{
		"filename":     req.Filename,
		"content_type": req.ContentType,
	}, &slot)
	if err != nil {
		return fail(fmt.Errorf("requesting upload slot: %w", err))
	}

	notify(StateTransferring)
	if err := c.transfer(ctx, slot.UploadURL, req.ContentType, req.Data); err != nil {
		return fail(fmt.Errorf("transferring %s: %w", req.Filename, err))
	}

	notify(StateConfirming)
	name := req.Name
	if name == "" {
		name = req.Filename
	}
	var doc documents.Document
	err = c.doJSON(ctx, http.MethodPost, "/api/documents/confirm-upload", map[string]any{
		"name":        name,
		"file_key":    slot.FileKey,
		"file_size":   len(req.Data),
		"mime_type":   req.ContentType,
		"description": req.Description,
		"control_id":  req.ControlID,
		"task_id":     req.TaskID,
	}, &doc)
	if err != nil {
		return fail(fmt.Errorf("confirming %s: %w", req.Filename, err))
	}

	notify(StateSucceeded)
	return &doc, nil
}

// transfer PUTs the raw bytes to the slot URL. The slot URL is already
// authenticated by its signature; no bearer token is attached.
func (c *Client) transfer(ctx context.Context, uploadURL, contentType string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.ContentLength = int64(len(data))

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}
	return nil
}

// UploadAll uploads a batch on the direct path, one goroutine per
// file. Files are independent: a failed sibling never aborts the
// others, and results come back in input order.
func (c *Client) UploadAll(ctx context.Context, reqs []UploadRequest) []UploadResult {
	return c.uploadAll(ctx, reqs, c.DirectUpload)
}

// PresignedUploadAll is UploadAll on the presigned handshake.
func (c *Client) PresignedUploadAll(ctx context.Context, reqs []UploadRequest) []UploadResult {
	return c.uploadAll(ctx, reqs, c.PresignedUpload)
}

func (c *Client) uploadAll(
	ctx context.Context,
	reqs []UploadRequest,
	upload func(context.Context, UploadRequest, StateFunc) (*documents.Document, error),
) []UploadResult {
	results := make([]UploadResult, len(reqs))
	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req UploadRequest) {
			defer wg.Done()
			doc, err := upload(ctx, req, nil)
			results[i] = UploadResult{Document: doc, Err: err}
		}(i, req)
	}
	wg.Wait()
	return results
}
