package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	appdocs "github.com/hansol-labs/compliboard/internal/application/documents"
	domain "github.com/hansol-labs/compliboard/internal/domain/documents"
	"github.com/hansol-labs/compliboard/internal/middleware"
)

// maxUploadBytes bounds the server-proxied multipart path. The
// presigned path streams straight to the object store and is not
// subject to this limit.
const maxUploadBytes = 100 << 20

// GET /api/documents?control_id=&task_id=&search=
func (r *Router) handleListDocuments(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	q := req.URL.Query()
	f := domain.Filter{
		ControlID: q.Get("control_id"),
		TaskID:    q.Get("task_id"),
		Search:    middleware.SanitizeString(q.Get("search")),
	}
	list, err := r.docsSvc.List(req.Context(), org, f)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, list)
}

// POST /api/documents/upload (multipart/form-data)
func (r *Router) handleUploadDocument(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	user := middleware.GetUserFromContext(req.Context())

	req.Body = http.MaxBytesReader(w, req.Body, maxUploadBytes)
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	file, header, err := req.FormFile("file")
	if err != nil {
		return fmt.Errorf("%w: file field is required", domain.ErrValidation)
	}
	defer file.Close()

	if err := middleware.ValidateFilename(header.Filename); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	contentType := header.Header.Get("Content-Type")
	if err := middleware.ValidateContentType(contentType); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	doc, err := r.docsSvc.DirectUpload(req.Context(), org, user, appdocs.UploadCommand{
		Name:        middleware.SanitizeString(req.FormValue("name")),
		Description: middleware.SanitizeString(req.FormValue("description")),
		ControlID:   req.FormValue("control_id"),
		TaskID:      req.FormValue("task_id"),
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		middleware.IncrementUploadsFailed()
		return err
	}
	middleware.IncrementUploads()
	return writeJSON(w, http.StatusCreated, doc)
}

// POST /api/documents/presigned-upload
// Body: {"filename": "...", "content_type": "..."}
func (r *Router) handlePresignUpload(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	var body struct {
		Filename    string `json:"filename"`
		ContentType string `json:"content_type"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := middleware.ValidateFilename(body.Filename); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := middleware.ValidateContentType(body.ContentType); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	slot, err := r.docsSvc.PresignUpload(req.Context(), org, body.Filename, body.ContentType)
	if err != nil {
		return err
	}
	middleware.IncrementSlots()
	return writeJSON(w, http.StatusOK, slot)
}

// POST /api/documents/confirm-upload
func (r *Router) handleConfirmUpload(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	user := middleware.GetUserFromContext(req.Context())
	var body struct {
		Name        string `json:"name"`
		FileKey     string `json:"file_key"`
		FileSize    int64  `json:"file_size"`
		MimeType    string `json:"mime_type"`
		Description string `json:"description"`
		ControlID   string `json:"control_id"`
		TaskID      string `json:"task_id"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	doc, err := r.docsSvc.ConfirmUpload(req.Context(), org, user, appdocs.ConfirmCommand{
		Name:        middleware.SanitizeString(body.Name),
		FileKey:     body.FileKey,
		FileSize:    body.FileSize,
		MimeType:    body.MimeType,
		Description: middleware.SanitizeString(body.Description),
		ControlID:   body.ControlID,
		TaskID:      body.TaskID,
	})
	if err != nil {
		middleware.IncrementUploadsFailed()
		return err
	}
	middleware.IncrementUploads()
	return writeJSON(w, http.StatusCreated, doc)
}

// PATCH /api/documents/{id}
func (r *Router) handleUpdateDocument(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	id := chi.URLParam(req, "id")

	var patch domain.Patch
	if err := json.NewDecoder(req.Body).Decode(&patch); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	doc, err := r.docsSvc.Update(req.Context(), org, id, patch)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, doc)
}

// DELETE /api/documents/{id}
func (r *Router) handleDeleteDocument(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	id := chi.URLParam(req, "id")
	if err := r.docsSvc.Delete(req.Context(), org, id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// GET /api/documents/{id}/download
func (r *Router) handleDownloadDocument(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	id := chi.URLParam(req, "id")
	url, err := r.docsSvc.DownloadURL(req.Context(), org, id)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]string{"download_url": url})
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
