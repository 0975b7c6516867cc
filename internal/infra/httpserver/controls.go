package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hansol-labs/compliboard/internal/domain/catalog"
	domain "github.com/hansol-labs/compliboard/internal/domain/compliance"
	"github.com/hansol-labs/compliboard/internal/middleware"
)

// parseKind maps the type query param to a catalog variant. Empty
// means both variants.
func parseKind(v string) (catalog.Kind, error) {
	switch v {
	case "":
		return "", nil
	case string(catalog.KindClause):
		return catalog.KindClause, nil
	case string(catalog.KindAnnexA):
		return catalog.KindAnnexA, nil
	}
	return "", fmt.Errorf("%w: unknown type %q", domain.ErrValidation, v)
}

// GET /api/controls?type=&category=&status=&search=
func (r *Router) handleListControls(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	q := req.URL.Query()

	kind, err := parseKind(q.Get("type"))
	if err != nil {
		return err
	}
	status := domain.Status(q.Get("status"))
	if status != "" && !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	list, err := r.controlsSvc.List(req.Context(), org, domain.Query{
		Search:   middleware.SanitizeString(q.Get("search")),
		Category: q.Get("category"),
		Status:   status,
		Kind:     kind,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"controls": list,
		"total":    len(list),
	})
}

// GET /api/controls/stats?type=
func (r *Router) handleControlStats(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	kind, err := parseKind(req.URL.Query().Get("type"))
	if err != nil {
		return err
	}
	stats, err := r.controlsSvc.Stats(req.Context(), org, kind)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, stats)
}

// GET /api/controls/summary?type=
func (r *Router) handleControlSummary(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	kind, err := parseKind(req.URL.Query().Get("type"))
	if err != nil {
		return err
	}
	summary, err := r.controlsSvc.Summary(req.Context(), org, kind)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, summary)
}

// GET /api/controls/{id}
func (r *Router) handleGetControl(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	id := chi.URLParam(req, "id")
	detail, err := r.controlsSvc.Get(req.Context(), org, id)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, detail)
}

// PUT /api/controls/{id}/status
// Body: {"status": "..."} and/or {"progress": N}
func (r *Router) handleSetControlStatus(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateControlID(id); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	var body struct {
		Status   *domain.Status `json:"status"`
		Progress *int           `json:"progress"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if body.Status == nil && body.Progress == nil {
		return fmt.Errorf("%w: status or progress is required", domain.ErrValidation)
	}

	var rec domain.Record
	var err error
	if body.Status != nil {
		if !body.Status.Valid() {
			return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *body.Status)
		}
		rec, err = r.controlsSvc.SetStatus(req.Context(), org, id, *body.Status)
		if err != nil {
			return err
		}
	}
	if body.Progress != nil {
		rec, err = r.controlsSvc.SetProgress(req.Context(), org, id, *body.Progress)
		if err != nil {
			return err
		}
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"id":       id,
		"status":   rec.Status,
		"progress": rec.Progress,
	})
}

// POST /api/controls/{id}/assist
func (r *Router) handleAssist(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	guidance, err := r.assistSvc.Guide(req.Context(), id)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write([]byte(guidance))
	return err
}
