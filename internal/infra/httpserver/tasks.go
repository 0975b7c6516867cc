package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	apptasks "github.com/hansol-labs/compliboard/internal/application/tasks"
	domain "github.com/hansol-labs/compliboard/internal/domain/tasks"
	"github.com/hansol-labs/compliboard/internal/middleware"
)

// GET /api/tasks?status=&control_id=
func (r *Router) handleListTasks(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	q := req.URL.Query()

	status := domain.Status(q.Get("status"))
	if status != "" && !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	list, err := r.tasksSvc.List(req.Context(), org, domain.Filter{
		Status:    status,
		ControlID: q.Get("control_id"),
	})
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domain.Task{}
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"tasks": list,
		"total": len(list),
	})
}

// POST /api/tasks
func (r *Router) handleCreateTask(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	var body struct {
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Status      domain.Status   `json:"status"`
		Priority    domain.Priority `json:"priority"`
		ControlID   string          `json:"control_id"`
		Assignee    string          `json:"assignee"`
		DueDate     string          `json:"due_date"`
		Tags        []string        `json:"tags"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	task, err := r.tasksSvc.Create(req.Context(), org, apptasks.CreateCommand{
		Title:       middleware.SanitizeString(body.Title),
		Description: middleware.SanitizeString(body.Description),
		Status:      body.Status,
		Priority:    body.Priority,
		ControlID:   body.ControlID,
		Assignee:    middleware.SanitizeString(body.Assignee),
		DueDate:     body.DueDate,
		Tags:        body.Tags,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, task)
}

// GET /api/tasks/board
func (r *Router) handleTaskBoard(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	board, err := r.tasksSvc.BoardView(req.Context(), org)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, board)
}

// PATCH /api/tasks/{id}
func (r *Router) handleUpdateTask(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	id := chi.URLParam(req, "id")

	var patch apptasks.Patch
	if err := json.NewDecoder(req.Body).Decode(&patch); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	task, err := r.tasksSvc.Update(req.Context(), org, id, patch)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, task)
}

// PUT /api/tasks/{id}/status
func (r *Router) handleSetTaskStatus(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	id := chi.URLParam(req, "id")

	var body struct {
		Status domain.Status `json:"status"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	task, err := r.tasksSvc.SetStatus(req.Context(), org, id, body.Status)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, task)
}

// DELETE /api/tasks/{id}
func (r *Router) handleDeleteTask(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	id := chi.URLParam(req, "id")
	if err := r.tasksSvc.Delete(req.Context(), org, id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
