package tasks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hansol-labs/compliboard/internal/application"
	domain "github.com/hansol-labs/compliboard/internal/domain/tasks"
)

// Service implements the task-board use cases.
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
}

// CreateCommand carries a new task. Status defaults to todo and
// priority to medium when empty.
type CreateCommand struct {
	Title       string
	Description string
	Status      domain.Status
	Priority    domain.Priority
	ControlID   string
	Assignee    string
	DueDate     string
	Tags        []string
}

// Patch is a partial task update; nil fields are left unchanged.
type Patch struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Status      *domain.Status   `json:"status,omitempty"`
	Priority    *domain.Priority `json:"priority,omitempty"`
	ControlID   *string          `json:"control_id,omitempty"`
	Assignee    *string          `json:"assignee,omitempty"`
	DueDate     *string          `json:"due_date,omitempty"`
	Tags        *[]string        `json:"tags,omitempty"`
}

// Board groups tasks by column in board order.
type Board struct {
	Todo       []*domain.Task `json:"todo"`
	InProgress []*domain.Task `json:"in_progress"`
	Review     []*domain.Task `json:"review"`
	Completed  []*domain.Task `json:"completed"`
}

// Create adds a task. The id is synthesized from the owning control
// id and the creation timestamp, matching the ids the dashboard
// produces.
func (s *Service) Create(ctx context.Context, org string, cmd CreateCommand) (*domain.Task, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	status := cmd.Status
	if status == "" {
		status = domain.StatusTodo
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", domain.ErrValidation, status)
	}
	priority := cmd.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: priority %q", domain.ErrValidation, priority)
	}

	now := s.Clock.Now()
	t := &domain.Task{
		ID:             s.newID(cmd.ControlID, now),
		OrganizationID: org,
		Title:          cmd.Title,
		Description:    cmd.Description,
		Status:         status,
		Priority:       priority,
		ControlID:      cmd.ControlID,
		Assignee:       cmd.Assignee,
		DueDate:        cmd.DueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
		Tags:           cmd.Tags,
	}
	if err := s.Repo.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("saving task: %w", err)
	}
	return t, nil
}

// Update applies a partial patch and refreshes updated_at.
func (s *Service) Update(ctx context.Context, org, id string, p Patch) (*domain.Task, error) {
	t, err := s.Repo.Get(ctx, org, id)
	if err != nil {
		return nil, err
	}
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrValidation)
		}
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return nil, fmt.Errorf("%w: status %q", domain.ErrValidation, *p.Status)
		}
		t.Status = *p.Status
	}
	if p.Priority != nil {
		if !p.Priority.Valid() {
			return nil, fmt.Errorf("%w: priority %q", domain.ErrValidation, *p.Priority)
		}
		t.Priority = *p.Priority
	}
	if p.ControlID != nil {
		t.ControlID = *p.ControlID
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	t.UpdatedAt = s.Clock.Now()
	if err := s.Repo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// SetStatus moves a task to another column, refreshing updated_at.
func (s *Service) SetStatus(ctx context.Context, org, id string, status domain.Status) (*domain.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", domain.ErrValidation, status)
	}
	return s.Update(ctx, org, id, Patch{Status: &status})
}

// List returns tasks matching the filter.
func (s *Service) List(ctx context.Context, org string, f domain.Filter) ([]*domain.Task, error) {
	return s.Repo.List(ctx, org, f)
}

// BoardView groups all tasks by column.
func (s *Service) BoardView(ctx context.Context, org string) (*Board, error) {
	all, err := s.Repo.List(ctx, org, domain.Filter{})
	if err != nil {
		return nil, err
	}
	b := &Board{}
	for _, t := range all {
		switch t.Status {
		case domain.StatusTodo:
			b.Todo = append(b.Todo, t)
		case domain.StatusInProgress:
			b.InProgress = append(b.InProgress, t)
		case domain.StatusReview:
			b.Review = append(b.Review, t)
		case domain.StatusCompleted:
			b.Completed = append(b.Completed, t)
		}
	}
	return b, nil
}

// Delete removes a task.
func (s *Service) Delete(ctx context.Context, org, id string) error {
	return s.Repo.Delete(ctx, org, id)
}

func (s *Service) newID(controlID string, now time.Time) string {
	if controlID != "" {
		return fmt.Sprintf("task-%s-%d", controlID, now.UnixMilli())
	}
	return "task-" + uuid.New().String()
}
