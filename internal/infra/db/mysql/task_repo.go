package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	domain "github.com/hansol-labs/compliboard/internal/domain/tasks"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Save inserts or updates a task. Tags are stored as a JSON array.
func (r *TaskRepository) Save(ctx context.Context, t *domain.Task) error {
	const q = `
INSERT INTO tasks
(id, organization_id, title, description, status, priority,
 control_id, assignee, due_date, tags, created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 title=VALUES(title), description=VALUES(description),
 status=VALUES(status), priority=VALUES(priority),
 control_id=VALUES(control_id), assignee=VALUES(assignee),
 due_date=VALUES(due_date), tags=VALUES(tags),
 updated_at=VALUES(updated_at);
`
	tags, err := json.Marshal(t.Tags)
	if err != nil {
		return err
	}
	created := t.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	updated := t.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	_, err = r.db.ExecContext(ctx, q,
		t.ID, stringOrDash(t.OrganizationID), t.Title, t.Description,
		t.Status, t.Priority, t.ControlID, t.Assignee, t.DueDate,
		tags, created, updated,
	)
	return err
}

// Get by ID + organization
func (r *TaskRepository) Get(ctx context.Context, org, id string) (*domain.Task, error) {
	const q = `
SELECT id, organization_id, title, description, status, priority,
       control_id, assignee, due_date, tags, created_at, updated_at
FROM tasks
WHERE organization_id=? AND id=? LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q, org, id)
	t, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// List returns tasks newest-first with optional filters
func (r *TaskRepository) List(ctx context.Context, org string, f domain.Filter) ([]*domain.Task, error) {
	query := `
SELECT id, organization_id, title, description, status, priority,
       control_id, assignee, due_date, tags, created_at, updated_at
FROM tasks
WHERE organization_id=?`
	args := []interface{}{org}
	if f.Status != "" {
		query += " AND status = ?"
		args = append(args, f.Status)
	}
	if f.ControlID != "" {
		query += " AND control_id = ?"
		args = append(args, f.ControlID)
	}
	query += "\nORDER BY created_at DESC, id DESC;"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Delete removes a task
func (r *TaskRepository) Delete(ctx context.Context, org, id string) error {
	const q = `DELETE FROM tasks WHERE organization_id=? AND id=?;`
	res, err := r.db.ExecContext(ctx, q, org, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTask(scan func(dest ...interface{}) error) (*domain.Task, error) {
	var t domain.Task
	var tags []byte
	if err := scan(
		&t.ID, &t.OrganizationID, &t.Title, &t.Description,
		&t.Status, &t.Priority, &t.ControlID, &t.Assignee, &t.DueDate,
		&tags, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &t.Tags); err != nil {
			return nil, err
		}
	}
	return &t, nil
}
