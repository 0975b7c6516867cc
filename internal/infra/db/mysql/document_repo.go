package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/hansol-labs/compliboard/internal/domain/documents"
)

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Save inserts or updates a document record
func (r *DocumentRepository) Save(ctx context.Context, d *domain.Document) error {
	const q = `
INSERT INTO documents
(id, organization_id, name, description, file_key, file_size, mime_type,
 version, control_id, task_id, uploaded_by_id, created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 name=VALUES(name), description=VALUES(description),
 control_id=VALUES(control_id), task_id=VALUES(task_id),
 updated_at=VALUES(updated_at);
`
	created := d.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	updated := d.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	_, err := r.db.ExecContext(ctx, q,
		d.ID, stringOrDash(d.OrganizationID), d.Name, d.Description,
		d.FileKey, d.FileSize, d.MimeType,
		d.Version, d.ControlID, d.TaskID, d.UploadedByID,
		created, updated,
	)
	return err
}

// Get by ID + organization
func (r *DocumentRepository) Get(ctx context.Context, org, id string) (*domain.Document, error) {
	const q = `
SELECT id, organization_id, name, description, file_key, file_size, mime_type,
       version, control_id, task_id, uploaded_by_id, created_at, updated_at
FROM documents
WHERE organization_id=? AND id=? LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q, org, id)
	var d domain.Document
	if err := row.Scan(
		&d.ID, &d.OrganizationID, &d.Name, &d.Description,
		&d.FileKey, &d.FileSize, &d.MimeType,
		&d.Version, &d.ControlID, &d.TaskID, &d.UploadedByID,
		&d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// List returns documents newest-first with filters plus the aggregate
// count and byte total over the same filtered set.
func (r *DocumentRepository) List(ctx context.Context, org string, f domain.Filter) (*domain.List, error) {
	query := `
SELECT id, organization_id, name, description, file_key, file_size, mime_type,
       version, control_id, task_id, uploaded_by_id, created_at, updated_at
FROM documents
WHERE organization_id=?`
	args := []interface{}{org}

	if f.ControlID != "" {
		query += " AND control_id = ?"
		args = append(args, f.ControlID)
	}
	if f.TaskID != "" {
		query += " AND task_id = ?"
		args = append(args, f.TaskID)
	}
	if f.Search != "" {
		query += " AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)"
		term := "%" + escapeLikePattern(strings.ToLower(f.Search)) + "%"
		args = append(args, term, term)
	}
	query += "\nORDER BY created_at DESC, id DESC;"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	out := &domain.List{Documents: []*domain.Document{}}
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(
			&d.ID, &d.OrganizationID, &d.Name, &d.Description,
			&d.FileKey, &d.FileSize, &d.MimeType,
			&d.Version, &d.ControlID, &d.TaskID, &d.UploadedByID,
			&d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out.Documents = append(out.Documents, &d)
		out.TotalSize += d.FileSize
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out.Total = len(out.Documents)
	return out, nil
}

// Delete removes a document record
func (r *DocumentRepository) Delete(ctx context.Context, org, id string) error {
	const q = `DELETE FROM documents WHERE organization_id=? AND id=?;`
	res, err := r.db.ExecContext(ctx, q, org, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextVersion counts existing documents sharing the display name
func (r *DocumentRepository) NextVersion(ctx context.Context, org, name string) (int, error) {
	const q = `SELECT COUNT(*) FROM documents WHERE organization_id=? AND name=?;`
	var count int
	if err := r.db.QueryRowContext(ctx, q, org, name).Scan(&count); err != nil {
		return 0, err
	}
	return count + 1, nil
}
