package postgres

import (
	"context"
	"database/sql"

	domain "github.com/hansol-labs/compliboard/internal/domain/compliance"
)

type StatusRepository struct {
	db *sql.DB
}

func NewStatusRepository(db *sql.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// List loads every tracked status record for an organization
func (r *StatusRepository) List(ctx context.Context, org string) (map[string]domain.Record, error) {
	const q = `
SELECT control_id, status, progress
FROM control_statuses
WHERE organization_id=$1;
`
	rows, err := r.db.QueryContext(ctx, q, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]domain.Record)
	for rows.Next() {
		var id string
		var rec domain.Record
		if err := rows.Scan(&id, &rec.Status, &rec.Progress); err != nil {
			return nil, err
		}
		out[id] = rec
	}
	return out, rows.Err()
}

// Set upserts one status record
func (r *StatusRepository) Set(ctx context.Context, org, controlID string, rec domain.Record) error {
	const q = `
INSERT INTO control_statuses (organization_id, control_id, status, progress)
VALUES ($1,$2,$3,$4)
ON CONFLICT (organization_id, control_id) DO UPDATE SET
  status=EXCLUDED.status, progress=EXCLUDED.progress;
`
	_, err := r.db.ExecContext(ctx, q, stringOrDash(org), controlID, rec.Status, rec.Progress)
	return err
}
