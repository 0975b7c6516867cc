package mysql

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/hansol-labs/compliboard/internal/domain/settings"
)

type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Load returns the saved settings row, reporting absence without error
func (r *SettingsRepository) Load(ctx context.Context, org string) (domain.Settings, bool, error) {
	const q = `
SELECT organization_id, company_size, company_name, updated_at
FROM organization_settings
WHERE organization_id=? LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q, org)
	var s domain.Settings
	if err := row.Scan(&s.OrganizationID, &s.CompanySize, &s.CompanyName, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Settings{}, false, nil
		}
		return domain.Settings{}, false, err
	}
	return s, true, nil
}

// Save upserts the settings row
func (r *SettingsRepository) Save(ctx context.Context, s domain.Settings) error {
	const q = `
INSERT INTO organization_settings (organization_id, company_size, company_name, updated_at)
VALUES (?,?,?,?)
ON DUPLICATE KEY UPDATE
 company_size=VALUES(company_size), company_name=VALUES(company_name),
 updated_at=VALUES(updated_at);
`
	_, err := r.db.ExecContext(ctx, q, stringOrDash(s.OrganizationID), s.CompanySize, s.CompanyName, s.UpdatedAt)
	return err
}
