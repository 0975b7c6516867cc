package settings

import (
	"context"
	"time"

	"github.com/hansol-labs/compliboard/internal/domain/catalog"
)

// Settings is the per-organization configuration record: which preset
// profile applies and the display name. Loaded on demand with
// defaults, saved on every change.
type Settings struct {
	OrganizationID string              `json:"organization_id"`
	CompanySize    catalog.CompanySize `json:"company_size"`
	CompanyName    string              `json:"company_name"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// Default returns the settings a fresh organization starts with.
func Default(org string) Settings {
	return Settings{
		OrganizationID: org,
		CompanySize:    catalog.SizeStartup,
		CompanyName:    "내 회사",
	}
}

// Repository persists settings. Load returns (zero, false, nil) when
// the organization has never saved; callers fall back to Default.
type Repository interface {
	Load(ctx context.Context, org string) (Settings, bool, error)
	Save(ctx context.Context, s Settings) error
}
