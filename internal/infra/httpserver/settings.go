package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	appsettings "github.com/hansol-labs/compliboard/internal/application/settings"
	"github.com/hansol-labs/compliboard/internal/domain/catalog"
	"github.com/hansol-labs/compliboard/internal/middleware"
)

// GET /api/settings
func (r *Router) handleGetSettings(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	st, err := r.settingsSvc.Get(req.Context(), org)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, st)
}

// PUT /api/settings
func (r *Router) handleUpdateSettings(w http.ResponseWriter, req *http.Request) error {
	org := middleware.GetOrgFromContext(req.Context())
	var patch appsettings.Patch
	if err := json.NewDecoder(req.Body).Decode(&patch); err != nil {
		return fmt.Errorf("%w: %v", appsettings.ErrValidation, err)
	}
	st, err := r.settingsSvc.Update(req.Context(), org, patch)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, st)
}

// GET /api/profiles
// Lists the preset company-size profiles with their item counts.
func (r *Router) handleListProfiles(w http.ResponseWriter, req *http.Request) error {
	type profileView struct {
		catalog.Profile
		ClauseCount  int `json:"clause_count"`
		ControlCount int `json:"control_count"`
	}
	sizes := []catalog.CompanySize{
		catalog.SizeStartup, catalog.SizeSmall, catalog.SizeMedium, catalog.SizeLarge,
	}
	out := make([]profileView, 0, len(sizes))
	for _, size := range sizes {
		p := catalog.ProfileFor(size)
		out = append(out, profileView{
			Profile:      p,
			ClauseCount:  len(p.ManagementClauses),
			ControlCount: len(p.AnnexAControls),
		})
	}
	return writeJSON(w, http.StatusOK, map[string]any{"profiles": out})
}
