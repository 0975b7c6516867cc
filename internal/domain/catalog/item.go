package catalog

// Kind discriminates the two item variants in the catalog.
type Kind string

const (
	// KindAnnexA is a numbered security control from Annex A of ISO 27001:2022.
	KindAnnexA Kind = "annex_a"
	// KindClause is a management clause (4-10) from the ISO 27001 core text.
	KindClause Kind = "clause"
)

// Item is a single checklist entry: either an Annex-A control or a
// management clause, dispatched by the Kind field. Category holds the
// grouping key for both variants (the control category id such as
// "A.5", or the clause number such as "4").
type Item struct {
	ID            string `json:"id"`
	Kind          Kind   `json:"kind"`
	Category      string `json:"category"`
	Title         string `json:"title"`
	TitleKo       string `json:"title_ko"`
	Description   string `json:"description"`
	DescriptionKo string `json:"description_ko"`
	Tip           string `json:"tip,omitempty"`
	Evidence      string `json:"evidence,omitempty"`
}

// Category is a grouping bucket with display names.
type Category struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"kind"`
	Name   string `json:"name"`
	NameKo string `json:"name_ko"`
}

// Find returns the catalog entry for an id, scanning clauses first and
// then Annex-A controls. Linear scan is fine at catalog size.
func Find(id string) (Item, bool) {
	for _, it := range ManagementClauses {
		if it.ID == id {
			return it, true
		}
	}
	for _, it := range AnnexAControls {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Items returns the full catalog in definition order, clauses first.
func Items() []Item {
	out := make([]Item, 0, len(ManagementClauses)+len(AnnexAControls))
	out = append(out, ManagementClauses...)
	out = append(out, AnnexAControls...)
	return out
}

// CategoriesFor returns the category list for one variant.
func CategoriesFor(kind Kind) []Category {
	if kind == KindAnnexA {
		return AnnexACategories
	}
	return ClauseCategories
}
