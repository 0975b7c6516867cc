package catalog

// CompanySize selects which preset profile applies to an organization.
type CompanySize string

const (
	SizeStartup CompanySize = "startup"
	SizeSmall   CompanySize = "small"
	SizeMedium  CompanySize = "medium"
	SizeLarge   CompanySize = "large"
)

// Valid reports whether s is one of the defined sizes.
func (s CompanySize) Valid() bool {
	switch s {
	case SizeStartup, SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Profile is a preset subset of the catalog deemed applicable to an
// organization size. Every id listed must exist in the static catalog;
// items outside the profile are invisible regardless of status.
type Profile struct {
	Size              CompanySize `json:"size"`
	Name              string      `json:"name"`
	NameKo            string      `json:"name_ko"`
	AnnexAControls    []string    `json:"annex_a_controls"`
	ManagementClauses []string    `json:"management_clauses"`
}

// All management clauses are mandatory for certification, so every
// profile carries the full clause set. Annex-A coverage grows with
// company size.
var allClauseIDs = idsOf(ManagementClauses)

var allControlIDs = idsOf(AnnexAControls)

// mediumExcluded are controls that rarely apply before a dedicated
// facilities/infra function exists.
var mediumExcluded = []string{
	"A.5.6", "A.5.30", "A.7.11", "A.7.12", "A.8.14", "A.8.23", "A.8.30", "A.8.34",
}

// smallExcluded extends mediumExcluded for teams without a formal
// supply-chain, forensics or physical-monitoring practice.
var smallExcluded = append([]string{
	"A.5.21", "A.5.28", "A.5.32", "A.5.35", "A.7.4", "A.7.5", "A.7.6", "A.7.13",
	"A.8.4", "A.8.6", "A.8.11", "A.8.17", "A.8.27", "A.8.29", "A.8.33",
}, mediumExcluded...)

// startupExcluded extends smallExcluded down to the essentials a
// 5-20 person company is audited on.
var startupExcluded = append([]string{
	"A.5.3", "A.5.5", "A.5.7", "A.5.8", "A.5.11", "A.5.13", "A.5.20", "A.5.22",
	"A.5.25", "A.5.27", "A.5.29", "A.5.33", "A.5.36", "A.6.1", "A.6.4",
	"A.7.1", "A.7.2", "A.7.3", "A.7.8", "A.8.9", "A.8.10", "A.8.16", "A.8.18",
	"A.8.21", "A.8.22", "A.8.25", "A.8.26", "A.8.28", "A.8.31",
}, smallExcluded...)

// Profiles maps a company size to its applicable catalog subset.
var Profiles = map[CompanySize]Profile{
	SizeStartup: {
		Size:              SizeStartup,
		Name:              "Startup (5-20)",
		NameKo:            "스타트업 (5~20명)",
		AnnexAControls:    excluding(allControlIDs, startupExcluded),
		ManagementClauses: allClauseIDs,
	},
	SizeSmall: {
		Size:              SizeSmall,
		Name:              "Small (20-100)",
		NameKo:            "소기업 (20~100명)",
		AnnexAControls:    excluding(allControlIDs, smallExcluded),
		ManagementClauses: allClauseIDs,
	},
	SizeMedium: {
		Size:              SizeMedium,
		Name:              "Medium (100-500)",
		NameKo:            "중견기업 (100~500명)",
		AnnexAControls:    excluding(allControlIDs, mediumExcluded),
		ManagementClauses: allClauseIDs,
	},
	SizeLarge: {
		Size:              SizeLarge,
		Name:              "Large (500+)",
		NameKo:            "대기업 (500명 이상)",
		AnnexAControls:    allControlIDs,
		ManagementClauses: allClauseIDs,
	},
}

// ProfileFor returns the profile for a size, falling back to the
// startup profile for unknown values.
func ProfileFor(size CompanySize) Profile {
	if p, ok := Profiles[size]; ok {
		return p
	}
	return Profiles[SizeStartup]
}

func idsOf(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func excluding(ids []string, excluded []string) []string {
	skip := make(map[string]bool, len(excluded))
	for _, id := range excluded {
		skip[id] = true
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !skip[id] {
			out = append(out, id)
		}
	}
	return out
}
