package knowledge

// Course is a single course entry in the catalog. Entries are read-only;
// they are never sourced from the advisor payload.
type Course struct {
	Title      string  `json:"title"`
	Platform   string  `json:"platform"`
	Link       string  `json:"link"`
	Price      string  `json:"price"`
	Rating     float64 `json:"rating"`
	Skill      string  `json:"skill"`
	Difficulty string  `json:"difficulty"`
}

// Resource is a supplementary learning resource entry.
type Resource struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Format      string `json:"format"`
}

// JobListing is a curated job opening entry.
type JobListing struct {
	Company  string   `json:"company"`
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Salary   string   `json:"salary"`
	Link     string   `json:"link"`
	Skills   []string `json:"skills"`
}

// RoleEntry groups the catalog contents registered for one role title.
type RoleEntry struct {
	Title     string       `json:"title"`
	Courses   []Course     `json:"courses"`
	Resources []Resource   `json:"resources"`
	Jobs      []JobListing `json:"jobs"`
}

// FallbackEntry holds the role-agnostic substitutes used when a role has no
// catalog entry. Job listings deliberately have no fallback.
type FallbackEntry struct {
	Courses   []Course   `json:"courses"`
	Resources []Resource `json:"resources"`
}

// Catalog is the on-disk shape of the knowledge asset.
type Catalog struct {
	Version  string        `json:"version"`
	Roles    []RoleEntry   `json:"roles"`
	Fallback FallbackEntry `json:"fallback"`
}
