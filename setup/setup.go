package setup

// Document is one parsed setup record, as found on disk.
type Document = map[string]any

// Counts maps a component file basename to the number of times one setup
// references it.
type Counts map[string]int

// Metadata is the flattened per-setup record that lands in the report.
// TotalComponents is the raw length of the uc2_components list, which can
// exceed the sum of Components when entries lack a usable file path. That
// mismatch is inherited behavior and kept on purpose.
type Metadata struct {
	Filename        string `json:"filename"`
	Name            string `json:"name"`
	Verified        bool   `json:"uc2_verified"`
	Collection      string `json:"collection"`
	Author          string `json:"author"`
	GithubLink      string `json:"github_link"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Version         string `json:"version"`
	CreatedAt       string `json:"createdAt"`
	TotalComponents int    `json:"total_components"`

	Components Counts `json:"-"`
}
