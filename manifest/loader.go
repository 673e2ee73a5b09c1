package manifest

type OutputRecord struct {
	Path      string `json:"path"`
	QuickSHA1 string `json:"quickSHA1"`
	Size      uint64 `json:"size"`
}

type SummaryRecord struct {
	FileCount int    `json:"fileCount"`
	TotalSize uint64 `json:"totalSize"`
}

// Manifest describes the files one analysis run produced, so they can be
// pushed to object storage as a unit.
type Manifest struct {
	Summary SummaryRecord  `json:"summary"`
	Outputs []OutputRecord `json:"outputs"`
}
