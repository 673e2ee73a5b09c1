package setup

// ExtractMetadata projects the fixed metadata fields out of a document,
// applying defaults for anything absent or of the wrong type. It never
// fails: a sparse document just yields a record full of defaults.
// TotalComponents starts at 0 and is filled in by the scanner once the
// component list length is known.
func ExtractMetadata(doc Document, filename string) Metadata {
	return Metadata{
		Filename:    filename,
		Name:        getString(doc, "name"),
		Verified:    getBool(doc, "uc2_verified"),
		Collection:  getString(doc, "collection"),
		Author:      getString(doc, "author"),
		GithubLink:  getString(doc, "github_link"),
		Description: getString(doc, "description"),
		Category:    getString(doc, "category"),
		Version:     getString(doc, "version"),
		CreatedAt:   getString(doc, "createdAt"),
	}
}

func getString(doc Document, key string) string {
	if v, ok := doc[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func getBool(doc Document, key string) bool {
	if v, ok := doc[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
