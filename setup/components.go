package setup

import "strings"

// CountComponents builds the per-setup frequency table from the value at
// the document's uc2_components key. Entries that are not mappings, or
// that lack a non-empty "file" string, are ignored for counting but still
// show up in the raw list length (see Metadata.TotalComponents).
func CountComponents(v any) Counts {
	counts := Counts{}
	list, ok := v.([]any)
	if !ok {
		return counts
	}
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		f, ok := m["file"].(string)
		if !ok || f == "" {
			continue
		}
		counts[Basename(f)]++
	}
	return counts
}

// ComponentListLen is the raw entry count of the uc2_components value,
// before any filtering. 0 when the key is absent or not a list.
func ComponentListLen(v any) int {
	if list, ok := v.([]any); ok {
		return len(list)
	}
	return 0
}

// Basename reduces a file-path-like string to its final segment. Setup
// records come from both unix and windows authors, so both separators
// are honored.
func Basename(path string) string {
	if i := strings.LastIndexAny(path, "/\\"); i != -1 {
		return path[i+1:]
	}
	return path
}
