package report

import (
	"fmt"

	"github.com/aymerick/raymond"
)

var summaryTemplate = `# Setup analysis

Processed **{{setups}}** setup records referencing **{{components}}** distinct component files.

| | |
|---|---|
| Average components per setup | {{mean}} |
| Max components in a setup | {{max}} |
| Min components in a setup | {{min}} |
| Verified setups | {{verified}}/{{setups}} ({{verifiedPct}}%) |

## Top authors
{{#each authors}}
- {{name}}: {{count}} setups
{{/each}}

## Top collections
{{#each collections}}
- {{name}}: {{count}} setups
{{/each}}

## Most used components
{{#each topComponents}}
{{rank}}. {{name}}: used {{count}} times
{{/each}}
`

// RenderMarkdown expands the summary into a markdown report.
func RenderMarkdown(s Summary) (string, error) {
	ctx := map[string]any{
		"setups":        s.Setups,
		"components":    s.UniqueComponents,
		"mean":          fmt.Sprintf("%.1f", s.MeanComponents),
		"max":           s.MaxComponents,
		"min":           s.MinComponents,
		"verified":      s.VerifiedCount,
		"verifiedPct":   fmt.Sprintf("%.1f", s.VerifiedPct),
		"authors":       nameCountContext(s.TopAuthors),
		"collections":   nameCountContext(s.TopCollections),
		"topComponents": nameCountContext(s.TopComponents),
	}
	return raymond.Render(summaryTemplate, ctx)
}

func nameCountContext(list []NameCount) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for i, e := range list {
		out = append(out, map[string]any{
			"rank":  i + 1,
			"name":  e.Name,
			"count": e.Count,
		})
	}
	return out
}
