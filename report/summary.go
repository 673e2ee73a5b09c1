package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/openuc2/setupdb/scanner"
)

type NameCount struct {
	Name  string
	Count int
}

// Summary holds the aggregate statistics printed after the report is
// written. Top lists are already ranked and truncated.
type Summary struct {
	Setups           int
	UniqueComponents int
	MeanComponents   float64
	MaxComponents    int
	MinComponents    int
	VerifiedCount    int
	VerifiedPct      float64
	TopAuthors       []NameCount
	TopCollections   []NameCount
	TopComponents    []NameCount
	OutputFile       string
}

// Summarize computes the corpus-wide statistics. Top components use the
// raw identifiers, not the sanitized column names, so what prints is the
// actual file name as referenced by the setups.
func Summarize(c *scanner.Corpus) Summary {
	s := Summary{
		Setups:           len(c.Setups),
		UniqueComponents: len(c.Universe),
	}
	if s.Setups == 0 {
		return s
	}

	authors := map[string]int{}
	collections := map[string]int{}
	usage := map[string]int{}

	total := 0
	s.MinComponents = c.Setups[0].TotalComponents
	for _, m := range c.Setups {
		total += m.TotalComponents
		if m.TotalComponents > s.MaxComponents {
			s.MaxComponents = m.TotalComponents
		}
		if m.TotalComponents < s.MinComponents {
			s.MinComponents = m.TotalComponents
		}
		if m.Verified {
			s.VerifiedCount++
		}
		if m.Author != "" {
			authors[m.Author]++
		}
		if m.Collection != "" {
			collections[m.Collection]++
		}
		for id, n := range m.Components {
			usage[id] += n
		}
	}

	s.MeanComponents = float64(total) / float64(s.Setups)
	s.VerifiedPct = float64(s.VerifiedCount) / float64(s.Setups) * 100
	s.TopAuthors = topCounts(authors, 5)
	s.TopCollections = topCounts(collections, 5)
	s.TopComponents = topCounts(usage, 10)
	return s
}

// topCounts ranks by count descending, name ascending on ties, so the
// summary is stable across runs. Zero counts never make the list.
func topCounts(m map[string]int, limit int) []NameCount {
	out := make([]NameCount, 0, len(m))
	for k, v := range m {
		if v > 0 {
			out = append(out, NameCount{Name: k, Count: v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// PrintSummary writes the human-readable banner block. This goes to
// stdout, not the log stream.
func PrintSummary(w io.Writer, s Summary) {
	line := "============================================================"

	fmt.Fprintf(w, "\n%s\n", line)
	fmt.Fprintf(w, "SETUP ANALYSIS SUMMARY\n")
	fmt.Fprintf(w, "%s\n", line)
	fmt.Fprintf(w, "Total setup files processed: %d\n", s.Setups)
	fmt.Fprintf(w, "Total unique component files: %d\n", s.UniqueComponents)
	fmt.Fprintf(w, "Average components per setup: %.1f\n", s.MeanComponents)
	fmt.Fprintf(w, "Max components in a setup: %d\n", s.MaxComponents)
	fmt.Fprintf(w, "Min components in a setup: %d\n", s.MinComponents)
	fmt.Fprintf(w, "Verified setups: %d/%d (%.1f%%)\n", s.VerifiedCount, s.Setups, s.VerifiedPct)

	fmt.Fprintf(w, "\nTop authors:\n")
	for _, a := range s.TopAuthors {
		fmt.Fprintf(w, "  %s: %d setups\n", a.Name, a.Count)
	}

	fmt.Fprintf(w, "\nTop collections:\n")
	for _, c := range s.TopCollections {
		fmt.Fprintf(w, "  %s: %d setups\n", c.Name, c.Count)
	}

	fmt.Fprintf(w, "\nMost used component files (top 10):\n")
	for i, c := range s.TopComponents {
		fmt.Fprintf(w, "  %d. %s: used %d times\n", i+1, c.Name, c.Count)
	}

	if s.OutputFile != "" {
		fmt.Fprintf(w, "\nDetailed results saved to: %s\n", s.OutputFile)
	}
	fmt.Fprintf(w, "%s\n", line)
}
