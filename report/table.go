package report

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/openuc2/setupdb/scanner"
	"github.com/openuc2/setupdb/setup"
)

// ErrEmptyCorpus marks a scan that yielded zero usable setup records.
// Report generation refuses to write anything in that case.
var ErrEmptyCorpus = errors.New("no setup records to report")

var metadataColumns = []string{
	"filename",
	"name",
	"uc2_verified",
	"collection",
	"author",
	"github_link",
	"description",
	"category",
	"version",
	"createdAt",
	"total_components",
}

// Table is the final wide report: the fixed metadata columns followed by
// one column per component identifier seen anywhere in the corpus.
type Table struct {
	Columns []string
	Rows    [][]string

	// components holds the raw identifiers behind the trailing columns,
	// in column order.
	components []string
}

var columnSanitizer = strings.NewReplacer(".", "_", " ", "_", "-", "_")

// ColumnName maps a component identifier to its CSV column, escaping
// characters that clash with downstream column-naming conventions.
func ColumnName(id string) string {
	return "component_" + columnSanitizer.Replace(id)
}

// BuildTable renders the corpus against the fixed column set. Component
// columns are sorted by raw identifier and rows by filename, so repeated
// runs over the same corpus produce identical tables.
func BuildTable(c *scanner.Corpus) (*Table, error) {
	if len(c.Setups) == 0 {
		return nil, ErrEmptyCorpus
	}

	components := c.SortedComponents()
	columns := append([]string{}, metadataColumns...)
	for _, id := range components {
		columns = append(columns, ColumnName(id))
	}

	setups := append([]setup.Metadata{}, c.Setups...)
	sort.SliceStable(setups, func(i, j int) bool {
		return setups[i].Filename < setups[j].Filename
	})

	rows := make([][]string, 0, len(setups))
	for _, s := range setups {
		row := make([]string, 0, len(columns))
		row = append(row,
			s.Filename,
			s.Name,
			strconv.FormatBool(s.Verified),
			s.Collection,
			s.Author,
			s.GithubLink,
			s.Description,
			s.Category,
			s.Version,
			s.CreatedAt,
			strconv.Itoa(s.TotalComponents),
		)
		for _, id := range components {
			row = append(row, strconv.Itoa(s.Components[id]))
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows, components: components}, nil
}

// Components returns the raw identifiers behind the component columns,
// in column order.
func (t *Table) Components() []string {
	return t.components
}
