package scanner

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/openuc2/setupdb/logger"
	"github.com/openuc2/setupdb/setup"
	"github.com/openuc2/setupdb/util"
)

// ErrNoDirectory marks a missing setups directory. This is the one scan
// condition that aborts the whole run.
var ErrNoDirectory = errors.New("setups directory not found")

// Corpus is everything one scan accumulates: the per-setup records plus
// the set of distinct component identifiers seen anywhere in the run.
type Corpus struct {
	Setups   []setup.Metadata
	Universe map[string]bool
}

type Options struct {
	// IncludeYAML also picks up *.yaml / *.yml setup records.
	IncludeYAML bool
}

// Scan enumerates the setup records one directory level deep and folds
// each one into the corpus. A file that fails to load is logged and
// skipped; it contributes nothing, not even an empty row.
func Scan(dir string, opt Options) (*Corpus, error) {
	corpus := &Corpus{Universe: map[string]bool{}}

	if !util.IsDir(dir) {
		return corpus, fmt.Errorf("%w: %s", ErrNoDirectory, dir)
	}

	patterns := []string{"*.json"}
	if opt.IncludeYAML {
		patterns = append(patterns, "*.yaml", "*.yml")
	}
	files := []string{}
	for _, p := range patterns {
		m, err := filepath.Glob(filepath.Join(dir, p))
		if err == nil {
			files = append(files, m...)
		}
	}
	logger.Info("scanning setups", "dir", dir, "files", len(files))

	for _, path := range files {
		name := filepath.Base(path)
		logger.Debug("processing", "file", name)

		doc, err := setup.LoadFile(path)
		if err != nil {
			logger.Error("skipping setup", "file", name, "error", err)
			logger.AddSummaryWarn("skipped setup", "file", name, "error", err)
			continue
		}

		meta := setup.ExtractMetadata(doc, name)
		meta.Components = setup.CountComponents(doc["uc2_components"])
		meta.TotalComponents = setup.ComponentListLen(doc["uc2_components"])

		for k := range meta.Components {
			corpus.Universe[k] = true
		}
		corpus.Setups = append(corpus.Setups, meta)
	}

	logger.Info("scan complete", "setups", len(corpus.Setups), "components", len(corpus.Universe))
	return corpus, nil
}

// SortedComponents is the universe as a lexicographically sorted list,
// the fixed column order for the report.
func (c *Corpus) SortedComponents() []string {
	out := make([]string, 0, len(c.Universe))
	for k := range c.Universe {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
