package analyze

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/openuc2/setupdb/report"
	"github.com/openuc2/setupdb/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"),
		[]byte(`{"name": "scope a", "uc2_components": [{"file": "nema17.stl"}, {"file": "nema17.stl"}, {"file": "laser.stl"}]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"),
		[]byte(`{"name": "scope b", "uc2_components": [{"file": "nema17.stl"}]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"),
		[]byte(`{"name": `), 0o644))

	out := filepath.Join(t.TempDir(), "analysis.csv")
	prevOut := outFile
	outFile = out
	defer func() { outFile = prevOut }()

	require.NoError(t, Cmd.RunE(Cmd, []string{dir}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)

	// header plus one row per parsable setup, broken.json skipped
	require.Len(t, records, 3)
	assert.Contains(t, records[0], "component_nema17_stl")
	assert.Contains(t, records[0], "component_laser_stl")
	assert.Equal(t, "a.json", records[1][0])
	assert.Equal(t, "b.json", records[2][0])
}

func TestAnalyzeMissingDirectory(t *testing.T) {
	prevOut := outFile
	outFile = filepath.Join(t.TempDir(), "analysis.csv")
	defer func() { outFile = prevOut }()

	err := Cmd.RunE(Cmd, []string{filepath.Join(t.TempDir(), "nope")})
	assert.ErrorIs(t, err, scanner.ErrNoDirectory)
	assert.NoFileExists(t, outFile)
}

func TestAnalyzeEmptyCorpus(t *testing.T) {
	prevOut := outFile
	outFile = filepath.Join(t.TempDir(), "analysis.csv")
	defer func() { outFile = prevOut }()

	err := Cmd.RunE(Cmd, []string{t.TempDir()})
	assert.ErrorIs(t, err, report.ErrEmptyCorpus)
	assert.NoFileExists(t, outFile)
}
