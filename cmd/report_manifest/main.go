package report_manifest

import (
	"fmt"

	"github.com/openuc2/setupdb/logger"
	"github.com/openuc2/setupdb/manifest"
	"github.com/openuc2/setupdb/util"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "report-manifest <output file> ...",
	Short: "Build manifest of analysis output files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		outputs := []manifest.OutputRecord{}
		totalSize := uint64(0)

		for _, path := range args {
			if !util.Exists(path) || util.IsDir(path) {
				logger.Warn("skipping missing output", "path", path)
				continue
			}
			sha1val, err := util.QuickSHA1(path)
			if err != nil {
				logger.Warn("skipping unreadable output", "path", path, "error", err)
				continue
			}
			size := util.FileSize(path)
			outputs = append(outputs, manifest.OutputRecord{
				Path:      path,
				QuickSHA1: sha1val,
				Size:      size,
			})
			totalSize += size
		}

		m := manifest.Manifest{
			Outputs: outputs,
			Summary: manifest.SummaryRecord{FileCount: len(outputs), TotalSize: totalSize},
		}

		out, err := yaml.Marshal(m)
		if err != nil {
			return err
		}
		fmt.Printf("%s", out)
		return nil
	},
}
