package analyze

import (
	"os"

	"github.com/openuc2/setupdb/logger"
	"github.com/openuc2/setupdb/report"
	"github.com/openuc2/setupdb/scanner"
	"github.com/spf13/cobra"
)

var outFile = "setups_analysis.csv"
var includeYaml = false

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "analyze [setups dir]",
	Short: "Scan setup records and build the analysis CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "./setups"
		if len(args) > 0 {
			dir = args[0]
		}

		logger.Info("starting setup analysis", "dir", dir)
		defer logger.Close()

		corpus, err := scanner.Scan(dir, scanner.Options{IncludeYAML: includeYaml})
		if err != nil {
			logger.Error("scan failed", "error", err)
			return err
		}

		table, err := report.BuildTable(corpus)
		if err != nil {
			logger.Error("no valid setup files found", "dir", dir)
			return err
		}

		if err := report.WriteCSV(table, outFile); err != nil {
			logger.Error("report write failed", "error", err)
			return err
		}
		logger.Info("analysis database saved", "file", outFile)

		s := report.Summarize(corpus)
		s.OutputFile = outFile
		report.PrintSummary(os.Stdout, s)

		logger.Info("analysis complete")
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.StringVarP(&outFile, "out", "o", outFile, "Output CSV file")
	flags.BoolVar(&includeYaml, "yaml", includeYaml, "Also read *.yaml setup records")
}
