package render

import (
	"fmt"

	"github.com/openuc2/setupdb/logger"
	"github.com/openuc2/setupdb/report"
	"github.com/openuc2/setupdb/scanner"
	"github.com/spf13/cobra"
)

var includeYaml = false

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "render [setups dir]",
	Short: "Render a markdown summary of the setup corpus",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "./setups"
		if len(args) > 0 {
			dir = args[0]
		}
		defer logger.Close()

		corpus, err := scanner.Scan(dir, scanner.Options{IncludeYAML: includeYaml})
		if err != nil {
			return err
		}
		if len(corpus.Setups) == 0 {
			return report.ErrEmptyCorpus
		}

		text, err := report.RenderMarkdown(report.Summarize(corpus))
		if err != nil {
			return err
		}
		fmt.Printf("%s", text)
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.BoolVar(&includeYaml, "yaml", includeYaml, "Also read *.yaml setup records")
}
