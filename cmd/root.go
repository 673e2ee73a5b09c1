package cmd

import (
	"os"

	"github.com/openuc2/setupdb/cmd/analyze"
	"github.com/openuc2/setupdb/cmd/components"
	"github.com/openuc2/setupdb/cmd/render"
	"github.com/openuc2/setupdb/cmd/report_manifest"
	"github.com/openuc2/setupdb/cmd/report_upload"
	"github.com/openuc2/setupdb/logger"

	"github.com/spf13/cobra"
)

var verbose = false
var jsonLog = false

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:           "setupdb",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose, jsonLog)
	},
}

func init() {
	RootCmd.AddCommand(analyze.Cmd)
	RootCmd.AddCommand(components.Cmd)
	RootCmd.AddCommand(render.Cmd)
	RootCmd.AddCommand(report_manifest.Cmd)
	RootCmd.AddCommand(report_upload.Cmd)
	RootCmd.AddCommand(genBashCompletionCmd)

	flags := RootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", verbose, "Debug level logging")
	flags.BoolVar(&jsonLog, "json-log", jsonLog, "JSON formatted logging")
}

var genBashCompletionCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completions file",
	Run: func(cmd *cobra.Command, args []string) {
		RootCmd.GenBashCompletion(os.Stdout)
	},
}
