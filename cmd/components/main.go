package components

import (
	"fmt"
	"sort"

	"github.com/openuc2/setupdb/logger"
	"github.com/openuc2/setupdb/scanner"
	"github.com/spf13/cobra"
)

var includeYaml = false

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "components [setups dir]",
	Short: "List component usage across all setups",
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

		type usage struct {
			name   string
			uses   int
			setups int
		}
		stats := map[string]*usage{}
		for _, id := range corpus.SortedComponents() {
			stats[id] = &usage{name: id}
		}
		for _, m := range corpus.Setups {
			for id, n := range m.Components {
				stats[id].uses += n
				stats[id].setups++
			}
		}

		out := make([]*usage, 0, len(stats))
		for _, u := range stats {
			out = append(out, u)
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].uses != out[j].uses {
				return out[i].uses > out[j].uses
			}
			return out[i].name < out[j].name
		})

		for _, u := range out {
			fmt.Printf("%s\t%d\t%d\n", u.name, u.uses, u.setups)
		}
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.BoolVar(&includeYaml, "yaml", includeYaml, "Also read *.yaml setup records")
}
