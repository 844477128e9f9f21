package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/PySecNinja/cribl-cloud-explorer/internal/render"
)

var flowCmd = &cobra.Command{
	Use:   "flow [group]",
	Short: "Show the data-flow diagram for one group",
	Long: `Show an ASCII diagram of how data moves through a worker group:
sources feed routes, routes select pipelines, pipelines deliver to outputs.
Disabled components are excluded from the counts.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFlow,
}

func init() {
	rootCmd.AddCommand(flowCmd)
}

func runFlow(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings()
	if err != nil {
		return err
	}
	snap, err := fetchSnapshot(cmd.Context(), settings)
	if err != nil {
		return err
	}

	ref := ""
	if len(args) == 1 {
		ref = args[0]
	}
	data, err := lookupGroup(snap, ref)
	if err != nil {
		return err
	}
	render.FlowDiagram(os.Stdout, data)
	return nil
}
