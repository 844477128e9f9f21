package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/PySecNinja/cribl-cloud-explorer/internal/render"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the whole-environment architecture summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings()
	if err != nil {
		return err
	}
	snap, err := fetchSnapshot(cmd.Context(), settings)
	if err != nil {
		return err
	}
	render.Summary(os.Stdout, snap)
	return nil
}
