package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/PySecNinja/cribl-cloud-explorer/internal/render"
)

var workersCmd = &cobra.Command{
	Use:   "workers",
	Short: "List workers organized by their groups",
	RunE:  runWorkers,
}

func init() {
	rootCmd.AddCommand(workersCmd)
}

func runWorkers(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings()
	if err != nil {
		return err
	}
	snap, err := fetchSnapshot(cmd.Context(), settings)
	if err != nil {
		return err
	}
	render.Workers(os.Stdout, snap)
	return nil
}
