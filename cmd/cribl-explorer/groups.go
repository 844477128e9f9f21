package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/PySecNinja/cribl-cloud-explorer/internal/render"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List worker groups (fleets)",
	RunE:  runGroups,
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}

func runGroups(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings()
	if err != nil {
		return err
	}
	snap, err := fetchSnapshot(cmd.Context(), settings)
	if err != nil {
		return err
	}
	render.Groups(os.Stdout, snap.Groups)
	return nil
}
