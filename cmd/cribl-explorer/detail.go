package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PySecNinja/cribl-cloud-explorer/internal/render"
	"github.com/PySecNinja/cribl-cloud-explorer/pkg/cribl"
)

var detailCmd = &cobra.Command{
	Use:   "detail [group]",
	Short: "Show sources, destinations, pipelines, and routes for one group",
	Long: `Show the configured sources, destinations, pipelines, and routes
for a single worker group.

The group may be referenced by id or by display name. With exactly one
group in the environment the argument can be omitted.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetail,
}

func init() {
	rootCmd.AddCommand(detailCmd)
}

func runDetail(cmd *cobra.Command, args []string) error {
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
	render.GroupDetail(os.Stdout, data)
	return nil
}

// lookupGroup resolves a group reference (id or name) against the snapshot.
// An empty reference is allowed only when the snapshot holds exactly one
// group.
func lookupGroup(snap *cribl.Snapshot, ref string) (cribl.GroupData, error) {
	if len(snap.Groups) == 0 {
		return cribl.GroupData{}, fmt.Errorf("no worker groups available")
	}

	if ref == "" {
		if len(snap.Groups) == 1 {
			return snap.GroupData[snap.Groups[0].ID], nil
		}
		return cribl.GroupData{}, fmt.Errorf("multiple groups available, pick one of: %s", groupIDs(snap))
	}

	for _, g := range snap.Groups {
		if g.ID == ref || g.Name == ref {
			return snap.GroupData[g.ID], nil
		}
	}
	return cribl.GroupData{}, fmt.Errorf("unknown group %q, available: %s", ref, groupIDs(snap))
}

func groupIDs(snap *cribl.Snapshot) string {
	ids := make([]string, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		ids = append(ids, g.ID)
	}
	return strings.Join(ids, ", ")
}
