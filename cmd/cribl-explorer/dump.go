package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dumpOutput string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the normalized topology as JSON",
	Long: `Run one full fetch cycle and write the normalized topology snapshot
as JSON: groups, workers, and the per-group resource lists.

Examples:
  # Output to stdout
  cribl-explorer dump

  # Output to file
  cribl-explorer dump -o topology.json

  # Pipe to jq
  cribl-explorer dump | jq '.groups[].id'
`,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "Output file (default: stdout, use '-' for explicit stdout)")
}

func runDump(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings()
	if err != nil {
		return err
	}
	snap, err := fetchSnapshot(cmd.Context(), settings)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if dumpOutput != "" && dumpOutput != "-" {
		f, err := os.Create(dumpOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		enc = json.NewEncoder(f)
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
