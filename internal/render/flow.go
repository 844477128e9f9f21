package render

import (
	"fmt"
	"io"

	"github.com/PySecNinja/cribl-cloud-explorer/pkg/cribl"
)

// maxFlowEntries caps each breakdown list in the flow view.
const maxFlowEntries = 4

// FlowDiagram writes an ASCII diagram of how data moves through one group:
// sources into routes, routes into pipelines, pipelines into outputs. Only
// enabled components are counted.
func FlowDiagram(w io.Writer, data cribl.GroupData) {
	Subheader(w, "Data Flow Visualization")

	var activeInputs []cribl.Source
	for _, in := range data.Inputs {
		if !in.Disabled {
			activeInputs = append(activeInputs, in)
		}
	}
	var activeOutputs []cribl.Destination
	for _, out := range data.Outputs {
		if !out.Disabled {
			activeOutputs = append(activeOutputs, out)
		}
	}
	var activePipelines []cribl.Pipeline
	for _, p := range data.Pipelines {
		if !p.Disabled {
			activePipelines = append(activePipelines, p)
		}
	}
	enabledRoutes := 0
	for _, r := range data.Routes {
		if r.Enabled {
			enabledRoutes++
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "    %s\n", rule('=', 62))
	fmt.Fprintf(w, "    |  Group: %-50s |\n", clip(data.Group.Name, 50))
	fmt.Fprintf(w, "    %s\n", rule('=', 62))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    +-----------+     +-----------+     +-----------+     +------------+")
	fmt.Fprintln(w, "    |  SOURCES  | --> |   ROUTES  | --> | PIPELINES | --> |   OUTPUTS  |")
	fmt.Fprintln(w, "    +-----------+     +-----------+     +-----------+     +------------+")
	fmt.Fprintf(w, "    | %9d |     | %9d |     | %9d |     | %10d |\n",
		len(activeInputs), enabledRoutes, len(activePipelines), len(activeOutputs))
	fmt.Fprintln(w, "    +-----------+     +-----------+     +-----------+     +------------+")
	fmt.Fprintln(w)

	inputTypes := make([]string, 0, len(activeInputs))
	for _, in := range activeInputs {
		inputTypes = append(inputTypes, in.Type)
	}
	outputTypes := make([]string, 0, len(activeOutputs))
	for _, out := range activeOutputs {
		outputTypes = append(outputTypes, out.Type)
	}
	pipelineIDs := make([]string, 0, len(activePipelines))
	for _, p := range activePipelines {
		pipelineIDs = append(pipelineIDs, p.ID)
	}

	breakdown(w, "Source Types:", uniqueInOrder(inputTypes))
	breakdown(w, "Output Types:", uniqueInOrder(outputTypes))
	breakdown(w, "Active Pipelines:", pipelineIDs)
}

// breakdown lists up to maxFlowEntries values with an overflow marker.
func breakdown(w io.Writer, title string, values []string) {
	fmt.Fprintf(w, "    %s\n", title)
	shown := values
	if len(shown) > maxFlowEntries {
		shown = shown[:maxFlowEntries]
	}
	for _, v := range shown {
		fmt.Fprintf(w, "      - %s\n", v)
	}
	if extra := len(values) - len(shown); extra > 0 {
		fmt.Fprintf(w, "      ... and %d more\n", extra)
	}
	fmt.Fprintln(w)
}

func uniqueInOrder(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func rule(ch byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}

// Summary writes the whole-environment overview.
func Summary(w io.Writer, snap *cribl.Snapshot) {
	Header(w, "ARCHITECTURE SUMMARY")
	totals := snap.Totals()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "    Worker Groups (Fleets):  %d\n", len(snap.Groups))
	fmt.Fprintf(w, "    Total Workers:           %d (%d online)\n", len(snap.Workers), snap.OnlineWorkers())
	fmt.Fprintf(w, "    Total Sources:           %d\n", totals.Inputs)
	fmt.Fprintf(w, "    Total Destinations:      %d\n", totals.Outputs)
	fmt.Fprintf(w, "    Total Pipelines:         %d\n", totals.Pipelines)
	fmt.Fprintf(w, "    Total Routes:            %d\n", totals.Routes)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    Data Flow Overview:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "        +-------------+    +-------------+    +-------------+    +--------------+")
	fmt.Fprintln(w, "        |   SOURCES   | => |   ROUTES    | => |  PIPELINES  | => | DESTINATIONS |")
	fmt.Fprintf(w, "        | (%9d) |    | (%9d) |    | (%9d) |    | (%10d) |\n",
		totals.Inputs, totals.Routes, totals.Pipelines, totals.Outputs)
	fmt.Fprintln(w, "        +-------------+    +-------------+    +-------------+    +--------------+")
	fmt.Fprintln(w)
}
