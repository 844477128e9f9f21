package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/PySecNinja/cribl-cloud-explorer/pkg/cribl"
)

// Groups writes the worker-group table.
func Groups(w io.Writer, groups []cribl.Group) {
	Header(w, "WORKER GROUPS (FLEETS)")
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.ID, g.Name, g.Product, strconv.Itoa(g.WorkerCount), g.ConfigVersion,
		})
	}
	Table(w, []string{"ID", "Name", "Product", "Workers", "Config Ver"}, rows, 4)
}

// Workers writes workers bucketed under their groups. Bucketing is the
// snapshot's read-time projection; workers referencing unknown groups are
// listed under an "unassigned" section at the end.
func Workers(w io.Writer, snap *cribl.Snapshot) {
	Header(w, "WORKERS")
	byGroup := snap.WorkersByGroup()
	seen := make(map[string]bool, len(snap.Groups))

	for _, group := range snap.Groups {
		seen[group.ID] = true
		workers := byGroup[group.ID]
		Subheader(w, fmt.Sprintf("Group: %s (%d workers)", group.Name, len(workers)))
		workerTable(w, workers)
	}

	var unassigned []cribl.Worker
	for _, worker := range snap.Workers {
		if !seen[worker.Group] {
			unassigned = append(unassigned, worker)
		}
	}
	if len(unassigned) > 0 {
		Subheader(w, fmt.Sprintf("Unassigned (%d workers)", len(unassigned)))
		workerTable(w, unassigned)
	}
}

func workerTable(w io.Writer, workers []cribl.Worker) {
	if len(workers) == 0 {
		fmt.Fprintln(w, "      No workers in this group.")
		return
	}
	rows := make([][]string, 0, len(workers))
	for _, worker := range workers {
		rows = append(rows, []string{worker.Hostname, worker.Status, worker.Version, worker.IP})
	}
	Table(w, []string{"Hostname", "Status", "Version", "IP"}, rows, 6)
}

// GroupDetail writes the four resource tables for one group.
func GroupDetail(w io.Writer, data cribl.GroupData) {
	Header(w, fmt.Sprintf("GROUP DETAILS: %s", data.Group.Name))

	Subheader(w, fmt.Sprintf("Sources/Inputs (%d total)", len(data.Inputs)))
	if len(data.Inputs) > 0 {
		rows := make([][]string, 0, len(data.Inputs))
		for _, in := range data.Inputs {
			rows = append(rows, []string{
				clip(in.ID, 25), in.Type, statusWord(in.Disabled), clip(in.PortOrHost, 20),
			})
		}
		Table(w, []string{"ID", "Type", "Status", "Port/Host"}, rows, 6)
	} else {
		fmt.Fprintln(w, "      No sources configured.")
	}

	Subheader(w, fmt.Sprintf("Destinations/Outputs (%d total)", len(data.Outputs)))
	if len(data.Outputs) > 0 {
		rows := make([][]string, 0, len(data.Outputs))
		for _, out := range data.Outputs {
			rows = append(rows, []string{clip(out.ID, 30), out.Type, statusWord(out.Disabled)})
		}
		Table(w, []string{"ID", "Type", "Status"}, rows, 6)
	} else {
		fmt.Fprintln(w, "      No destinations configured.")
	}

	Subheader(w, fmt.Sprintf("Pipelines (%d total)", len(data.Pipelines)))
	if len(data.Pipelines) > 0 {
		rows := make([][]string, 0, len(data.Pipelines))
		for _, p := range data.Pipelines {
			rows = append(rows, []string{
				clip(p.ID, 30), strconv.Itoa(p.FunctionCount), statusWord(p.Disabled),
			})
		}
		Table(w, []string{"ID", "Functions", "Status"}, rows, 6)
	} else {
		fmt.Fprintln(w, "      No pipelines configured.")
	}

	Subheader(w, fmt.Sprintf("Routes (%d total)", len(data.Routes)))
	if len(data.Routes) > 0 {
		rows := make([][]string, 0, len(data.Routes))
		for _, r := range data.Routes {
			name := r.Name
			if name == "N/A" {
				name = r.ID
			}
			rows = append(rows, []string{
				clip(name, 20), clip(r.Filter, 15), clip(r.Pipeline, 15), clip(r.Output, 15), yesNo(r.Final),
			})
		}
		Table(w, []string{"Name", "Filter", "Pipeline", "Output", "Final"}, rows, 6)
	} else {
		fmt.Fprintln(w, "      No routes configured.")
	}
}

func statusWord(disabled bool) string {
	if disabled {
		return "Disabled"
	}
	return "Enabled"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
