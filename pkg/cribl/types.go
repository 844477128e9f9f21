package cribl

// Normalized record types. Every record is a value snapshot captured at
// fetch time; nothing mutates one after extraction. Absent payload fields
// are filled with the documented defaults, never left as zero-value
// surprises for the display layer.

// notAvailable is the sentinel for string fields the payload did not carry.
const notAvailable = "N/A"

// Worker status labels derived from the raw connected flag.
const (
	StatusOnline  = "Online"
	StatusOffline = "Offline"
)

// Group is one worker group (fleet).
type Group struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Product       string `json:"product"`
	Description   string `json:"description"`
	WorkerCount   int    `json:"workerCount"`
	ConfigVersion string `json:"configVersion"`
}

// Worker is one worker process. Group may reference a group absent from the
// fetched set; such workers are simply unassigned for display purposes.
type Worker struct {
	ID       string `json:"id"`
	Hostname string `json:"hostname"`
	Group    string `json:"group"`
	Status   string `json:"status"`
	Version  string `json:"version"`
	IP       string `json:"ip"`
}

// Source is a configured data-ingestion endpoint (an "input").
// PortOrHost holds whichever of the two the payload provided; the API uses
// one field per connector kind and this tool preserves that overloading.
type Source struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Disabled    bool   `json:"disabled"`
	PortOrHost  string `json:"port_or_host"`
	Description string `json:"description"`
}

// Destination is a configured data-egress endpoint (an "output").
type Destination struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Disabled    bool   `json:"disabled"`
	Description string `json:"description"`
	Pipeline    string `json:"pipeline"`
}

// Pipeline is an ordered list of transform functions. Functions carries at
// most maxPipelineFunctions ids to bound record size; FunctionCount always
// reflects the full list length.
type Pipeline struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	FunctionCount int      `json:"function_count"`
	Functions     []string `json:"functions"`
	Disabled      bool     `json:"disabled"`
}

// Route maps a filter expression to a target pipeline and output. Final
// stops further route evaluation.
type Route struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Filter      string `json:"filter"`
	Pipeline    string `json:"pipeline"`
	Output      string `json:"output"`
	Enabled     bool   `json:"enabled"`
	Final       bool   `json:"final"`
	Description string `json:"description"`
}

// GroupData is one group plus its nested resources.
type GroupData struct {
	Group     Group         `json:"group"`
	Inputs    []Source      `json:"inputs"`
	Outputs   []Destination `json:"outputs"`
	Pipelines []Pipeline    `json:"pipelines"`
	Routes    []Route       `json:"routes"`
}

// Snapshot is the complete normalized topology from one fetch cycle.
// A refresh replaces the whole snapshot; consumers treat it as immutable.
type Snapshot struct {
	Groups    []Group              `json:"groups"`
	Workers   []Worker             `json:"workers"`
	GroupData map[string]GroupData `json:"group_data"`
}

// Totals are whole-environment resource counts.
type Totals struct {
	Inputs    int `json:"inputs"`
	Outputs   int `json:"outputs"`
	Pipelines int `json:"pipelines"`
	Routes    int `json:"routes"`
}

// WorkersByGroup projects the flat worker list into per-group buckets.
// This is computed on demand rather than stored, so the snapshot stays a
// single flat source of truth.
func (s *Snapshot) WorkersByGroup() map[string][]Worker {
	byGroup := make(map[string][]Worker)
	for _, w := range s.Workers {
		byGroup[w.Group] = append(byGroup[w.Group], w)
	}
	return byGroup
}

// OnlineWorkers counts workers currently reporting as connected.
func (s *Snapshot) OnlineWorkers() int {
	n := 0
	for _, w := range s.Workers {
		if w.Status == StatusOnline {
			n++
		}
	}
	return n
}

// Totals sums the nested resource counts across all groups.
func (s *Snapshot) Totals() Totals {
	var t Totals
	for _, data := range s.GroupData {
		t.Inputs += len(data.Inputs)
		t.Outputs += len(data.Outputs)
		t.Pipelines += len(data.Pipelines)
		t.Routes += len(data.Routes)
	}
	return t
}
