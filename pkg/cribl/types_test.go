package cribl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkersByGroup(t *testing.T) {
	snap := &Snapshot{
		Workers: []Worker{
			{ID: "w1", Group: "a", Status: StatusOnline},
			{ID: "w2", Group: "b", Status: StatusOffline},
			{ID: "w3", Group: "a", Status: StatusOnline},
			{ID: "w4", Group: "ghost", Status: StatusOffline},
		},
	}

	byGroup := snap.WorkersByGroup()
	assert.Len(t, byGroup["a"], 2)
	assert.Len(t, byGroup["b"], 1)
	// Workers may reference a group the snapshot never saw.
	assert.Len(t, byGroup["ghost"], 1)

	// The projection is computed, not stored: the flat list is untouched.
	assert.Len(t, snap.Workers, 4)
	assert.Equal(t, "w1", snap.Workers[0].ID)
}

func TestOnlineWorkers(t *testing.T) {
	snap := &Snapshot{
		Workers: []Worker{
			{Status: StatusOnline},
			{Status: StatusOffline},
			{Status: StatusOnline},
		},
	}
	assert.Equal(t, 2, snap.OnlineWorkers())
	assert.Equal(t, 0, (&Snapshot{}).OnlineWorkers())
}

func TestSnapshotTotals(t *testing.T) {
	snap := &Snapshot{
		GroupData: map[string]GroupData{
			"a": {
				Inputs:    []Source{{}, {}},
				Outputs:   []Destination{{}},
				Pipelines: []Pipeline{{}, {}, {}},
				Routes:    []Route{{}},
			},
			"b": {
				Inputs: []Source{{}},
				Routes: []Route{{}, {}},
			},
		},
	}

	totals := snap.Totals()
	assert.Equal(t, Totals{Inputs: 3, Outputs: 1, Pipelines: 3, Routes: 3}, totals)
}
