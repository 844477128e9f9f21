package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PySecNinja/cribl-cloud-explorer/pkg/cribl"
)

func testSnapshot() *cribl.Snapshot {
	return &cribl.Snapshot{
		Groups: []cribl.Group{
			{ID: "default", Name: "Default Group"},
			{ID: "edge", Name: "Edge Fleet"},
		},
		GroupData: map[string]cribl.GroupData{
			"default": {Group: cribl.Group{ID: "default", Name: "Default Group"}},
			"edge":    {Group: cribl.Group{ID: "edge", Name: "Edge Fleet"}},
		},
	}
}

func TestLookupGroupByID(t *testing.T) {
	data, err := lookupGroup(testSnapshot(), "edge")
	require.NoError(t, err)
	assert.Equal(t, "edge", data.Group.ID)
}

func TestLookupGroupByName(t *testing.T) {
	data, err := lookupGroup(testSnapshot(), "Default Group")
	require.NoError(t, err)
	assert.Equal(t, "default", data.Group.ID)
}

func TestLookupGroupUnknown(t *testing.T) {
	_, err := lookupGroup(testSnapshot(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown group "nope"`)
	assert.Contains(t, err.Error(), "default, edge")
}

func TestLookupGroupEmptyRef(t *testing.T) {
	// Ambiguous with two groups.
	_, err := lookupGroup(testSnapshot(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pick one of")

	// Unambiguous with exactly one.
	single := &cribl.Snapshot{
		Groups: []cribl.Group{{ID: "only", Name: "Only"}},
		GroupData: map[string]cribl.GroupData{
			"only": {Group: cribl.Group{ID: "only", Name: "Only"}},
		},
	}
	data, err := lookupGroup(single, "")
	require.NoError(t, err)
	assert.Equal(t, "only", data.Group.ID)
}

func TestLookupGroupNoGroups(t *testing.T) {
	_, err := lookupGroup(&cribl.Snapshot{}, "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no worker groups")
}

func TestGroupItemDisplay(t *testing.T) {
	item := groupItem{data: cribl.GroupData{
		Group:  cribl.Group{ID: "edge", Name: "Edge Fleet", Product: "edge", WorkerCount: 4},
		Routes: []cribl.Route{{}, {}},
	}}

	assert.Equal(t, "Edge Fleet", item.Title())
	assert.Equal(t, "Edge · 4 workers · 2 routes", item.Description())
	assert.Contains(t, item.FilterValue(), "edge")
}
