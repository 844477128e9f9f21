package cribl

import "strings"

// API endpoint catalog.
// This file is the SINGLE SOURCE OF TRUTH for all Cribl API paths.

const (
	// EndpointGroups lists all worker groups (fleets).
	EndpointGroups = "/api/v1/master/groups"

	// EndpointWorkers lists all workers across all groups.
	EndpointWorkers = "/api/v1/master/workers"

	// Per-group endpoints. The {group_id} placeholder must be substituted
	// with a concrete group id before dispatch.
	EndpointInputs    = "/api/v1/m/{group_id}/system/inputs"
	EndpointOutputs   = "/api/v1/m/{group_id}/system/outputs"
	EndpointPipelines = "/api/v1/m/{group_id}/system/pipelines"
	EndpointRoutes    = "/api/v1/m/{group_id}/routes"
)

// GroupEndpoint substitutes a concrete group id into a per-group template.
// Group ids are URL-safe, so this is a plain literal replacement.
func GroupEndpoint(template, groupID string) string {
	return strings.ReplaceAll(template, "{group_id}", groupID)
}
