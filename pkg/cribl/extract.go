package cribl

import "strconv"

// Extractors turn raw decoded payloads into normalized records. They are
// pure functions: same payload in, same records out, no hidden state.
// Missing fields degrade to defaults; a payload without an items array
// yields an empty list, never an error.

// maxPipelineFunctions caps the function ids carried on a Pipeline record.
// The full count is still reported via FunctionCount.
const maxPipelineFunctions = 5

// rawItems returns the object entries of a payload's items array.
// Non-object entries are dropped.
func rawItems(payload map[string]any) []map[string]any {
	items, _ := payload["items"].([]any)
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// rawString reads a string leaf, falling back when absent or mistyped.
// Reading from a nil map is fine, so callers can chain rawObject lookups
// without checking each level.
func rawString(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return fallback
}

func rawBool(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func rawInt(m map[string]any, key string) int {
	// JSON numbers decode as float64.
	if v, ok := m[key].(float64); ok {
		return int(v)
	}
	return 0
}

func rawObject(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

// ExtractGroups normalizes a groups payload into Group records in API order.
func ExtractGroups(payload map[string]any) []Group {
	items := rawItems(payload)
	groups := make([]Group, 0, len(items))
	for _, item := range items {
		id := rawString(item, "id", notAvailable)
		groups = append(groups, Group{
			ID:            id,
			Name:          rawString(item, "name", id),
			Product:       rawString(item, "product", "stream"),
			Description:   rawString(item, "description", ""),
			WorkerCount:   rawInt(item, "workerCount"),
			ConfigVersion: rawString(item, "configVersion", notAvailable),
		})
	}
	return groups
}

// ExtractWorkers normalizes a workers payload. Hostname, version, and IP
// live inside a nested info block that may be missing entirely.
func ExtractWorkers(payload map[string]any) []Worker {
	items := rawItems(payload)
	workers := make([]Worker, 0, len(items))
	for _, item := range items {
		info := rawObject(item, "info")
		status := StatusOffline
		if rawBool(item, "connected") {
			status = StatusOnline
		}
		workers = append(workers, Worker{
			ID:       rawString(item, "id", notAvailable),
			Hostname: rawString(info, "hostname", rawString(item, "hostname", notAvailable)),
			Group:    rawString(item, "group", notAvailable),
			Status:   status,
			Version:  rawString(rawObject(info, "cribl"), "version", notAvailable),
			IP:       rawString(rawObject(info, "host"), "ip", notAvailable),
		})
	}
	return workers
}

// ExtractSources normalizes an inputs payload.
func ExtractSources(payload map[string]any) []Source {
	items := rawItems(payload)
	sources := make([]Source, 0, len(items))
	for _, item := range items {
		sources = append(sources, Source{
			ID:          rawString(item, "id", notAvailable),
			Type:        rawString(item, "type", notAvailable),
			Disabled:    rawBool(item, "disabled"),
			PortOrHost:  rawPortOrHost(item),
			Description: rawString(item, "description", ""),
		})
	}
	return sources
}

// rawPortOrHost resolves the overloaded port/host field: a listening source
// carries a numeric port, a collecting source carries a host string.
func rawPortOrHost(item map[string]any) string {
	switch v := item["port"].(type) {
	case float64:
		return strconv.Itoa(int(v))
	case string:
		return v
	}
	return rawString(item, "host", notAvailable)
}

// ExtractDestinations normalizes an outputs payload.
func ExtractDestinations(payload map[string]any) []Destination {
	items := rawItems(payload)
	destinations := make([]Destination, 0, len(items))
	for _, item := range items {
		destinations = append(destinations, Destination{
			ID:          rawString(item, "id", notAvailable),
			Type:        rawString(item, "type", notAvailable),
			Disabled:    rawBool(item, "disabled"),
			Description: rawString(item, "description", ""),
			Pipeline:    rawString(item, "pipeline", ""),
		})
	}
	return destinations
}

// ExtractPipelines normalizes a pipelines payload. Description, disabled,
// and the function list all live under a conf sub-object.
func ExtractPipelines(payload map[string]any) []Pipeline {
	items := rawItems(payload)
	pipelines := make([]Pipeline, 0, len(items))
	for _, item := range items {
		conf := rawObject(item, "conf")
		functions, _ := conf["functions"].([]any)
		ids := make([]string, 0, len(functions))
		for _, fn := range functions {
			m, _ := fn.(map[string]any)
			ids = append(ids, rawString(m, "id", "unknown"))
		}
		count := len(ids)
		if len(ids) > maxPipelineFunctions {
			ids = ids[:maxPipelineFunctions]
		}
		pipelines = append(pipelines, Pipeline{
			ID:            rawString(item, "id", notAvailable),
			Description:   rawString(conf, "description", ""),
			FunctionCount: count,
			Functions:     ids,
			Disabled:      rawBool(conf, "disabled"),
		})
	}
	return pipelines
}

// ExtractRoutes normalizes a routes payload. Each item is a route set
// carrying an embedded list of entries; the result flattens every entry in
// order, sets first, entries within each set second.
func ExtractRoutes(payload map[string]any) []Route {
	items := rawItems(payload)
	routes := make([]Route, 0, len(items))
	for _, item := range items {
		entries, _ := item["routes"].([]any)
		for _, e := range entries {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			routes = append(routes, Route{
				ID:          rawString(entry, "id", rawString(entry, "name", notAvailable)),
				Name:        rawString(entry, "name", notAvailable),
				Filter:      rawString(entry, "filter", "*"),
				Pipeline:    rawString(entry, "pipeline", "passthru"),
				Output:      rawString(entry, "output", "default"),
				Enabled:     !rawBool(entry, "disabled"),
				Final:       rawBool(entry, "final"),
				Description: rawString(entry, "description", ""),
			})
		}
	}
	return routes
}
