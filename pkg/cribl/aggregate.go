package cribl

import "context"

// FetchLog receives progress events during a fetch cycle. Per-group fetch
// failures are swallowed into empty lists, so the log is the only place
// they surface.
type FetchLog interface {
	Fetched(endpoint string, records int)
	Failed(endpoint string, err error)
}

type nopLog struct{}

func (nopLog) Fetched(string, int) {}
func (nopLog) Failed(string, error) {}

// FetchAll runs one full fetch cycle and assembles a topology snapshot.
//
// Groups and workers are structural: a failure on either aborts the cycle
// with an *AggregationError. The per-group resources are optional detail: a
// failed fetch leaves that one list empty and the cycle carries on with the
// remaining resources and groups. Fetches are issued one at a time, each
// awaited before the next.
func FetchAll(ctx context.Context, api API, log FetchLog) (*Snapshot, error) {
	if log == nil {
		log = nopLog{}
	}

	payload, err := api.Groups(ctx)
	if err != nil {
		log.Failed(EndpointGroups, err)
		return nil, &AggregationError{Resource: "groups", Err: err}
	}
	groups := ExtractGroups(payload)
	log.Fetched(EndpointGroups, len(groups))

	payload, err = api.Workers(ctx)
	if err != nil {
		log.Failed(EndpointWorkers, err)
		return nil, &AggregationError{Resource: "workers", Err: err}
	}
	workers := ExtractWorkers(payload)
	log.Fetched(EndpointWorkers, len(workers))

	snap := &Snapshot{
		Groups:    groups,
		Workers:   workers,
		GroupData: make(map[string]GroupData, len(groups)),
	}

	for _, group := range groups {
		data := GroupData{
			Group:     group,
			Inputs:    []Source{},
			Outputs:   []Destination{},
			Pipelines: []Pipeline{},
			Routes:    []Route{},
		}

		if payload, err := api.Inputs(ctx, group.ID); err != nil {
			log.Failed(GroupEndpoint(EndpointInputs, group.ID), err)
		} else {
			data.Inputs = ExtractSources(payload)
			log.Fetched(GroupEndpoint(EndpointInputs, group.ID), len(data.Inputs))
		}

		if payload, err := api.Outputs(ctx, group.ID); err != nil {
			log.Failed(GroupEndpoint(EndpointOutputs, group.ID), err)
		} else {
			data.Outputs = ExtractDestinations(payload)
			log.Fetched(GroupEndpoint(EndpointOutputs, group.ID), len(data.Outputs))
		}

		if payload, err := api.Pipelines(ctx, group.ID); err != nil {
			log.Failed(GroupEndpoint(EndpointPipelines, group.ID), err)
		} else {
			data.Pipelines = ExtractPipelines(payload)
			log.Fetched(GroupEndpoint(EndpointPipelines, group.ID), len(data.Pipelines))
		}

		if payload, err := api.Routes(ctx, group.ID); err != nil {
			log.Failed(GroupEndpoint(EndpointRoutes, group.ID), err)
		} else {
			data.Routes = ExtractRoutes(payload)
			log.Fetched(GroupEndpoint(EndpointRoutes, group.ID), len(data.Routes))
		}

		snap.GroupData[group.ID] = data
	}

	return snap, nil
}
