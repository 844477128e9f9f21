// Package cribl is a read-only client library for the Cribl Cloud API.
// All API requests go through Client; the extractors in this package
// normalize the raw payloads into stable records, and FetchAll assembles
// them into a topology Snapshot.
package cribl

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// requestTimeout bounds every API request. There is no retry and no
// cancellation of an in-flight request beyond this.
const requestTimeout = 30 * time.Second

// API is the surface the aggregator consumes. *Client is the production
// implementation; tests substitute fakes.
type API interface {
	Groups(ctx context.Context) (map[string]any, error)
	Workers(ctx context.Context) (map[string]any, error)
	Inputs(ctx context.Context, groupID string) (map[string]any, error)
	Outputs(ctx context.Context, groupID string) (map[string]any, error)
	Pipelines(ctx context.Context, groupID string) (map[string]any, error)
	Routes(ctx context.Context, groupID string) (map[string]any, error)
}

// compile-time assert we satisfy the interface we intend to
var _ API = &Client{}

// Client is the connection manager for one Cribl Cloud instance.
// Its configuration is fixed at construction, so it is safe for
// concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given instance base URL and bearer
// token. A trailing slash on the base URL is tolerated.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Get issues one authenticated GET against an endpoint path and decodes the
// JSON object body. Every failure comes back as a *TransportError.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (map[string]any, error) {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Kind: KindTransport, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Kind: classifyNetError(err), Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &TransportError{Kind: KindUnauthorized, Endpoint: endpoint, Status: resp.StatusCode}
	case resp.StatusCode == http.StatusForbidden:
		return nil, &TransportError{Kind: KindForbidden, Endpoint: endpoint, Status: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return nil, &TransportError{Kind: KindNotFound, Endpoint: endpoint, Status: resp.StatusCode}
	case resp.StatusCode >= 500:
		return nil, &TransportError{Kind: KindServerError, Endpoint: endpoint, Status: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return nil, &TransportError{Kind: KindUnexpectedStatus, Endpoint: endpoint, Status: resp.StatusCode}
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &TransportError{Kind: KindInvalidBody, Endpoint: endpoint, Status: resp.StatusCode, Err: err}
	}
	return payload, nil
}

// classifyNetError maps a network-layer failure onto the transport taxonomy.
func classifyNetError(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimedOut
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimedOut
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return KindConnectionFailed
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindConnectionFailed
	}
	return KindTransport
}

// Groups retrieves all worker groups (fleets).
func (c *Client) Groups(ctx context.Context) (map[string]any, error) {
	return c.Get(ctx, EndpointGroups, nil)
}

// Workers retrieves all workers across all groups.
func (c *Client) Workers(ctx context.Context) (map[string]any, error) {
	return c.Get(ctx, EndpointWorkers, nil)
}

// Inputs retrieves the sources configured for one worker group.
func (c *Client) Inputs(ctx context.Context, groupID string) (map[string]any, error) {
	return c.Get(ctx, GroupEndpoint(EndpointInputs, groupID), nil)
}

// Outputs retrieves the destinations configured for one worker group.
func (c *Client) Outputs(ctx context.Context, groupID string) (map[string]any, error) {
	return c.Get(ctx, GroupEndpoint(EndpointOutputs, groupID), nil)
}

// Pipelines retrieves the pipelines configured for one worker group.
func (c *Client) Pipelines(ctx context.Context, groupID string) (map[string]any, error) {
	return c.Get(ctx, GroupEndpoint(EndpointPipelines, groupID), nil)
}

// Routes retrieves the routing table for one worker group.
func (c *Client) Routes(ctx context.Context, groupID string) (map[string]any, error) {
	return c.Get(ctx, GroupEndpoint(EndpointRoutes, groupID), nil)
}
