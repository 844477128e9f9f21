package cribl

import "fmt"

// Transport error kinds. Each maps to a distinct user-facing message.
const (
	KindUnauthorized     = "unauthorized"      // 401, bad token
	KindForbidden        = "forbidden"         // 403, token lacks permission
	KindNotFound         = "not_found"         // 404, likely a wrong base URL
	KindServerError      = "server_error"      // 5xx, remote fault
	KindUnexpectedStatus = "unexpected_status" // any other non-200
	KindInvalidBody      = "invalid_body"      // 200 with an undecodable body
	KindConnectionFailed = "connection_failed" // dial/DNS failure
	KindTimedOut         = "timed_out"         // request exceeded the timeout
	KindTransport        = "transport"         // any other network-layer fault
)

// TransportError describes a failed API request. Every error leaving the
// client is one of these; nothing else escapes the transport layer.
type TransportError struct {
	Kind     string
	Endpoint string
	Status   int
	Err      error
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case KindUnauthorized:
		return "authentication failed: check your bearer token"
	case KindForbidden:
		return "access forbidden: your token may lack required permissions"
	case KindNotFound:
		return fmt.Sprintf("endpoint not found: %s (check your base URL)", e.Endpoint)
	case KindServerError:
		return fmt.Sprintf("server error (%d): try again later", e.Status)
	case KindUnexpectedStatus:
		return fmt.Sprintf("unexpected status code %d from %s", e.Status, e.Endpoint)
	case KindInvalidBody:
		return fmt.Sprintf("invalid JSON response from %s: %v", e.Endpoint, e.Err)
	case KindConnectionFailed:
		return "connection failed: check your URL and network connection"
	case KindTimedOut:
		return fmt.Sprintf("request timed out after %s", requestTimeout)
	default:
		return fmt.Sprintf("request error: %v", e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// AggregationError marks the failure of a structural fetch (groups or
// workers) that aborts the whole fetch cycle. Per-group fetch failures never
// become one of these; they degrade to empty lists instead.
type AggregationError struct {
	Resource string
	Err      error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }
