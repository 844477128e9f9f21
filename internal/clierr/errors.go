// Package clierr provides error classification and user-friendly error
// formatting for the CLI. It helps distinguish between different error types
// and provides actionable hints.
package clierr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PySecNinja/cribl-cloud-explorer/pkg/cribl"
)

// Common error types for CLI output.
const (
	TypeAuth       = "auth"       // Bad or expired bearer token
	TypeForbidden  = "forbidden"  // Token lacks permission
	TypeNotFound   = "not_found"  // Endpoint not found, likely a bad base URL
	TypeNetwork    = "network"    // Connection/timeout errors
	TypeServer     = "server"     // Remote 5xx fault
	TypeValidation = "validation" // Input validation errors
	TypeInternal   = "internal"   // Internal/unexpected errors
)

// IsAuthError checks if the error is an authentication failure.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	var terr *cribl.TransportError
	if errors.As(err, &terr) {
		return terr.Kind == cribl.KindUnauthorized
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "authentication failed") ||
		strings.Contains(msg, "unauthorized")
}

// IsNetworkError checks if the error is a connection/timeout error.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var terr *cribl.TransportError
	if errors.As(err, &terr) {
		return terr.Kind == cribl.KindConnectionFailed ||
			terr.Kind == cribl.KindTimedOut ||
			terr.Kind == cribl.KindTransport
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "network is unreachable") ||
		strings.Contains(msg, "dial tcp") ||
		strings.Contains(msg, "i/o timeout") ||
		strings.Contains(msg, "context deadline exceeded")
}

// ClassifyError determines the type of error for appropriate handling.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}
	var terr *cribl.TransportError
	if errors.As(err, &terr) {
		switch terr.Kind {
		case cribl.KindUnauthorized:
			return TypeAuth
		case cribl.KindForbidden:
			return TypeForbidden
		case cribl.KindNotFound:
			return TypeNotFound
		case cribl.KindServerError:
			return TypeServer
		case cribl.KindConnectionFailed, cribl.KindTimedOut, cribl.KindTransport:
			return TypeNetwork
		default:
			return TypeInternal
		}
	}
	if IsAuthError(err) {
		return TypeAuth
	}
	if IsNetworkError(err) {
		return TypeNetwork
	}
	return TypeInternal
}

// Pretty formats an error with a user-friendly message and actionable hints.
func Pretty(err error) string {
	if err == nil {
		return ""
	}

	errType := ClassifyError(err)
	baseMsg := err.Error()

	switch errType {
	case TypeAuth:
		return fmt.Sprintf("Authentication failed: %s\n\nHint: Bearer tokens expire. Generate a fresh one:\n"+
			"  - In Cribl: Settings > Global > API Reference\n"+
			"  - Then export CRIBL_TOKEN or pass --token", baseMsg)

	case TypeForbidden:
		return fmt.Sprintf("Access denied: %s\n\nHint: Your token works but lacks permission.\n"+
			"  - Check the roles attached to the token's API credential\n"+
			"  - Read access to groups, workers, and routes is required", baseMsg)

	case TypeNotFound:
		return fmt.Sprintf("Not found: %s\n\nHint: The base URL is probably wrong.\n"+
			"  - It should look like https://main-<org>.cribl.cloud\n"+
			"  - Do not include /api/v1 in the base URL", baseMsg)

	case TypeNetwork:
		return fmt.Sprintf("Connection error: %s\n\nHint: Check your connectivity:\n"+
			"  - Verify the instance URL resolves from this machine\n"+
			"  - Corporate proxies and VPNs are the usual suspects", baseMsg)

	case TypeServer:
		return fmt.Sprintf("Server error: %s\n\nHint: The remote instance is having trouble. Retry in a minute.", baseMsg)

	default:
		return fmt.Sprintf("Error: %s", baseMsg)
	}
}

// WrapWithHint wraps an error with an additional hint message.
func WrapWithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w\n\nHint: %s", err, hint)
}

// NothingFound returns a user-friendly message when a fetch returns no
// results. This is different from an error - it's a valid "empty" result.
func NothingFound(resource string) string {
	return fmt.Sprintf("No %s found.\n\n"+
		"This might mean:\n"+
		"  - None are configured on this instance\n"+
		"  - Your token may not see every worker group", resource)
}

// Unwrap returns the underlying error, stripping any wrapper.
func Unwrap(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
