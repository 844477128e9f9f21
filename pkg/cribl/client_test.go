package cribl

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupEndpoint(t *testing.T) {
	assert.Equal(t, "/api/v1/m/default/system/inputs", GroupEndpoint(EndpointInputs, "default"))
	assert.Equal(t, "/api/v1/m/edge-fleet/routes", GroupEndpoint(EndpointRoutes, "edge-fleet"))
	// Global endpoints pass through untouched.
	assert.Equal(t, EndpointGroups, GroupEndpoint(EndpointGroups, "default"))
}

func TestClientGetSendsAuthHeaders(t *testing.T) {
	var got http.Header
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "secret-token")
	payload, err := client.Get(context.Background(), EndpointGroups, url.Values{"fields": {"id"}})
	require.NoError(t, err)
	assert.NotNil(t, payload)

	assert.Equal(t, "Bearer secret-token", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "id", gotQuery.Get("fields"))
}

func TestClientGetStatusTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind string
	}{
		{"unauthorized", http.StatusUnauthorized, KindUnauthorized},
		{"forbidden", http.StatusForbidden, KindForbidden},
		{"not found", http.StatusNotFound, KindNotFound},
		{"server error", http.StatusInternalServerError, KindServerError},
		{"bad gateway", http.StatusBadGateway, KindServerError},
		{"unexpected", http.StatusTeapot, KindUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL, "token")
			_, err := client.Get(context.Background(), EndpointWorkers, nil)
			require.Error(t, err)

			var terr *TransportError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tt.wantKind, terr.Kind)
			assert.Equal(t, tt.status, terr.Status)
			assert.Equal(t, EndpointWorkers, terr.Endpoint)
		})
	}
}

func TestClientGetInvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	_, err := client.Get(context.Background(), EndpointGroups, nil)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindInvalidBody, terr.Kind)
	assert.Contains(t, terr.Error(), "invalid JSON response")
}

func TestClientGetConnectionRefused(t *testing.T) {
	// Bind then close a listener so the port is known-dead.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	client := NewClient("http://"+addr, "token")
	_, err = client.Get(context.Background(), EndpointGroups, nil)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindConnectionFailed, terr.Kind)
	assert.Contains(t, terr.Error(), "connection failed")
}

func TestClassifyNetError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"op error", &net.OpError{Op: "dial", Err: errors.New("refused")}, KindConnectionFailed},
		{"dns error", &net.DNSError{Name: "nope.invalid"}, KindConnectionFailed},
		{"timeout", &net.DNSError{Name: "slow", IsTimeout: true}, KindTimedOut},
		{"deadline", context.DeadlineExceeded, KindTimedOut},
		{"wrapped op error", &url.Error{Op: "Get", URL: "http://x", Err: &net.OpError{Op: "dial"}}, KindConnectionFailed},
		{"other", errors.New("boom"), KindTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyNetError(tt.err))
		})
	}
}

func TestClientResourceMethods(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	ctx := context.Background()

	_, err := client.Groups(ctx)
	require.NoError(t, err)
	_, err = client.Workers(ctx)
	require.NoError(t, err)
	_, err = client.Inputs(ctx, "g1")
	require.NoError(t, err)
	_, err = client.Outputs(ctx, "g1")
	require.NoError(t, err)
	_, err = client.Pipelines(ctx, "g1")
	require.NoError(t, err)
	_, err = client.Routes(ctx, "g1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/api/v1/master/groups",
		"/api/v1/master/workers",
		"/api/v1/m/g1/system/inputs",
		"/api/v1/m/g1/system/outputs",
		"/api/v1/m/g1/system/pipelines",
		"/api/v1/m/g1/routes",
	}, paths)
}
