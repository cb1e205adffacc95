package jupyter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJupyterServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestConfigBaseURLDefaults(t *testing.T) {
	got, err := Config{}.baseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://default:8888/jupyterlab/default", got)

	got, err = Config{Port: "9999", BasePath: "/"}.baseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://default:9999", got)

	got, err = Config{BaseURL: "https://studio.local:8443/lab/"}.baseURL()
	require.NoError(t, err)
	assert.Equal(t, "https://studio.local:8443/lab", got)

	_, err = Config{BaseURL: "studio.local"}.baseURL()
	require.Error(t, err)
}

func TestClientListSessionsDecodesKernels(t *testing.T) {
	server := newJupyterServer(t, map[string]string{
		"/jupyterlab/default/api/sessions": `[
			{"id":"s-1","path":"analysis.ipynb","name":"analysis.ipynb","type":"notebook",
			 "kernel":{"id":"k-1","name":"python3","last_activity":"2026-10-17T09:30:15.123456Z","execution_state":"idle","connections":2}},
			{"id":"s-2","path":"orphan.ipynb","kernel":null}
		]`,
	})

	client, err := NewClient(Config{BaseURL: server.URL + "/jupyterlab/default"}, server.Client())
	require.NoError(t, err)

	sessions, err := client.ListSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, domain.Session{
		ID:   "s-1",
		Path: "analysis.ipynb",
		Kernel: domain.Kernel{
			ID:             "k-1",
			Name:           "python3",
			ExecutionState: "idle",
			Connections:    2,
			LastActivity:   "2026-10-17T09:30:15.123456Z",
		},
	}, sessions[0])
	assert.False(t, sessions[1].Kernel.IsIdle())
}

func TestClientListTerminals(t *testing.T) {
	server := newJupyterServer(t, map[string]string{
		"/api/terminals": `[{"name":"1","last_activity":"2026-10-17T09:00:00.000000Z"},{"name":"2","last_activity":"2026-10-17T10:00:00.000000Z"}]`,
	})

	client, err := NewClient(Config{BaseURL: server.URL}, server.Client())
	require.NoError(t, err)

	terminals, err := client.ListTerminals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Terminal{
		{Name: "1", LastActivity: "2026-10-17T09:00:00.000000Z"},
		{Name: "2", LastActivity: "2026-10-17T10:00:00.000000Z"},
	}, terminals)
}

func TestClientListContentsReturnsRootEntries(t *testing.T) {
	server := newJupyterServer(t, map[string]string{
		"/api/contents": `{"name":"","path":"","type":"directory","last_modified":"2026-10-17T08:00:00.000000Z","content":[
			{"name":"data","path":"data","type":"directory","last_modified":"2026-10-16T08:00:00.000000Z","content":null},
			{"name":"train.py","path":"train.py","type":"file","last_modified":"not-a-date","content":null}
		]}`,
	})

	client, err := NewClient(Config{BaseURL: server.URL}, server.Client())
	require.NoError(t, err)

	records, err := client.ListContents(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "data", records[0].Path)
	assert.Equal(t, "directory", records[0].Type)
	assert.Equal(t, time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC), records[0].ModTime)
	assert.True(t, records[1].ModTime.IsZero())
}

func TestClientSendsTokenAndUserAgent(t *testing.T) {
	var gotAuth, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, Token: "abc"}, server.Client())
	require.NoError(t, err)

	sessions, err := client.ListSessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
	assert.Equal(t, "token abc", gotAuth)
	assert.Equal(t, "autostop/dev", gotAgent)
}

func TestClientReportsHTTPErrors(t *testing.T) {
	server := newJupyterServer(t, map[string]string{})

	client, err := NewClient(Config{BaseURL: server.URL}, server.Client())
	require.NoError(t, err)

	_, err = client.ListTerminals(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch terminals: status 404")
}

func TestClientReportsDecodeErrors(t *testing.T) {
	server := newJupyterServer(t, map[string]string{"/api/sessions": `{"message":"Forbidden"}`})

	client, err := NewClient(Config{BaseURL: server.URL}, server.Client())
	require.NoError(t, err)

	_, err = client.ListSessions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode payload")
}

func TestNewClientSkipsTLSVerificationWhenAsked(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, InsecureSkipVerify: true, Timeout: 5 * time.Second}, nil)
	require.NoError(t, err)

	terminals, err := client.ListTerminals(context.Background())
	require.NoError(t, err)
	assert.Empty(t, terminals)
}

func TestNewClientDefaultsToStudioBasePath(t *testing.T) {
	client, err := NewClient(Config{BasePath: "  "}, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://default:8888/jupyterlab/default", client.BaseURL())

	client, err = NewClient(Config{Host: "localhost", BasePath: "/lab/"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8888/lab", client.BaseURL())
}
