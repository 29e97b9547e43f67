package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pathfinder-be/internal/bootstrap"
	"pathfinder-be/internal/config"
	"pathfinder-be/internal/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bootApp points the container at a copy of the repo's sample datasets.
func bootApp(t *testing.T) (*bootstrap.Container, *server.Server) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"career.json", "streams.json", "exams.json"} {
		raw, err := os.ReadFile(filepath.Join("..", "..", "data", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), raw, 0o644))
	}

	t.Setenv("DATA_SOURCE", dir)
	t.Setenv("LOG_FILE_PATH", filepath.Join(dir, "test.log"))
	t.Setenv("NATS_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("SEARCH_WARM_QUERIES", "engineering")
	cfg := config.Load()

	container := bootstrap.NewContainer(cfg)
	t.Cleanup(container.Close)
	return container, server.New(cfg, container)
}

func getJSON(t *testing.T, srv *server.Server, path string, out interface{}) int {
	t.Helper()
	resp, err := srv.GetApp().Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp.StatusCode
}

func TestApiLifecycle(t *testing.T) {
	container, srv := bootApp(t)

	assert.Equal(t, 200, getJSON(t, srv, "/health", nil))
	assert.Equal(t, 503, getJSON(t, srv, "/api/streams", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	container.Store.LoadAll(ctx)
	require.NoError(t, container.Store.WaitReady(ctx))

	var status struct {
		Data struct {
			Ready    bool     `json:"ready"`
			Degraded []string `json:"degraded"`
		} `json:"data"`
	}
	assert.Equal(t, 200, getJSON(t, srv, "/api/status", &status))
	assert.True(t, status.Data.Ready)
	assert.Empty(t, status.Data.Degraded)

	var streams struct {
		Data []struct {
			Id string `json:"id"`
		} `json:"data"`
	}
	assert.Equal(t, 200, getJSON(t, srv, "/api/streams", &streams))
	assert.NotEmpty(t, streams.Data)

	var results struct {
		Data struct {
			Total   int `json:"total"`
			Results []struct {
				Type string `json:"type"`
			} `json:"results"`
		} `json:"data"`
	}
	assert.Equal(t, 200, getJSON(t, srv, "/api/search?q=engineering", &results))
	assert.Greater(t, results.Data.Total, 0)

	assert.Equal(t, 200, getJSON(t, srv, "/api/search?q=engineering%20/type:exam", &results))
	for _, r := range results.Data.Results {
		assert.Equal(t, "exam", r.Type)
	}

	assert.Equal(t, 404, getJSON(t, srv, "/api/streams/does-not-exist", nil))
}
