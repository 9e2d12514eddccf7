package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	channelRepo "github.com/kentcanonigo/slack-search-generator/internal/modules/channel/repository"
	channelService "github.com/kentcanonigo/slack-search-generator/internal/modules/channel/service"
	queryService "github.com/kentcanonigo/slack-search-generator/internal/modules/query/service"
	"github.com/kentcanonigo/slack-search-generator/internal/shared/config"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo, err := channelRepo.NewFileStorage(filepath.Join(t.TempDir(), "channels.json"))
	require.NoError(t, err)

	qs := queryService.New()
	qs.SetClock(func() time.Time { return time.Date(2024, time.January, 16, 12, 0, 0, 0, time.UTC) })

	s := New(&config.Config{HTTPPort: "0"}, qs, channelService.New(repo))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, out := do(t, http.MethodGet, ts.URL+"/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", out["status"])
}

func TestQuery(t *testing.T) {
	ts := newTestServer(t)

	resp, out := do(t, http.MethodGet, ts.URL+"/api/query?channel=%23eng&user=%40bob&file_type=pdf&keywords=budget&date_mode=during&date=2024-01-15", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "in:#eng from:@bob has:pdf during:2024-01-15 budget", out["query"])

	resp, out = do(t, http.MethodGet, ts.URL+"/api/query?date_mode=during&date=yesterday", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "during:2024-01-15", out["query"])

	resp, out = do(t, http.MethodGet, ts.URL+"/api/query", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "", out["query"])
}

func TestQuery_BadInput(t *testing.T) {
	ts := newTestServer(t)
	resp, out := do(t, http.MethodGet, ts.URL+"/api/query?file_type=video", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotEmpty(t, out["error"])
}

func TestChannelLifecycle(t *testing.T) {
	ts := newTestServer(t)
	api := ts.URL + "/api/channels"

	resp, _ := do(t, http.MethodPost, api, `{"name":"general"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = do(t, http.MethodPost, api, `{"name":"random"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, api, `{"name":"general"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp, _ = do(t, http.MethodPost, api, `{"name":"  "}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = do(t, http.MethodPost, api, `not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPut, api+"/general", `{"name":"eng"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, http.MethodPut, api+"/missing", `{"name":"x"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, out := do(t, http.MethodGet, api, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []any{"eng", "random"}, out["channels"])

	resp, _ = do(t, http.MethodDelete, api+"/eng", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = do(t, http.MethodDelete, api+"/eng", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, out = do(t, http.MethodGet, api, "")
	require.Equal(t, []any{"random"}, out["channels"])
}

func TestChannelRequest_BodyTooLarge(t *testing.T) {
	ts := newTestServer(t)
	api := ts.URL + "/api/channels"

	huge := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	resp, out := do(t, http.MethodPost, api, huge)
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	require.NotEmpty(t, out["error"])

	resp, _ = do(t, http.MethodPut, api+"/general", huge)
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	_, out = do(t, http.MethodGet, api, "")
	require.Empty(t, out["channels"])
}

func TestShutdown_BeforeStart(t *testing.T) {
	s := New(&config.Config{HTTPPort: "0"}, queryService.New(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start kept serving after Shutdown")
	}
}

func TestShutdown_StopsRunningServer(t *testing.T) {
	s := New(&config.Config{HTTPPort: "0"}, queryService.New(), nil)

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
