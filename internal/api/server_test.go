package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/mamchoi/internal/export"
	"github.com/abhisek/mamchoi/internal/problemgen"
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/round"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	clock := func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }
	opts = append([]Option{WithClock(clock)}, opts...)
	srv := httptest.NewServer(NewServer(round.New(problemgen.DefaultConfig()), opts...).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postRound(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/rounds", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestListModes(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/modes")
	require.NoError(t, err)
	defer resp.Body.Close()

	var modes []ModeInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&modes))
	require.Len(t, modes, len(question.AllModes))
	assert.Equal(t, question.ModeAddition, modes[0].ID)
	require.Len(t, modes[0].Tiers, 2)
	assert.Equal(t, 20, modes[0].Tiers[0].DefaultCount)

	for _, m := range modes {
		if m.ID == question.ModeComparison {
			assert.Equal(t, 25, m.Tiers[1].DefaultCount)
		}
	}
}

func TestListSets(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/sets")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body SetsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.StarterIcons)
	require.Len(t, body.Sets, 5)
	assert.Equal(t, "farm_animals", body.Sets[0].ID)
	assert.Equal(t, 20, body.Sets[0].StarsRequired)
}

func TestCreateRound(t *testing.T) {
	srv := newTestServer(t)
	resp := postRound(t, srv, `{"mode":"odd_one_out","difficulty":"choi","unlockedSetIds":["farm_animals"],"count":5,"seed":9}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	doc, err := export.Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, question.ModeOddOneOut, doc.Mode)
	assert.Equal(t, uint64(9), doc.Seed)
	assert.Len(t, doc.Questions, 5)
	assert.True(t, doc.GeneratedAt.Equal(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)))
}

func TestCreateRoundRejects(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"mode":`},
		{"unknown field", `{"mode":"counting","difficulty":"mam","level":3}`},
		{"unknown mode", `{"mode":"essay","difficulty":"mam"}`},
		{"unknown difficulty", `{"mode":"counting","difficulty":"la"}`},
		{"negative count", `{"mode":"counting","difficulty":"mam","count":-1}`},
		{"count too large", `{"mode":"counting","difficulty":"mam","count":1000}`},
		{"unknown set", `{"mode":"counting","difficulty":"mam","unlockedSetIds":["robots"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postRound(t, srv, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, WithAllowedOrigins("http://localhost:3000"))

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/rounds", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRequestsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	srv := newTestServer(t, WithLogger(zap.New(core)))

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/healthz", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}
