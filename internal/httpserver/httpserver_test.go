package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "decision-router/docs"
	decisionUC "decision-router/internal/decision/usecase"
	"decision-router/internal/router"
	"decision-router/pkg/datemath"
	"decision-router/pkg/log"
	"decision-router/pkg/mcp"
	"decision-router/pkg/metrics"
)

type stubEndpoint struct {
	name    string
	pingErr error
}

func (s *stubEndpoint) CallTool(ctx context.Context, name string, args map[string]any) (json.RawMessage, error) {
	return json.Marshal(map[string]any{"from": s.name, "tool": name})
}

func (s *stubEndpoint) Ping(ctx context.Context) error { return s.pingErr }

func (s *stubEndpoint) Name() string { return s.name }

func newTestServer(t *testing.T, cognitivePingErr error) *HTTPServer {
	t.Helper()

	health := &stubEndpoint{name: "health"}
	productivity := &stubEndpoint{name: "productivity"}
	cognitive := &stubEndpoint{name: "cognitive", pingErr: cognitivePingErr}

	cal, err := datemath.NewCalendar("UTC")
	require.NoError(t, err)
	cal.WithClock(func() time.Time { return time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC) })

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	uc := decisionUC.New(log.NewNop(), router.New(), decisionUC.Endpoints{
		Health:       health,
		Productivity: productivity,
		Cognitive:    cognitive,
	}, cal, time.Second, m)

	srv, err := New(log.NewNop(), Config{
		Logger:          log.NewNop(),
		Port:            8005,
		Mode:            "test",
		Environment:     "production",
		DecisionUseCase: uc,
		Endpoints:       []mcp.IMCP{health, productivity, cognitive},
		Metrics:         m,
		Gatherer:        reg,
	})
	require.NoError(t, err)
	return srv
}

func do(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: "test", Port: 8005})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Mode: "test"})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/health", "/live", "/ready"} {
		w := do(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestReady_DownstreamUnavailable(t *testing.T) {
	srv := newTestServer(t, errors.New("connection refused"))

	w := do(srv, http.MethodGet, "/ready", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body struct {
		Data struct {
			Status     string            `json:"status"`
			Downstream map[string]string `json:"downstream"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_ready", body.Data.Status)
	assert.Equal(t, "ok", body.Data.Downstream["health"])
	assert.Equal(t, "connection refused", body.Data.Downstream["cognitive"])
}

func TestDecideRoute(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(srv, http.MethodPost, "/api/v1/decide", `{"user_input":"how is my sleep"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error_code":0,"message":"Success","data":{"handled_by":"health_mcp","signal":{"from":"health","tool":"health_signal"}}}`, w.Body.String())
}

func TestMCPRoute(t *testing.T) {
	srv := newTestServer(t, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	client, err := mcp.New("decision", ts.URL+"/mcp")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	raw, err := client.CallTool(context.Background(), "decide", map[string]any{"user_input": "overall summary"})
	require.NoError(t, err)

	var result struct {
		StructuredContent map[string]any `json:"structuredContent"`
	}
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "2025-01-02", result.StructuredContent["date"])
	assert.Equal(t, "Aggregated by Decision MCP", result.StructuredContent["final_decision"])
}

func TestMetricsRoute(t *testing.T) {
	srv := newTestServer(t, nil)

	do(srv, http.MethodPost, "/api/v1/decide", `{"user_input":"hello"}`)
	w := do(srv, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `decision_router_decisions_total{domain="unknown",outcome="success"} 1`)
	assert.Contains(t, w.Body.String(), "decision_router_http_requests_total")
}

func TestSwaggerDocumentsAllDecideResults(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(srv, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]struct {
			Responses map[string]struct {
				Description string `json:"description"`
			} `json:"responses"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	ok, found := doc.Paths["/api/v1/decide"]["post"].Responses["200"]
	require.True(t, found)
	for _, shape := range []string{"routedResp", "summaryResp", "unrecognizedResp"} {
		assert.Contains(t, ok.Description, shape)
	}
}
