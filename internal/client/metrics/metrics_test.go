package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordOperation(OpLogin, OutcomeSuccess, 120*time.Millisecond)
	c.RecordOperation(OpLogin, OutcomeRejected, 80*time.Millisecond)
	c.RecordOperation(OpLogin, OutcomeRejected, 90*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues(OpLogin, OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.operations.WithLabelValues(OpLogin, OutcomeRejected)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.latency))
}

func TestCollector_SetAuthenticated(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.SetAuthenticated(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.authenticated))

	c.SetAuthenticated(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(c.authenticated))
}

func TestNewCollector_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = NewCollector(reg)
	require.Panics(t, func() { _ = NewCollector(reg) })
}

func TestSetupMetricsRoute_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordOperation(OpLogout, OutcomeSuccess, time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	SetupMetricsRoute(reg).ServeHTTP(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `jobhub_session_operations_total{operation="logout",outcome="success"} 1`)
	assert.Contains(t, string(body), "jobhub_session_authenticated 0")
}

func TestSetupMetricsRoute_RejectsOtherMethods(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)

	w := httptest.NewRecorder()
	SetupMetricsRoute(reg).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/metrics", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = httptest.NewRecorder()
	SetupMetricsRoute(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/other", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	r.RecordOperation(OpLogin, OutcomeError, time.Second)
	r.SetAuthenticated(true)
}
