package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Cast(CastLight, true)
	m.Cast(CastLight, false)
	m.Cast(CastSight, true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.casts.WithLabelValues(CastLight)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fastPath.WithLabelValues(CastLight)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fastPath.WithLabelValues(CastSight)))
}

func TestPhaseAndSubmaps(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	done := m.Phase(PhaseSunlight)
	done()
	m.SubmapsRebuilt(4)
	m.SubmapsRebuilt(0)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.submapsRebuilt))
	assert.Equal(t, 1, testutil.CollectAndCount(m.phase))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.Cast(CastShrapnel, true)
	m.SubmapsRebuilt(3)
	m.Phase(PhaseSeen)()
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.Cast(CastCamera, false)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `lumen_casts_total{kind="camera"} 1`))
}
