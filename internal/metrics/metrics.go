// Package metrics exposes Prometheus instrumentation for cache rebuilds.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cast kinds.
const (
	CastSight    = "sight"
	CastCamera   = "camera"
	CastLight    = "light"
	CastShrapnel = "shrapnel"
)

// Rebuild phases.
const (
	PhaseTransparency = "transparency"
	PhaseSunlight     = "sunlight"
	PhaseLightmap     = "lightmap"
	PhaseSeen         = "seen"
)

// Metrics holds the collectors. A nil *Metrics records nothing.
type Metrics struct {
	casts          *prometheus.CounterVec
	fastPath       *prometheus.CounterVec
	phase          *prometheus.HistogramVec
	submapsRebuilt prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		casts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lumen",
			Name:      "casts_total",
			Help:      "Shadowcasts run, by kind.",
		}, []string{"kind"}),
		fastPath: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lumen",
			Name:      "fast_path_casts_total",
			Help:      "Shadowcasts that started on a decay lookup table, by kind.",
		}, []string{"kind"}),
		phase: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lumen",
			Name:      "rebuild_phase_seconds",
			Help:      "Time spent in each cache rebuild phase.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"phase"}),
		submapsRebuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lumen",
			Name:      "submaps_rebuilt_total",
			Help:      "Submaps whose transparency was recomputed.",
		}),
	}
	reg.MustRegister(m.casts, m.fastPath, m.phase, m.submapsRebuilt)
	return m
}

// Cast records one cast of kind.
func (m *Metrics) Cast(kind string, fastPath bool) {
	if m == nil {
		return
	}
	m.casts.WithLabelValues(kind).Inc()
	if fastPath {
		m.fastPath.WithLabelValues(kind).Inc()
	}
}

// SubmapsRebuilt adds n rebuilt submaps.
func (m *Metrics) SubmapsRebuilt(n int) {
	if m == nil || n == 0 {
		return
	}
	m.submapsRebuilt.Add(float64(n))
}

// Phase starts timing a rebuild phase; call the returned func when done.
func (m *Metrics) Phase(name string) func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		m.phase.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the collectors registered in g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
