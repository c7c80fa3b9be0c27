package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes.
const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

// Recorder counts catalog lookups and handled voice commands on its own
// registry. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry
	lookups  *prometheus.CounterVec
	commands *prometheus.CounterVec
	latency  prometheus.Histogram
}

// New creates a Recorder. withRuntime adds the Go and process collectors,
// which a long-running server wants and a one-shot CLI call does not.
func New(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voicecart_catalog_lookups_total",
			Help: "Catalog lookups by outcome.",
		}, []string{"outcome"}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voicecart_commands_total",
			Help: "Handled transcripts by intent and outcome.",
		}, []string{"intent", "outcome"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "voicecart_catalog_lookup_seconds",
			Help:    "Catalog lookup latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	r.registry.MustRegister(r.lookups, r.commands, r.latency)
	if withRuntime {
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

// Lookup records one catalog lookup.
func (r *Recorder) Lookup(outcome string, seconds float64) {
	if r == nil {
		return
	}
	r.lookups.WithLabelValues(outcome).Inc()
	r.latency.Observe(seconds)
}

// Command records one handled transcript.
func (r *Recorder) Command(intent, outcome string) {
	if r == nil {
		return
	}
	r.commands.WithLabelValues(intent, outcome).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
