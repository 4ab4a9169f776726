package dkgmetrics

import "github.com/prometheus/client_golang/prometheus"

// Registry bundles every collector the engine's components report into. A
// nil *Registry is valid and every method below becomes a no-op, so callers
// that do not care about metrics can simply pass nil.
type Registry struct {
	WritesAccepted     *prometheus.CounterVec   // labels: stage, source
	WritesRejected     *prometheus.CounterVec   // labels: stage, source
	UnresolvedPatterns prometheus.Counter
	TimingAlerts       *prometheus.CounterVec   // labels: severity
	ViewBuildSeconds   *prometheus.HistogramVec // labels: view, context
}

// NewRegistry constructs a Registry and registers every collector against
// reg. Pass prometheus.NewRegistry() for an isolated registry in tests, or
// prometheus.DefaultRegisterer in production.
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		WritesAccepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dkg", Subsystem: "updater", Name: "writes_accepted_total",
			Help: "Field writes accepted by the Graph Updater, by stage and source.",
		}, []string{"stage", "source"}),
		WritesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dkg", Subsystem: "updater", Name: "writes_rejected_total",
			Help: "Field writes rejected by the Graph Updater's precedence rule, by stage and source.",
		}, []string{"stage", "source"}),
		UnresolvedPatterns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dkg", Subsystem: "constraints", Name: "unresolved_patterns_total",
			Help: "Constraint target patterns that matched zero nodes.",
		}),
		TimingAlerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dkg", Subsystem: "timing", Name: "alerts_total",
			Help: "Timing alerts emitted, by severity.",
		}, []string{"severity"}),
		ViewBuildSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dkg", Subsystem: "view", Name: "build_seconds",
			Help:    "Wall-clock duration of SuperGraph construction, by view and context.",
			Buckets: prometheus.DefBuckets,
		}, []string{"view", "context"}),
	}
	reg.MustRegister(r.WritesAccepted, r.WritesRejected, r.UnresolvedPatterns, r.TimingAlerts, r.ViewBuildSeconds)
	return r
}

func (r *Registry) ObserveWrite(accepted bool, stage, source string) {
	if r == nil {
		return
	}
	if accepted {
		r.WritesAccepted.WithLabelValues(stage, source).Inc()
	} else {
		r.WritesRejected.WithLabelValues(stage, source).Inc()
	}
}

func (r *Registry) ObserveUnresolvedPattern() {
	if r == nil {
		return
	}
	r.UnresolvedPatterns.Inc()
}

func (r *Registry) ObserveTimingAlert(severity string) {
	if r == nil {
		return
	}
	r.TimingAlerts.WithLabelValues(severity).Inc()
}

func (r *Registry) ObserveViewBuildSeconds(view, context string, seconds float64) {
	if r == nil {
		return
	}
	r.ViewBuildSeconds.WithLabelValues(view, context).Observe(seconds)
}
