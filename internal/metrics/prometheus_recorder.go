package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	candidates         *prom.CounterVec
	dropped            *prom.CounterVec
	collectionDuration prom.Histogram
	rules              prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.candidates = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "client_redirects",
			Name:      "candidates_total",
			Help:      "Candidate redirects produced, by strategy",
		}, []string{"strategy"})
		pr.dropped = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "client_redirects",
			Name:      "dropped_total",
			Help:      "Validated candidates excluded from the output, by reason",
		}, []string{"reason"})
		pr.collectionDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "client_redirects",
			Name:      "collection_duration_seconds",
			Help:      "Duration of a full redirect collection pass",
			Buckets:   prom.DefBuckets,
		})
		pr.rules = prom.NewGauge(prom.GaugeOpts{
			Namespace: "client_redirects",
			Name:      "rules",
			Help:      "Final rule count of the last collection pass",
		})
		reg.MustRegister(pr.candidates, pr.dropped, pr.collectionDuration, pr.rules)
	})
	return pr
}

func (p *PrometheusRecorder) IncCandidates(strategy StrategyLabel, n int) {
	if p == nil || p.candidates == nil {
		return
	}
	p.candidates.WithLabelValues(string(strategy)).Add(float64(n))
}

func (p *PrometheusRecorder) IncDropped(reason DropReason, n int) {
	if p == nil || p.dropped == nil {
		return
	}
	p.dropped.WithLabelValues(string(reason)).Add(float64(n))
}

func (p *PrometheusRecorder) ObserveCollectionDuration(d time.Duration) {
	if p == nil || p.collectionDuration == nil {
		return
	}
	p.collectionDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetRules(n int) {
	if p == nil || p.rules == nil {
		return
	}
	p.rules.Set(float64(n))
}
