package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNoopRecorderIsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncCandidates(StrategyStatic, 3)
	r.IncDropped(DropShadowed, 1)
	r.ObserveCollectionDuration(time.Millisecond)
	r.SetRules(5)
}

func TestPrometheusRecorderNilReceiverSafe(t *testing.T) {
	var p *PrometheusRecorder
	p.IncCandidates(StrategyCreator, 1)
	p.IncDropped(DropDuplicate, 1)
	p.ObserveCollectionDuration(time.Second)
	p.SetRules(0)
}

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	p := NewPrometheusRecorder(reg)

	p.IncCandidates(StrategyFromExtensions, 2)
	p.IncCandidates(StrategyFromExtensions, 1)
	p.IncDropped(DropShadowed, 4)
	p.SetRules(7)

	if got := testutil.ToFloat64(p.candidates.WithLabelValues(string(StrategyFromExtensions))); got != 3 {
		t.Fatalf("candidates counter = %v, want 3", got)
	}
	if got := testutil.ToFloat64(p.dropped.WithLabelValues(string(DropShadowed))); got != 4 {
		t.Fatalf("dropped counter = %v, want 4", got)
	}
	if got := testutil.ToFloat64(p.rules); got != 7 {
		t.Fatalf("rules gauge = %v, want 7", got)
	}
}
