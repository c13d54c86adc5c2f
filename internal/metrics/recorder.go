// Package metrics provides observability hooks for redirect collection.
//
// It follows the Null Object pattern: components receive a Recorder through
// dependency injection and default to NoopRecorder, so metrics collection
// never requires nil checks at call sites. A Prometheus-backed implementation
// is activated by injecting PrometheusRecorder where needed.
package metrics

import "time"

// StrategyLabel enumerates candidate-producing strategies for counters.
type StrategyLabel string

const (
	StrategyFromExtensions StrategyLabel = "from_extensions"
	StrategyToExtensions   StrategyLabel = "to_extensions"
	StrategyStatic         StrategyLabel = "static"
	StrategyCreator        StrategyLabel = "creator"
)

// DropReason enumerates why a validated candidate was excluded from the output.
type DropReason string

const (
	DropShadowed  DropReason = "shadowed"  // source path collides with a real route
	DropDuplicate DropReason = "duplicate" // source path already claimed by an earlier rule
)

// Recorder defines observability hooks for redirect collection. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be safe on the
// zero value (allowing optional injection).
type Recorder interface {
	IncCandidates(strategy StrategyLabel, n int)
	IncDropped(reason DropReason, n int)
	ObserveCollectionDuration(d time.Duration)
	SetRules(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncCandidates(StrategyLabel, int)        {}
func (NoopRecorder) IncDropped(DropReason, int)              {}
func (NoopRecorder) ObserveCollectionDuration(time.Duration) {}
func (NoopRecorder) SetRules(int)                            {}
