// Package redirects computes the client-side redirect rules for a statically
// generated site. Given the final list of real route paths and the configured
// generation strategies it produces an ordered list of {from, to} rules,
// normalized to the site's trailing-slash convention, validated against the
// route set, and filtered so no rule shadows a real page.
//
// The computation is pure, synchronous, and runs once per build; the resulting
// rules are handed to a downstream artifact writer.
package redirects

import (
	"log/slog"
	"time"

	"github.com/nuke-build-contrib/docusaurus/internal/logfields"
	"github.com/nuke-build-contrib/docusaurus/internal/metrics"
	"github.com/nuke-build-contrib/docusaurus/internal/util/sets"
)

// Collector runs collection passes. The zero value is not usable; construct
// with NewCollector.
type Collector struct {
	log       *slog.Logger
	recorder  metrics.Recorder
	conflicts ConflictPolicy
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger overrides the default slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Collector) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRecorder injects a metrics recorder (default: metrics.NoopRecorder).
func WithRecorder(rec metrics.Recorder) Option {
	return func(c *Collector) {
		if rec != nil {
			c.recorder = rec
		}
	}
}

// WithConflictPolicy selects how same-source/different-destination duplicates
// are handled (default: first wins).
func WithConflictPolicy(policy ConflictPolicy) Option {
	return func(c *Collector) { c.conflicts = policy }
}

// NewCollector builds a Collector with the given options.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		log:       slog.Default(),
		recorder:  metrics.NoopRecorder{},
		conflicts: ConflictFirstWins,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect is the package-level convenience entry point using default options.
func Collect(routes []string, options Options, trailingSlash TrailingSlash) ([]RedirectRule, error) {
	return NewCollector().Collect(routes, options, trailingSlash)
}

// Collect runs one collection pass: strategy runners in fixed order
// (extension-derived, static, programmatic), trailing-slash normalization of
// destinations, batched target validation, then shadow filtering and
// deduplication. Any validation failure aborts with no partial output.
//
// The supplied route list is treated as read-only and may contain duplicates;
// membership checks collapse them.
func (c *Collector) Collect(routes []string, options Options, trailingSlash TrailingSlash) ([]RedirectRule, error) {
	start := time.Now()

	candidates, err := c.runStrategies(routes, options)
	if err != nil {
		return nil, err
	}

	candidates = applyTrailingSlash(candidates, trailingSlash)

	if err := validateTargets(candidates, routes, trailingSlash, options.BaseURL); err != nil {
		return nil, err
	}

	res, err := filterCandidates(candidates, sets.New(routes...), c.conflicts, c.log)
	if err != nil {
		return nil, err
	}

	res.record(c.recorder)
	c.recorder.ObserveCollectionDuration(time.Since(start))
	c.log.Debug("redirect collection finished",
		logfields.Routes(len(routes)),
		logfields.Candidates(len(candidates)),
		logfields.Rules(len(res.rules)),
		logfields.Dropped(res.shadowed+res.duplicates),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000.0))

	return res.rules, nil
}

// runStrategies produces the concatenated candidate list in strategy order.
func (c *Collector) runStrategies(routes []string, options Options) ([]candidate, error) {
	var candidates []candidate

	fromExt := fromExtensionRedirects(routes, options.FromExtensions)
	c.recorder.IncCandidates(metrics.StrategyFromExtensions, len(fromExt))
	candidates = append(candidates, asCandidates(fromExt, metrics.StrategyFromExtensions)...)

	toExt := toExtensionRedirects(routes, options.ToExtensions)
	c.recorder.IncCandidates(metrics.StrategyToExtensions, len(toExt))
	candidates = append(candidates, asCandidates(toExt, metrics.StrategyToExtensions)...)

	static := expandStaticRedirects(options.Redirects)
	c.recorder.IncCandidates(metrics.StrategyStatic, len(static))
	candidates = append(candidates, asCandidates(static, metrics.StrategyStatic)...)

	if options.CreateRedirects != nil {
		created, err := creatorRedirects(routes, options.CreateRedirects)
		if err != nil {
			return nil, err
		}
		c.recorder.IncCandidates(metrics.StrategyCreator, len(created))
		candidates = append(candidates, asCandidates(created, metrics.StrategyCreator)...)
	}

	return candidates, nil
}
