package redirects

import (
	"log/slog"

	"github.com/nuke-build-contrib/docusaurus/internal/errors"
	"github.com/nuke-build-contrib/docusaurus/internal/logfields"
	"github.com/nuke-build-contrib/docusaurus/internal/metrics"
	"github.com/nuke-build-contrib/docusaurus/internal/util/sets"
)

// filterResult carries the surviving rules plus drop counts for metrics.
type filterResult struct {
	rules      []RedirectRule
	shadowed   int
	duplicates int
}

// filterCandidates produces the final rule list from the validated candidates:
// drops sources that would shadow a real page, collapses exact duplicates,
// and resolves same-source/different-destination conflicts per policy.
// First-seen order is preserved throughout.
func filterCandidates(candidates []candidate, routes sets.Set[string], policy ConflictPolicy, log *slog.Logger) (filterResult, error) {
	var res filterResult
	claimed := map[string]candidate{}
	var conflictErr *errors.PluginError

	for _, c := range candidates {
		if routes.Has(c.From) {
			res.shadowed++
			log.Debug("dropping redirect shadowing a real page",
				logfields.From(c.From), logfields.To(c.To), logfields.Strategy(string(c.strategy)))
			continue
		}
		if prev, ok := claimed[c.From]; ok {
			res.duplicates++
			if prev.To == c.To {
				continue
			}
			if policy.normalize() == ConflictError {
				if conflictErr == nil {
					conflictErr = errors.ConflictingRedirects()
				}
				conflictErr.WithDetail("%q -> %q (strategy %s) conflicts with earlier %q -> %q (strategy %s)",
					c.From, c.To, c.strategy, prev.From, prev.To, prev.strategy)
				continue
			}
			log.Warn("dropping redirect whose source is already claimed",
				logfields.From(c.From), logfields.To(c.To), logfields.Strategy(string(c.strategy)),
				slog.String("kept_to", prev.To))
			continue
		}
		claimed[c.From] = c
		res.rules = append(res.rules, c.RedirectRule)
	}

	if conflictErr != nil {
		return filterResult{}, conflictErr
	}
	return res, nil
}

// record maps the pass outcome onto recorder calls.
func (r filterResult) record(rec metrics.Recorder) {
	rec.IncDropped(metrics.DropShadowed, r.shadowed)
	rec.IncDropped(metrics.DropDuplicate, r.duplicates)
	rec.SetRules(len(r.rules))
}
