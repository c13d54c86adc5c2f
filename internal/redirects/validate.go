package redirects

import (
	"github.com/nuke-build-contrib/docusaurus/internal/errors"
	"github.com/nuke-build-contrib/docusaurus/internal/util/sets"
)

// validateTargets confirms every candidate destination resolves to a real
// route. Destinations are already normalized, so the comparison set holds each
// route in both its raw and normalized form. Failures are batched: one error
// naming every unresolvable destination once, with the first rule and strategy
// that referenced it.
func validateTargets(candidates []candidate, routes []string, policy TrailingSlash, baseURL string) error {
	comparison := sets.New[string]()
	for _, r := range routes {
		comparison.Add(r)
		comparison.Add(policy.Apply(r))
	}

	var err *errors.PluginError
	reported := sets.New[string]()
	for _, c := range candidates {
		if comparison.Has(c.To) {
			continue
		}
		if reported.Has(c.To) {
			continue
		}
		reported.Add(c.To)
		if err == nil {
			err = errors.UnresolvableTargets()
		}
		err.WithDetail("%q is not a route of the site (redirect from %q, strategy %s)", c.To, c.From, c.strategy)
	}

	if err != nil {
		if baseURL != "" {
			err.WithContext("site", baseURL)
		}
		return err
	}
	return nil
}
