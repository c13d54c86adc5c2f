package redirects

import "github.com/nuke-build-contrib/docusaurus/internal/metrics"

// RedirectRule is one redirect of the final output: requests to From should be
// redirected to To. From never equals a real route of the site and is unique
// across the rule set; To always resolves to a real route after trailing-slash
// normalization.
type RedirectRule struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// StaticRedirect is one declarative redirect entry from the site configuration.
// From may hold several source paths; each expands into its own rule sharing To.
type StaticRedirect struct {
	From []string `yaml:"from" json:"from"`
	To   string   `yaml:"to" json:"to"`
}

// Options holds the redirect generation strategies. Every field is optional;
// empty options produce an empty rule set.
type Options struct {
	// FromExtensions lists extensions (without the dot) whose suffixed variants
	// should redirect to the clean route: "html" makes /page.html -> /page.
	FromExtensions []string

	// ToExtensions lists extensions whose clean variants should redirect to the
	// suffixed route: "html" makes /page -> /page.html.
	ToExtensions []string

	// Redirects are explicit source-to-destination rules.
	Redirects []StaticRedirect

	// CreateRedirects, when non-nil, is invoked once per real route to derive
	// additional source paths redirecting to that route.
	CreateRedirects CreateRedirectsFn

	// BaseURL is the site's base URL, used only for diagnostics.
	BaseURL string
}

// candidate is a rule plus the strategy that produced it, kept through
// normalization and validation for diagnostics, then discarded.
type candidate struct {
	RedirectRule
	strategy metrics.StrategyLabel
}

func asCandidates(rules []RedirectRule, strategy metrics.StrategyLabel) []candidate {
	out := make([]candidate, 0, len(rules))
	for _, r := range rules {
		out = append(out, candidate{RedirectRule: r, strategy: strategy})
	}
	return out
}
