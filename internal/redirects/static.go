package redirects

// expandStaticRedirects flattens the declarative rules: an entry carrying
// several source paths becomes one rule per path, all sharing the same
// destination. Destinations are carried through untouched; the validator
// cross-checks them against the route set after normalization.
func expandStaticRedirects(entries []StaticRedirect) []RedirectRule {
	var rules []RedirectRule
	for _, entry := range entries {
		for _, from := range entry.From {
			rules = append(rules, RedirectRule{From: from, To: entry.To})
		}
	}
	return rules
}
