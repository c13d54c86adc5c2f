package redirects

import "strings"

// Extension strategies only apply to routes that can carry a file extension:
// a route ending with "/" has nothing to suffix or strip.

// fromExtensionRedirects emits, for every eligible route and every configured
// extension, a rule redirecting the suffixed variant to the clean route
// (/page.html -> /page). A route already ending in any configured extension is
// skipped entirely: suffixing it again would only manufacture self-collisions.
func fromExtensionRedirects(routes, extensions []string) []RedirectRule {
	var rules []RedirectRule
	for _, route := range routes {
		if route == "" || strings.HasSuffix(route, "/") {
			continue
		}
		if _, ok := matchExtension(route, extensions); ok {
			continue
		}
		for _, ext := range extensions {
			rules = append(rules, RedirectRule{From: route + "." + ext, To: route})
		}
	}
	return rules
}

// toExtensionRedirects emits, for every route ending in a configured extension,
// a rule redirecting the clean variant to the suffixed route
// (/page -> /page.html). Routes without a configured extension emit nothing.
func toExtensionRedirects(routes, extensions []string) []RedirectRule {
	var rules []RedirectRule
	for _, route := range routes {
		if route == "" || strings.HasSuffix(route, "/") {
			continue
		}
		ext, ok := matchExtension(route, extensions)
		if !ok {
			continue
		}
		from := strings.TrimSuffix(route, "."+ext)
		if from == "" {
			continue
		}
		rules = append(rules, RedirectRule{From: from, To: route})
	}
	return rules
}

// matchExtension returns the first configured extension the route ends with.
func matchExtension(route string, extensions []string) (string, bool) {
	for _, ext := range extensions {
		if strings.HasSuffix(route, "."+ext) {
			return ext, true
		}
	}
	return "", false
}
