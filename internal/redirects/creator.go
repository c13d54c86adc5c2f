package redirects

import (
	"strings"

	"github.com/nuke-build-contrib/docusaurus/internal/errors"
	"github.com/nuke-build-contrib/docusaurus/internal/util/sets"
)

// CreateRedirectsFn derives additional redirect sources for one real route.
// It is invoked exactly once per route, in route-list order, and must be
// side-effect-free. The returned paths all redirect to the given route.
type CreateRedirectsFn func(route string) CreatorResult

type creatorKind int

const (
	creatorInvalid creatorKind = iota
	creatorNone
	creatorOne
	creatorMany
)

// CreatorResult is the tagged return value of a CreateRedirectsFn. Only values
// built with NoRedirects, RedirectFrom, or RedirectFromAll are valid; anything
// else (notably the zero value) is rejected as a configuration error.
type CreatorResult struct {
	kind  creatorKind
	paths []string
}

// NoRedirects declares that the route needs no additional redirects.
func NoRedirects() CreatorResult { return CreatorResult{kind: creatorNone} }

// RedirectFrom declares a single source path redirecting to the route.
func RedirectFrom(path string) CreatorResult {
	return CreatorResult{kind: creatorOne, paths: []string{path}}
}

// RedirectFromAll declares several source paths redirecting to the route.
func RedirectFromAll(paths ...string) CreatorResult {
	return CreatorResult{kind: creatorMany, paths: paths}
}

// creatorRedirects invokes fn once per distinct route, in list order, and
// collects the produced rules. Invalid result shapes fail immediately (a
// programming error in the site configuration); malformed source paths are
// batched into a single validation error covering every offender.
func creatorRedirects(routes []string, fn CreateRedirectsFn) ([]RedirectRule, error) {
	var rules []RedirectRule
	var pathErr *errors.PluginError

	seen := sets.New[string]()
	for _, route := range routes {
		if seen.Has(route) {
			continue
		}
		seen.Add(route)

		result := fn(route)
		switch result.kind {
		case creatorNone:
			continue
		case creatorOne, creatorMany:
		default:
			return nil, errors.InvalidCreatorResult(route)
		}

		for _, from := range result.paths {
			if reason, ok := checkSitePath(from); !ok {
				if pathErr == nil {
					pathErr = errors.MalformedPaths()
				}
				pathErr.WithDetail("%q: %s (createRedirects for route %q)", from, reason, route)
				continue
			}
			rules = append(rules, RedirectRule{From: from, To: route})
		}
	}

	if pathErr != nil {
		return nil, pathErr
	}
	return rules, nil
}

// checkSitePath reports whether p is a syntactically valid site-relative path:
// a single leading slash, no scheme, no query string or fragment.
func checkSitePath(p string) (reason string, ok bool) {
	switch {
	case p == "":
		return "empty path", false
	case strings.HasPrefix(p, "//"):
		return "protocol-relative path", false
	case strings.Contains(p, "://"):
		return "absolute URL", false
	case !strings.HasPrefix(p, "/"):
		return "missing leading slash", false
	case strings.ContainsAny(p, "?#"):
		return "query string or fragment", false
	default:
		return "", true
	}
}
