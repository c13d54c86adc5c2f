package redirects

import "strings"

// TrailingSlash controls how a rule's destination is rewritten before it is
// compared against the real route set. Sources are never rewritten, so both
// slashed and unslashed legacy paths stay redirectable.
type TrailingSlash string

const (
	// TrailingSlashKeep leaves destinations untouched.
	TrailingSlashKeep TrailingSlash = "keep"
	// TrailingSlashAlways ensures destinations end with a slash.
	TrailingSlashAlways TrailingSlash = "always"
	// TrailingSlashNever strips trailing slashes from destinations (the root
	// path stays "/").
	TrailingSlashNever TrailingSlash = "never"
)

func (p TrailingSlash) normalize() TrailingSlash {
	switch p {
	case TrailingSlashAlways, TrailingSlashNever:
		return p
	default:
		return TrailingSlashKeep
	}
}

func (p TrailingSlash) String() string { return string(p.normalize()) }

// Apply rewrites path according to the policy.
func (p TrailingSlash) Apply(path string) string {
	switch p.normalize() {
	case TrailingSlashAlways:
		if strings.HasSuffix(path, "/") {
			return path
		}
		return path + "/"
	case TrailingSlashNever:
		trimmed := strings.TrimRight(path, "/")
		if trimmed == "" {
			return "/"
		}
		return trimmed
	default:
		return path
	}
}

// ConflictPolicy controls what happens when two candidates share a source path
// but point at different destinations.
type ConflictPolicy string

const (
	// ConflictFirstWins keeps the first candidate in strategy-then-declaration
	// order and drops later ones with a warning.
	ConflictFirstWins ConflictPolicy = "first_wins"
	// ConflictError fails collection, reporting every conflicting source path.
	ConflictError ConflictPolicy = "error"
)

func (m ConflictPolicy) normalize() ConflictPolicy {
	switch m {
	case ConflictError:
		return ConflictError
	default:
		return ConflictFirstWins
	}
}

func (m ConflictPolicy) String() string { return string(m.normalize()) }
