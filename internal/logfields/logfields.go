package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyStrategy   = "strategy"
	KeyFrom       = "from"
	KeyTo         = "to"
	KeyRoute      = "route"
	KeyRoutes     = "routes"
	KeyCandidates = "candidates"
	KeyRules      = "rules"
	KeyDropped    = "dropped"
	KeyDurationMS = "duration_ms"
	KeyConfig     = "config"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Strategy(s string) slog.Attr     { return slog.String(KeyStrategy, s) }
func From(p string) slog.Attr         { return slog.String(KeyFrom, p) }
func To(p string) slog.Attr           { return slog.String(KeyTo, p) }
func Route(p string) slog.Attr        { return slog.String(KeyRoute, p) }
func Routes(n int) slog.Attr          { return slog.Int(KeyRoutes, n) }
func Candidates(n int) slog.Attr      { return slog.Int(KeyCandidates, n) }
func Rules(n int) slog.Attr           { return slog.Int(KeyRules, n) }
func Dropped(n int) slog.Attr         { return slog.Int(KeyDropped, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func ConfigPath(p string) slog.Attr   { return slog.String(KeyConfig, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
