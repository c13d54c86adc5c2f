package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *PluginError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *PluginError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

// Redirect collection errors

// MalformedPaths reports creator-produced source paths that are not valid
// site-relative paths. Callers append one WithDetail line per offender.
func MalformedPaths() *PluginError {
	return New(CategoryValidation, SeverityFatal, "redirect source paths must be site-relative (single leading /, no scheme, query, or fragment)")
}

// UnresolvableTargets reports redirect destinations that match no real route.
// Callers append one WithDetail line per offender.
func UnresolvableTargets() *PluginError {
	return New(CategoryRoutes, SeverityFatal, "redirect destinations do not resolve to any route of the site")
}

// InvalidCreatorResult reports a createRedirects return value that was not
// built with one of the result constructors.
func InvalidCreatorResult(route string) *PluginError {
	return New(CategoryConfig, SeverityFatal, "createRedirects returned an invalid result shape; use NoRedirects, RedirectFrom, or RedirectFromAll").
		WithContext("route", route)
}

// ConflictingRedirects reports duplicate source paths pointing at different
// destinations, when the conflict policy demands an error.
func ConflictingRedirects() *PluginError {
	return New(CategoryValidation, SeverityFatal, "multiple redirects share a source path with different destinations")
}

// RoutesFileError wraps failures reading or parsing the route list input.
func RoutesFileError(path string, cause error) *PluginError {
	return Wrap(cause, CategoryRoutes, SeverityFatal, "failed to read route list").
		WithContext("path", path)
}
