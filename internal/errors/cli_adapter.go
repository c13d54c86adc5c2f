package errors

import (
	"fmt"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if pe, ok := err.(*PluginError); ok {
		switch pe.Category {
		case CategoryValidation:
			return 2 // Invalid redirect rules
		case CategoryConfig:
			return 7 // Configuration error
		case CategoryRoutes:
			return 8 // Route set / input error
		case CategoryInternal:
			return 10 // Internal error
		}
	}

	return 1
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if pe, ok := err.(*PluginError); ok {
		if a.verbose {
			return pe.Error()
		}
		out := pe.Message
		for _, d := range pe.Details {
			out += "\n  - " + d
		}
		return out
	}

	return fmt.Sprintf("Error: %v", err)
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	if a.verbose {
		a.logError(err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", a.FormatError(err))
	os.Exit(a.ExitCodeFor(err))
}

// logError logs an error with category context.
func (a *CLIErrorAdapter) logError(err error) {
	if pe, ok := err.(*PluginError); ok {
		a.logger.LogAttrs(nil, slog.LevelError, pe.Message,
			slog.String("category", string(pe.Category)),
			slog.Int("details", len(pe.Details)))
		return
	}
	a.logger.Error("Unclassified error", "error", err)
}
