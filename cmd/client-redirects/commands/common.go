package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/nuke-build-contrib/docusaurus/internal/config"
	"github.com/nuke-build-contrib/docusaurus/internal/redirects"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Redirect configuration file path" default:"redirects.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Collect CollectCmd `cmd:"" help:"Compute redirect rules from the route list and configuration"`
	Check   CheckCmd   `cmd:"" help:"Validate the redirect configuration against the route list without emitting rules"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	config.LoadEnv()
	return nil
}

// loadInputs reads the configuration and route list shared by collect/check.
func loadInputs(configPath, routesPath string) (*config.Config, []string, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	routes, err := config.LoadRoutes(routesPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, routes, nil
}

// conflictPolicy maps the CLI flag value onto the engine policy.
func conflictPolicy(flag string) redirects.ConflictPolicy {
	if flag == "error" {
		return redirects.ConflictError
	}
	return redirects.ConflictFirstWins
}

// trailingSlashPolicy resolves the CLI override against the configured policy.
func trailingSlashPolicy(override string, cfg *config.Config) redirects.TrailingSlash {
	switch override {
	case "always":
		return redirects.TrailingSlashAlways
	case "never":
		return redirects.TrailingSlashNever
	case "keep":
		return redirects.TrailingSlashKeep
	default:
		return cfg.TrailingSlashPolicy()
	}
}
