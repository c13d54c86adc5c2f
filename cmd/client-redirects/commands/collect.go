package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nuke-build-contrib/docusaurus/internal/logfields"
	"github.com/nuke-build-contrib/docusaurus/internal/redirects"
)

// CollectCmd implements the 'collect' command.
type CollectCmd struct {
	Routes        string `short:"r" required:"" help:"Route list file (text lines or YAML list)"`
	Output        string `short:"o" default:"-" help:"Output file for the rules (- for stdout)"`
	Format        string `short:"f" default:"yaml" enum:"yaml,json" help:"Output format (yaml or json)"`
	OnConflict    string `default:"first-wins" enum:"first-wins,error" help:"Duplicate source handling (first-wins or error)"`
	TrailingSlash string `default:"config" enum:"config,always,never,keep" help:"Override the configured trailing slash policy"`
}

// Run executes the collect command.
func (cmd *CollectCmd) Run(_ *Global, root *CLI) error {
	cfg, routes, err := loadInputs(root.Config, cmd.Routes)
	if err != nil {
		return err
	}

	collector := redirects.NewCollector(
		redirects.WithConflictPolicy(conflictPolicy(cmd.OnConflict)),
	)
	rules, err := collector.Collect(routes, cfg.Options(), trailingSlashPolicy(cmd.TrailingSlash, cfg))
	if err != nil {
		return err
	}

	out, err := encodeRules(rules, cmd.Format)
	if err != nil {
		return err
	}

	if cmd.Output == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	// #nosec G306 -- rule list is a public build artifact
	return os.WriteFile(cmd.Output, out, 0o644)
}

func encodeRules(rules []redirects.RedirectRule, format string) ([]byte, error) {
	// Keep the empty rule set explicit rather than emitting "null".
	if rules == nil {
		rules = []redirects.RedirectRule{}
	}
	switch format {
	case "json":
		out, err := json.MarshalIndent(rules, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return yaml.Marshal(rules)
	}
}

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Routes        string `short:"r" required:"" help:"Route list file (text lines or YAML list)"`
	OnConflict    string `default:"error" enum:"first-wins,error" help:"Duplicate source handling (first-wins or error)"`
	TrailingSlash string `default:"config" enum:"config,always,never,keep" help:"Override the configured trailing slash policy"`
}

// Run executes the check command.
func (cmd *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, routes, err := loadInputs(root.Config, cmd.Routes)
	if err != nil {
		return err
	}

	collector := redirects.NewCollector(
		redirects.WithConflictPolicy(conflictPolicy(cmd.OnConflict)),
	)
	rules, err := collector.Collect(routes, cfg.Options(), trailingSlashPolicy(cmd.TrailingSlash, cfg))
	if err != nil {
		return err
	}

	g.Logger.Info("redirect configuration is valid",
		logfields.Routes(len(routes)), logfields.Rules(len(rules)))
	fmt.Fprintf(os.Stderr, "OK: %d redirect rule(s) over %d route(s)\n", len(rules), len(routes))
	return nil
}
