// Package config loads the declarative redirect configuration and the route
// list input. The programmatic createRedirects strategy is Go-API-only and
// cannot be expressed here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	pluginerrors "github.com/nuke-build-contrib/docusaurus/internal/errors"
	"github.com/nuke-build-contrib/docusaurus/internal/redirects"
)

// Config mirrors the redirects section of the site configuration.
type Config struct {
	FromExtensions []string        `yaml:"fromExtensions,omitempty"`
	ToExtensions   []string        `yaml:"toExtensions,omitempty"`
	Redirects      []RedirectEntry `yaml:"redirects,omitempty"`

	// TrailingSlash is the site-wide policy decided elsewhere: true adds,
	// false strips, unset leaves destinations untouched.
	TrailingSlash *bool `yaml:"trailingSlash,omitempty"`

	// BaseURL names the site in diagnostics; it never affects rule computation.
	BaseURL string `yaml:"baseUrl,omitempty"`
}

// RedirectEntry is one declarative redirect; From accepts a single path or a
// list of paths sharing the same destination.
type RedirectEntry struct {
	From StringOrList `yaml:"from"`
	To   string       `yaml:"to"`
}

// StringOrList unmarshals either a YAML scalar or a sequence of strings.
type StringOrList []string

func (s *StringOrList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var one string
		if err := value.Decode(&one); err != nil {
			return err
		}
		*s = StringOrList{one}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = StringOrList(many)
		return nil
	default:
		return fmt.Errorf("from must be a string or a list of strings (line %d)", value.Line)
	}
}

// Load reads and parses a redirect configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pluginerrors.ConfigNotFound(path)
		}
		return nil, pluginerrors.ConfigInvalid(path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, pluginerrors.ConfigInvalid(path, err)
	}
	return &cfg, nil
}

// Options converts the declarative configuration into engine options.
func (c *Config) Options() redirects.Options {
	opts := redirects.Options{
		FromExtensions: c.FromExtensions,
		ToExtensions:   c.ToExtensions,
		BaseURL:        c.BaseURL,
	}
	for _, entry := range c.Redirects {
		opts.Redirects = append(opts.Redirects, redirects.StaticRedirect{
			From: entry.From,
			To:   entry.To,
		})
	}
	return opts
}

// TrailingSlashPolicy maps the tri-state YAML knob onto the engine policy.
func (c *Config) TrailingSlashPolicy() redirects.TrailingSlash {
	if c.TrailingSlash == nil {
		return redirects.TrailingSlashKeep
	}
	if *c.TrailingSlash {
		return redirects.TrailingSlashAlways
	}
	return redirects.TrailingSlashNever
}
