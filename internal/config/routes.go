package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	pluginerrors "github.com/nuke-build-contrib/docusaurus/internal/errors"
)

// LoadRoutes reads the site's final route list. YAML files (.yaml/.yml) hold a
// sequence of path strings; anything else is treated as line-delimited text
// with blank lines and '#' comments skipped. Order is preserved and duplicates
// are kept (the engine tolerates them).
func LoadRoutes(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadRoutesYAML(path)
	default:
		return loadRoutesLines(path)
	}
}

func loadRoutesYAML(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pluginerrors.RoutesFileError(path, err)
	}
	var routes []string
	if err := yaml.Unmarshal(data, &routes); err != nil {
		return nil, pluginerrors.RoutesFileError(path, err)
	}
	return routes, nil
}

func loadRoutesLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pluginerrors.RoutesFileError(path, err)
	}
	defer f.Close()

	var routes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		routes = append(routes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, pluginerrors.RoutesFileError(path, err)
	}
	return routes, nil
}
