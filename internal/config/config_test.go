package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pluginerrors "github.com/nuke-build-contrib/docusaurus/internal/errors"
	"github.com/nuke-build-contrib/docusaurus/internal/redirects"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "redirects.yaml", `
fromExtensions: [html, exe]
toExtensions:
  - html
redirects:
  - from: /old
    to: /new
  - from: [/a1, /a2]
    to: /
trailingSlash: true
baseUrl: https://docs.example.com
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"html", "exe"}, cfg.FromExtensions)
	assert.Equal(t, []string{"html"}, cfg.ToExtensions)
	require.Len(t, cfg.Redirects, 2)
	assert.Equal(t, StringOrList{"/old"}, cfg.Redirects[0].From)
	assert.Equal(t, StringOrList{"/a1", "/a2"}, cfg.Redirects[1].From)
	require.NotNil(t, cfg.TrailingSlash)
	assert.True(t, *cfg.TrailingSlash)
	assert.Equal(t, "https://docs.example.com", cfg.BaseURL)
	assert.Equal(t, "https://docs.example.com", cfg.Options().BaseURL)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, pluginerrors.IsCategory(err, pluginerrors.CategoryConfig))
}

func TestLoadConfigInvalidFromShape(t *testing.T) {
	path := writeFile(t, "redirects.yaml", `
redirects:
  - from: {bad: shape}
    to: /new
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from must be a string or a list of strings")
}

func TestOptionsConversion(t *testing.T) {
	cfg := &Config{
		FromExtensions: []string{"html"},
		Redirects: []RedirectEntry{
			{From: StringOrList{"/a1", "/a2"}, To: "/"},
		},
	}
	opts := cfg.Options()
	assert.Equal(t, []string{"html"}, opts.FromExtensions)
	assert.Equal(t, []redirects.StaticRedirect{{From: []string{"/a1", "/a2"}, To: "/"}}, opts.Redirects)
}

func TestTrailingSlashPolicy(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, redirects.TrailingSlashKeep, (&Config{}).TrailingSlashPolicy())
	assert.Equal(t, redirects.TrailingSlashAlways, (&Config{TrailingSlash: &yes}).TrailingSlashPolicy())
	assert.Equal(t, redirects.TrailingSlashNever, (&Config{TrailingSlash: &no}).TrailingSlashPolicy())
}

func TestLoadRoutesTextLines(t *testing.T) {
	path := writeFile(t, "routes.txt", `
# build output routes
/
/somePath

/somePath/nested
/somePath/nested
`)
	routes, err := LoadRoutes(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/somePath", "/somePath/nested", "/somePath/nested"}, routes)
}

func TestLoadRoutesYAML(t *testing.T) {
	path := writeFile(t, "routes.yaml", "- /\n- /docs\n")
	routes, err := LoadRoutes(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/docs"}, routes)
}

func TestLoadRoutesMissingFile(t *testing.T) {
	_, err := LoadRoutes(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, pluginerrors.IsCategory(err, pluginerrors.CategoryRoutes))
}
