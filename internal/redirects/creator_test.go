package redirects

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nuke-build-contrib/docusaurus/internal/errors"
)

func TestCreatorRedirects(t *testing.T) {
	routes := []string{"/", "/docs/intro", "/blog"}
	rules, err := creatorRedirects(routes, func(route string) CreatorResult {
		switch route {
		case "/docs/intro":
			return RedirectFrom("/docs")
		case "/blog":
			return RedirectFromAll("/news", "/articles")
		default:
			return NoRedirects()
		}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []RedirectRule{
		{From: "/docs", To: "/docs/intro"},
		{From: "/news", To: "/blog"},
		{From: "/articles", To: "/blog"},
	}
	if !reflect.DeepEqual(rules, want) {
		t.Fatalf("got %v, want %v", rules, want)
	}
}

func TestCreatorInvokedOncePerDistinctRoute(t *testing.T) {
	calls := map[string]int{}
	_, err := creatorRedirects([]string{"/a", "/b", "/a"}, func(route string) CreatorResult {
		calls[route]++
		return NoRedirects()
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls["/a"] != 1 || calls["/b"] != 1 {
		t.Fatalf("expected one invocation per distinct route, got %v", calls)
	}
}

func TestCreatorInvalidResultShape(t *testing.T) {
	// The zero value was not built with a constructor: a programming error in
	// the site configuration, fatal and attributed to the offending route.
	_, err := creatorRedirects([]string{"/page"}, func(string) CreatorResult {
		return CreatorResult{}
	})
	if err == nil {
		t.Fatal("expected error for invalid result shape")
	}
	pe, ok := err.(*errors.PluginError)
	if !ok || pe.Category != errors.CategoryConfig {
		t.Fatalf("expected config-category PluginError, got %#v", err)
	}
	if pe.Context["route"] != "/page" {
		t.Fatalf("error should name the offending route, got %v", pe.Context)
	}
}

func TestCreatorMalformedPathsBatched(t *testing.T) {
	_, err := creatorRedirects([]string{"/a", "/b", "/c"}, func(route string) CreatorResult {
		switch route {
		case "/a":
			return RedirectFrom("https://example.com/a")
		case "/b":
			return RedirectFromAll("//cdn/b", "/b-ok")
		default:
			return RedirectFrom("/c?draft=1")
		}
	})
	if err == nil {
		t.Fatal("expected malformed path error")
	}
	pe, ok := err.(*errors.PluginError)
	if !ok || pe.Category != errors.CategoryValidation {
		t.Fatalf("expected validation-category PluginError, got %#v", err)
	}
	if len(pe.Details) != 3 {
		t.Fatalf("expected all 3 offenders batched, got %d: %v", len(pe.Details), pe.Details)
	}
	msg := err.Error()
	for _, offender := range []string{"https://example.com/a", "//cdn/b", "/c?draft=1"} {
		if !strings.Contains(msg, offender) {
			t.Errorf("error should name %q, got: %s", offender, msg)
		}
	}
}

func TestCheckSitePath(t *testing.T) {
	cases := []struct {
		path string
		ok   bool
	}{
		{"/fine", true},
		{"/fine/nested", true},
		{"/", true},
		{"", false},
		{"relative", false},
		{"//protocol-relative", false},
		{"https://example.com", false},
		{"/query?x=1", false},
		{"/fragment#top", false},
	}
	for _, tc := range cases {
		if _, ok := checkSitePath(tc.path); ok != tc.ok {
			t.Errorf("checkSitePath(%q) ok = %v, want %v", tc.path, ok, tc.ok)
		}
	}
}
