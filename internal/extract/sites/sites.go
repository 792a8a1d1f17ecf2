// Package sites maps page URLs to extraction adapters. An adapter is data,
// not code: per field, an ordered list of CSS selectors plus acceptance
// bounds. Adding a site means adding a record here or in the YAML overlay.
package sites

import (
	"strings"

	"goodjob-engine/internal/extract/page"
)

// Chain is one field's ordered locator list. All selectors in the chain
// share the same [Min, Max) acceptance bounds; Max 0 means the default cap.
type Chain struct {
	Selectors []string `yaml:"selectors"`
	Min       int      `yaml:"min"`
	Max       int      `yaml:"max"`
}

// Run probes the page and returns the first qualifying match, or "".
func (c Chain) Run(p *page.Page) string {
	if len(c.Selectors) == 0 {
		return ""
	}
	return p.TrySelectors(c.Selectors, c.Min, c.Max)
}

// Adapter bundles the locator chains for one site family.
type Adapter struct {
	// Name is the recognized site name, used as JobPosting.Source.
	Name string `yaml:"name"`

	// URLContains are lowercased substrings matched against the page URL.
	// An adapter with no patterns matches everything (the generic fallback).
	URLContains []string `yaml:"url_contains"`

	Title       Chain `yaml:"title"`
	Company     Chain `yaml:"company"`
	Location    Chain `yaml:"location"`
	Salary      Chain `yaml:"salary"`
	Description Chain `yaml:"description"`

	// CompanyAlt is retried once when the company chain resolves to the
	// hosting platform's own name.
	CompanyAlt Chain `yaml:"company_alt"`

	// Generic marks the fallback adapter, which gets the body-text
	// description slice when no description block matches.
	Generic bool `yaml:"-"`
}

// Matches reports whether the adapter covers the URL.
func (a Adapter) Matches(rawURL string) bool {
	if len(a.URLContains) == 0 {
		return true
	}
	low := strings.ToLower(rawURL)
	for _, pat := range a.URLContains {
		if strings.Contains(low, pat) {
			return true
		}
	}
	return false
}

// Registry holds adapters in priority order, most specific first, with the
// generic fallback guaranteed last.
type Registry struct {
	adapters []Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: builtin()}
}

// Select returns the first adapter matching the URL. It never fails: the
// generic adapter matches any URL.
func (r *Registry) Select(rawURL string) Adapter {
	for _, a := range r.adapters {
		if a.Matches(rawURL) {
			return a
		}
	}
	// unreachable while the generic adapter is registered; keep the
	// contract total anyway
	return genericAdapter()
}

// Names lists registered adapters in match order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.adapters))
	for _, a := range r.adapters {
		out = append(out, a.Name)
	}
	return out
}
