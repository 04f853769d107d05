package assets

import (
	_ "embed"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	CategoryLogos        = "logos"
	CategoryHero         = "hero"
	CategoryFeatures     = "features"
	CategoryTestimonials = "testimonials"
	CategoryTeam         = "team"
	CategoryPartners     = "partners"
	CategoryProjects     = "projects"
	CategoryBanners      = "banners"
)

// Categories lists every category the registry accepts, in display order.
var Categories = []string{
	CategoryLogos,
	CategoryHero,
	CategoryFeatures,
	CategoryTestimonials,
	CategoryTeam,
	CategoryPartners,
	CategoryProjects,
	CategoryBanners,
}

//go:embed assets.yaml
var manifest []byte

// Registry maps a category and logical name to a resolved URL. It is read-only
// once built and safe for concurrent use.
type Registry struct {
	entries map[string]map[string]string
}

// Default builds the registry from the embedded manifest.
func Default(baseURL string) (*Registry, error) {
	return Load(manifest, baseURL)
}

// Load parses a YAML manifest of category -> name -> path. Relative paths are
// resolved against baseURL when one is given.
func Load(raw []byte, baseURL string) (*Registry, error) {
	var doc map[string]map[string]string
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse asset manifest: %w", err)
	}

	var base *url.URL
	if strings.TrimSpace(baseURL) != "" {
		parsed, err := url.Parse(strings.TrimSpace(baseURL))
		if err != nil {
			return nil, fmt.Errorf("parse asset base url: %w", err)
		}
		base = parsed
	}

	entries := make(map[string]map[string]string, len(Categories))
	for _, category := range Categories {
		entries[category] = map[string]string{}
	}
	for category, names := range doc {
		if _, ok := entries[category]; !ok {
			return nil, fmt.Errorf("asset manifest: unknown category %q", category)
		}
		for name, path := range names {
			resolved, err := resolve(base, path)
			if err != nil {
				return nil, fmt.Errorf("asset %s/%s: %w", category, name, err)
			}
			entries[category][name] = resolved
		}
	}
	return &Registry{entries: entries}, nil
}

func resolve(base *url.URL, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", err
	}
	if base == nil || ref.IsAbs() {
		return ref.String(), nil
	}
	return base.ResolveReference(ref).String(), nil
}

func (r *Registry) Lookup(category, name string) (string, bool) {
	u, ok := r.entries[category][name]
	return u, ok
}

// MustLookup panics on a missing entry. Use it for names fixed at compile time.
func (r *Registry) MustLookup(category, name string) string {
	u, ok := r.Lookup(category, name)
	if !ok {
		panic(fmt.Sprintf("assets: no %q in category %q", name, category))
	}
	return u
}

// Category returns a copy of one category, or nil if it is unknown.
func (r *Registry) Category(category string) map[string]string {
	names, ok := r.entries[category]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(names))
	for k, v := range names {
		out[k] = v
	}
	return out
}

func (r *Registry) All() map[string]map[string]string {
	out := make(map[string]map[string]string, len(r.entries))
	for category := range r.entries {
		out[category] = r.Category(category)
	}
	return out
}

// URLs returns every distinct URL, sorted.
func (r *Registry) URLs() []string {
	seen := map[string]struct{}{}
	for _, names := range r.entries {
		for _, u := range names {
			seen[u] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}
