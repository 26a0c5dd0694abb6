package locale

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// Resolver maps (base index, locale) onto the physical locale-qualified
// index name. It replaces ambient global locale configuration with an
// explicit dependency; retrieval code receives one and never touches
// process-global state.
type Resolver struct {
	def       string
	supported map[string]bool
}

// NewResolver creates a Resolver. The default locale is used whenever a
// caller omits the locale or asks for an unsupported one; it must itself
// be in the supported set.
func NewResolver(def string, supported []string) (*Resolver, error) {
	if def == "" {
		return nil, fmt.Errorf("default locale is required")
	}
	norm, err := normalize(def)
	if err != nil {
		return nil, fmt.Errorf("default locale %q: %w", def, err)
	}

	set := map[string]bool{norm: true}
	for _, loc := range supported {
		n, err := normalize(loc)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", loc, err)
		}
		set[n] = true
	}
	return &Resolver{def: norm, supported: set}, nil
}

// Current returns the ambient default locale.
func (r *Resolver) Current() string { return r.def }

// Resolve normalizes loc and falls back to the default when loc is empty,
// malformed or not configured.
func (r *Resolver) Resolve(loc string) string {
	if loc == "" {
		return r.def
	}
	norm, err := normalize(loc)
	if err != nil || !r.supported[norm] {
		return r.def
	}
	return norm
}

// IndexName returns the locale-qualified index for the given base name.
func (r *Resolver) IndexName(base, loc string) string {
	return base + "_" + r.Resolve(loc)
}

// Supported returns the configured locales in stable order.
func (r *Resolver) Supported() []string {
	locs := make([]string, 0, len(r.supported))
	for loc := range r.supported {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	return locs
}

// normalize reduces a locale string to its primary language subtag
// ("SK" → "sk", "en-US" → "en").
func normalize(loc string) (string, error) {
	tag, err := language.Parse(loc)
	if err != nil {
		return "", err
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", fmt.Errorf("no language subtag")
	}
	return base.String(), nil
}
