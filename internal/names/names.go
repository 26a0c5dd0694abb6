package names

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Formatter renders raw catalogue author strings into display form.
// Catalogue records store authors as "surname, given name" in normalized
// lowercase; display wants "Given Name Surname" with title casing
// appropriate to the catalogue language.
type Formatter struct {
	tag language.Tag
}

// NewFormatter creates a Formatter casing for the given language.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{tag: tag}
}

// Format reorders and title-cases one raw author string. Unparseable
// input is title-cased as-is; Format never fails.
func (f *Formatter) Format(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	if last, first, ok := strings.Cut(name, ","); ok {
		name = strings.Join(strings.Fields(first+" "+last), " ")
	}
	// cases.Caser is stateful, so build one per call rather than sharing
	return cases.Title(f.tag).String(name)
}
