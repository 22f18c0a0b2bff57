package selector

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidSelectors is returned by ResolveAll when at least one selector
// was invalid. Per-selector diagnostics are logged before this is returned.
var ErrInvalidSelectors = errors.New("one or more selectors were invalid")

// InvalidError describes a selector that cannot be resolved: bad syntax, an
// unparsable pattern, or an unknown location name.
type InvalidError struct {
	// Spec is the raw selector string as given by the user.
	Spec string
	// Reason explains why the selector is invalid.
	Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid selector %q: %s", e.Spec, e.Reason)
}

// Selector is one parsed auto-attendant selector. The name pattern is
// matched fully anchored against auto-attendant names, optionally scoped to
// a single location.
type Selector struct {
	// Spec is the raw selector string.
	Spec string
	// Location is the location name scope; empty means all locations.
	Location string
	// Pattern is the anchored name pattern.
	Pattern *regexp.Regexp
}

// Parse parses a raw selector of the form "<pattern>" or
// "<location>:<pattern>". More than one ":" separator is invalid.
func Parse(spec string) (*Selector, error) {
	parts := strings.Split(spec, ":")

	var location, pattern string
	switch len(parts) {
	case 1:
		pattern = parts[0]
	case 2:
		location, pattern = parts[0], parts[1]
	default:
		return nil, &InvalidError{Spec: spec, Reason: `at most one ":" separator is allowed`}
	}

	// Anchor the pattern so "aa1" cannot match "aa10".
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, &InvalidError{Spec: spec, Reason: fmt.Sprintf("bad name pattern %q: %v", pattern, err)}
	}

	return &Selector{
		Spec:     spec,
		Location: location,
		Pattern:  re,
	}, nil
}
