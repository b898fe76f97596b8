package analyzer

import (
	"github.com/ppiankov/i18nspectre/internal/textspan"
)

// Kind is the syntax-tree category a finding was classified from.
type Kind string

const (
	KindText      Kind = "text"
	KindAttribute Kind = "attribute"
	KindLiteral   Kind = "literal"
	KindTemplate  Kind = "template"
)

// AttributePolicy selects how attribute values are filtered.
type AttributePolicy int

const (
	// SkipNoAttributes reports every literal attribute value.
	SkipNoAttributes AttributePolicy = iota
	// SkipAllAttributes drops every attribute finding.
	SkipAllAttributes
	// SkipNamedAttributes drops attributes whose resolved name is listed.
	SkipNamedAttributes
)

// Options is the immutable configuration snapshot for one run. Constructed
// once from CLI input and never mutated during traversal.
type Options struct {
	Attributes      AttributePolicy
	AttributeNames  map[string]struct{}
	SkipText        bool
	SkipPatterns    []string
	SkipFiles       []string
	MinLength       int
	IncludeLiteral  bool
	IncludeTemplate bool
}

// DefaultOptions reports text nodes and attribute values of at least one
// trimmed character, and excludes plain string and template literals.
func DefaultOptions() Options {
	return Options{MinLength: 1}
}

// AttributeSet builds the skip set for SkipNamedAttributes.
func AttributeSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Finding is one reported hardcoded string.
type Finding struct {
	File     string            `json:"file"`
	Kind     Kind              `json:"kind"`
	Value    string            `json:"value"`
	Location textspan.Location `json:"location"`
}
