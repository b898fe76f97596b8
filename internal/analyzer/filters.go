package analyzer

import (
	"strings"
	"unicode/utf8"
)

// The predicates below are pure: they see one candidate value plus the
// options snapshot and decide keep or drop, independent of traversal order.

func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// KeepText decides whether a JSX text node is a finding.
func (o Options) KeepText(value string) bool {
	if o.SkipText {
		return false
	}
	return trimmedLen(value) >= o.MinLength
}

// KeepAttribute decides whether a literal attribute value is a finding.
// name is the resolved attribute name, namespace:name for namespaced
// attributes.
func (o Options) KeepAttribute(name, value string) bool {
	switch o.Attributes {
	case SkipAllAttributes:
		return false
	case SkipNamedAttributes:
		if _, skip := o.AttributeNames[name]; skip {
			return false
		}
	}
	return trimmedLen(value) >= o.MinLength
}

// KeepLiteral decides whether a plain string literal outside JSX and import
// or type positions is a finding. Excluded unless opted in.
func (o Options) KeepLiteral(value string) bool {
	return o.IncludeLiteral && trimmedLen(value) >= o.MinLength
}

// KeepTemplate decides whether a template literal is a finding. No length
// filter applies.
func (o Options) KeepTemplate() bool {
	return o.IncludeTemplate
}

// SkipFile reports whether a file name matches the skip-files substring
// policy.
func (o Options) SkipFile(name string) bool {
	for _, pattern := range o.SkipFiles {
		if pattern != "" && strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}

// Vetoed applies the skip-pattern check to a resolved excerpt. It runs after
// span resolution because patterns match full rendered line content, not
// just the value inside the span.
func (o Options) Vetoed(excerpt string) bool {
	for _, pattern := range o.SkipPatterns {
		if pattern != "" && strings.Contains(excerpt, pattern) {
			return true
		}
	}
	return false
}
