package pattern

import (
	"fmt"
	"regexp"
)

// Kind describes how a capture's matched text is interpreted.
type Kind int

const (
	// KindString leaves the matched text as-is.
	KindString Kind = iota
	// KindInt parses the matched text as a signed base-10 integer.
	KindInt
	// KindUint parses the matched text as an unsigned base-10 integer.
	KindUint
	// KindFloat parses the matched text as a decimal number.
	KindFloat
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// varMatcher validates a single capture value.
// *regexp.Regexp satisfies this interface.
type varMatcher interface {
	MatchString(string) bool
	String() string
}

// lengthMatcher wraps a regexp with an additional maximum length constraint.
type lengthMatcher struct {
	re     *regexp.Regexp
	maxLen int
}

func (m *lengthMatcher) MatchString(s string) bool {
	return len(s) <= m.maxLen && m.re.MatchString(s)
}

func (m *lengthMatcher) String() string {
	return m.re.String()
}

// kindSpec holds a kind's regexp fragment, its value interpretation, and
// a pre-compiled validation matcher.
type kindSpec struct {
	pattern string
	kind    Kind
	// rest marks a kind that consumes the remainder of the path and must
	// therefore be the final element of a template.
	rest bool
	// maxLen caps the matched text length for kinds whose limit a regular
	// expression cannot express. Zero means unlimited.
	maxLen  int
	matcher varMatcher
}

// builtinKinds maps kind names to their compiled specs.
// Used in capture definitions: {name:kind}.
var builtinKinds = func() map[string]kindSpec {
	raw := map[string]struct {
		pattern string
		kind    Kind
		rest    bool
		maxLen  int
	}{
		"int":      {pattern: `-?[0-9]+`, kind: KindInt},
		"uint":     {pattern: `[0-9]+`, kind: KindUint},
		"float":    {pattern: `-?[0-9]*\.?[0-9]+`, kind: KindFloat},
		"uuid":     {pattern: `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`, kind: KindString},
		"slug":     {pattern: `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`, kind: KindString},
		"alpha":    {pattern: `[a-zA-Z]+`, kind: KindString},
		"alphanum": {pattern: `[a-zA-Z0-9]+`, kind: KindString},
		"date":     {pattern: `[0-9]{4}-[0-9]{2}-[0-9]{2}`, kind: KindString},
		"hex":      {pattern: `[0-9a-fA-F]+`, kind: KindString},
		// RFC 1035/1123: labels 1-63 chars, total up to 253 chars.
		"domain": {pattern: `(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`, kind: KindString, maxLen: 253},
		"path":   {pattern: `.+`, kind: KindString, rest: true},
	}

	m := make(map[string]kindSpec, len(raw))
	for name, spec := range raw {
		re := regexp.MustCompile(fmt.Sprintf("^%s$", spec.pattern))

		var matcher varMatcher = re
		if spec.maxLen > 0 {
			matcher = &lengthMatcher{re: re, maxLen: spec.maxLen}
		}

		m[name] = kindSpec{
			pattern: spec.pattern,
			kind:    spec.kind,
			rest:    spec.rest,
			maxLen:  spec.maxLen,
			matcher: matcher,
		}
	}

	return m
}()

// expandKind returns the spec for a kind name. If the name is not a known
// kind, the input is treated as a raw regular expression and the returned
// spec has a nil matcher (caller must compile).
func expandKind(spec string) kindSpec {
	if k, ok := builtinKinds[spec]; ok {
		return k
	}

	return kindSpec{pattern: spec, kind: KindString}
}
