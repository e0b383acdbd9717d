package pattern

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a compiled path template. A Pattern is safe for concurrent
// use by multiple goroutines.
type Pattern struct {
	// template is the original template string.
	template string
	// regexp is the compiled matching expression, anchored at both ends.
	regexp *regexp.Regexp
	// reverse is the template with %s placeholders for Sprintf.
	reverse string
	// captures are the template's captures in order.
	captures []capture
}

// capture is one {name} or {name:kind} element of a template.
type capture struct {
	name    string
	kind    Kind
	maxLen  int
	matcher varMatcher
}

// Compile parses a path template and returns a compiled Pattern.
func Compile(template string) (*Pattern, error) {
	idxs, err := braceIndices(template)
	if err != nil {
		return nil, err
	}

	var (
		pattern  bytes.Buffer
		reverse  bytes.Buffer
		captures []capture
		end      int
	)

	pattern.WriteByte('^')

	for i := 0; i < len(idxs); i += 2 {
		// Write the raw text between captures.
		raw := template[end:idxs[i]]
		end = idxs[i+1]

		// Extract capture name and optional kind.
		parts := strings.SplitN(template[idxs[i]+1:end-1], ":", 2)
		name := parts[0]
		spec := kindSpec{pattern: "[^/]+", kind: KindString}
		if len(parts) == 2 {
			spec = expandKind(parts[1])
		}

		if name == "" {
			return nil, fmt.Errorf("pattern: missing name in %q from %q", template[idxs[i]:end], template)
		}
		if spec.rest && end != len(template) {
			return nil, fmt.Errorf("pattern: %q must be the final element of %q", template[idxs[i]:end], template)
		}

		// Build the matching expression and the reverse template.
		fmt.Fprintf(&pattern, "%s(%s)", regexp.QuoteMeta(raw), spec.pattern)
		reverse.WriteString(strings.ReplaceAll(raw, "%", "%%"))
		reverse.WriteString("%s")

		matcher := spec.matcher
		if matcher == nil {
			var err error
			matcher, err = compileRegexp(fmt.Sprintf("^%s$", spec.pattern))
			if err != nil {
				return nil, fmt.Errorf("pattern: invalid expression %q in capture %q: %w", spec.pattern, name, err)
			}
		}

		captures = append(captures, capture{name: name, kind: spec.kind, maxLen: spec.maxLen, matcher: matcher})
	}

	// Write the remaining literal text after the last capture.
	raw := template[end:]
	pattern.WriteString(regexp.QuoteMeta(raw))
	reverse.WriteString(strings.ReplaceAll(raw, "%", "%%"))
	pattern.WriteByte('$')

	if err := checkDuplicateCaptures(template, captures); err != nil {
		return nil, err
	}

	re, err := compileRegexp(pattern.String())
	if err != nil {
		return nil, err
	}

	return &Pattern{
		template: template,
		regexp:   re,
		reverse:  reverse.String(),
		captures: captures,
	}, nil
}

// MustCompile is like Compile but panics if the template cannot be
// parsed. It simplifies safe initialization of package-level patterns.
func MustCompile(template string) *Pattern {
	p, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return p
}

// Match matches path against the template. On success it returns the
// extracted capture values. Text that matches a converting capture's
// expression but overflows the Go type, or exceeds a kind's length
// limit, is treated as a non-match.
func (p *Pattern) Match(path string) (Values, bool) {
	matches := p.regexp.FindStringSubmatch(path)
	if matches == nil {
		return nil, false
	}

	vals := make(Values, len(p.captures))
	for i, c := range p.captures {
		text := matches[i+1]
		if c.maxLen > 0 && len(text) > c.maxLen {
			return nil, false
		}
		val, err := convert(c.kind, text)
		if err != nil {
			return nil, false
		}
		vals[c.name] = val
	}

	return vals, true
}

// Format builds a concrete path from the template and the given values.
// Every capture must be present in values, and every value must pass its
// capture's validation, so a formatted path always matches the template
// it came from.
func (p *Pattern) Format(values Values) (string, error) {
	args := make([]interface{}, len(p.captures))
	for i, c := range p.captures {
		v, ok := values[c.name]
		if !ok {
			return "", fmt.Errorf("pattern: missing value for capture %q", c.name)
		}
		text := v.String()
		if !c.matcher.MatchString(text) {
			return "", fmt.Errorf("pattern: value %q for capture %q doesn't match, expected %q", text, c.name, c.matcher.String())
		}
		args[i] = text
	}

	return fmt.Sprintf(p.reverse, args...), nil
}

// Template returns the original template string.
func (p *Pattern) Template() string {
	return p.template
}

// Keys returns the capture names in template order.
func (p *Pattern) Keys() []string {
	keys := make([]string, len(p.captures))
	for i, c := range p.captures {
		keys[i] = c.name
	}
	return keys
}

// braceIndices returns the start and end+1 indices of each top-level
// {...} pair in s. Returns an error if braces are unbalanced.
func braceIndices(s string) ([]int, error) {
	var (
		idxs  []int
		level int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if level++; level == 1 {
				idxs = append(idxs, i)
			}
		case '}':
			if level--; level == 0 {
				idxs = append(idxs, i+1)
			} else if level < 0 {
				return nil, fmt.Errorf("pattern: unbalanced braces in %q", s)
			}
		}
	}
	if level != 0 {
		return nil, fmt.Errorf("pattern: unbalanced braces in %q", s)
	}
	return idxs, nil
}

// checkDuplicateCaptures returns an error if any capture name is repeated.
func checkDuplicateCaptures(template string, captures []capture) error {
	seen := make(map[string]bool, len(captures))
	for _, c := range captures {
		if seen[c.name] {
			return fmt.Errorf("pattern: duplicated capture %q in %q", c.name, template)
		}
		seen[c.name] = true
	}
	return nil
}
