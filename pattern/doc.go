// Package pattern implements compiled path templates that both match
// request paths and format them back from values (reverse routing).
//
// A template is a URL path with captures enclosed in curly braces:
//
//	p := pattern.MustCompile("/users/{name}/posts/{id:int}")
//
// Match extracts typed values from a concrete path, Format rebuilds a
// concrete path from values:
//
//	vals, ok := p.Match("/users/alice/posts/42")
//	// vals["name"].String() == "alice", vals["id"].Int() == 42
//
//	path, err := p.Format(pattern.Values{
//	    "name": pattern.String("alice"),
//	    "id":   pattern.Int(42),
//	})
//	// path == "/users/alice/posts/42"
//
// # Capture Kinds
//
// A capture is {name} for any non-empty path segment, or {name:kind}
// where kind names one of the built-in kinds:
//
//	int      - signed integer, value converted to int64 (e.g. 42, -7)
//	uint     - unsigned integer, value converted to uint64 (e.g. 42)
//	float    - decimal number, value converted to float64 (e.g. 3.14, .5)
//	uuid     - RFC 4122 UUID (e.g. 550e8400-e29b-41d4-a716-446655440000)
//	slug     - URL-safe slug (e.g. my-post-title)
//	alpha    - alphabetic characters (e.g. hello)
//	alphanum - alphanumeric characters (e.g. abc123)
//	date     - ISO 8601 date (e.g. 2024-01-15)
//	hex      - hexadecimal string (e.g. deadBEEF)
//	domain   - domain name per RFC 1123 (e.g. sub.example.com)
//	path     - the remainder of the request path, slashes included
//
// int, uint and float are converting kinds: the matched text is parsed
// during Match and handlers read it through Value.Int, Value.Uint or
// Value.Float without re-parsing. A segment that looks numeric but
// overflows the Go type does not match. The remaining kinds validate
// shape only and stay string-valued.
//
// If the text after the colon is not a known kind name, it is treated
// as a raw regular expression and the value stays a string:
//
//	pattern.MustCompile("/items/{code:[A-Z]{3}[0-9]+}")
//
// # Anchoring
//
// Templates match the whole path. The one exception is a trailing
// {name:path} capture, which consumes everything left of the path and
// must be the final element of the template:
//
//	pattern.MustCompile("/static/{file:path}")
//
// # Formatting
//
// Format validates every value against its capture before substituting,
// so a formatted path is guaranteed to match the template it came from.
// Missing values and values that fail validation return an error.
package pattern
