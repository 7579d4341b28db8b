// internal/pattern/escape.go
package pattern

import "strings"

// metacharacters is the escape set for user-supplied literals. Pinned
// explicitly rather than delegating to regexp.QuoteMeta: the downstream
// matcher is a PCRE-like engine, and QuoteMeta's set tracks Go's own RE2
// implementation.
const metacharacters = `.*+?^${}()|[]\`

// EscapeLiteral backslash-escapes regex metacharacters so the literal
// matches itself when substituted into a fragment. Applied to every
// operator's value except matches, whose value is user-authored regex.
func EscapeLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		// Metacharacters are all ASCII; UTF-8 continuation bytes never match.
		if strings.IndexByte(metacharacters, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
