// Package types provides domain models shared across cfpattern components.
//
// Zero-dependency design: types.go, operators.go and errors.go use only the
// standard library so any package can import them without pulling in the
// service stack. ID utilities in ids.go import uuid but are isolated for
// selective inclusion.
package types

import "time"

// Condition is one field/operator/value/case-sensitivity tuple supplied by
// the visual condition builder. Field names the release metadata attribute
// for display purposes only; it never affects compilation.
type Condition struct {
	ID            string   `json:"id"`
	Field         string   `json:"field"`
	Operator      Operator `json:"operator"`
	Value         string   `json:"value"`
	CaseSensitive bool     `json:"caseSensitive"`
}

// Valid reports whether the condition participates in compilation: its
// operator is known and either carries a value or needs none. Invalid
// conditions are silently excluded by the compiler, never errors.
func (c Condition) Valid() bool {
	if !c.Operator.Known() {
		return false
	}
	return c.Value != "" || !c.Operator.RequiresValue()
}

// CustomFormat is a named, scored matching rule for release prioritization.
// Pattern holds accepted compiler output; only compiled (non-advisory)
// patterns may ever be promoted into a CustomFormat.
type CustomFormat struct {
	FormatID  FormatID  `json:"formatId"`
	Name      string    `json:"name"`
	Pattern   string    `json:"pattern"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// Resource limits enforced at the API boundary. The compiler itself never
// rejects input; limits keep request handling and storage bounded.
const (
	// MaxConditions limits conditions per compile request.
	// 64 conditions is far beyond any sane builder session while keeping
	// worst-case pattern assembly trivially cheap.
	MaxConditions = 64

	// MaxValueLength limits a single condition value.
	// 256 chars covers release-name substrings and hand-written regexes.
	MaxValueLength = 256

	// MaxFieldLength limits the display-only field name.
	MaxFieldLength = 64

	// MaxNameLength limits custom format names.
	MaxNameLength = 128

	// MaxPatternLength caps stored patterns. Generous headroom over
	// MaxConditions * MaxValueLength after escaping and fragment syntax.
	MaxPatternLength = 64 * 1024
)
