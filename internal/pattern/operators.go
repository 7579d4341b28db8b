// internal/pattern/operators.go
package pattern

import (
	"github.com/arrstack/cfpattern/internal/types"
)

/*
 * Operator registry: fragment generation per condition operator.
 *
 * Each operator maps to exactly one fragment rule. Literals must already
 * be escaped via EscapeLiteral, except for matches which passes the
 * user-authored regex through verbatim.
 *
 * Case insensitivity is expressed with a single inline (?i) prepended to
 * the fragment, never embedded mid-pattern; the downstream PCRE-like
 * engine scopes it to the rest of the expression. matches, isEmpty and
 * isNotEmpty ignore the case flag entirely.
 */

// Fragment returns the regex fragment for one operator applied to a
// pre-escaped literal. Unknown operators yield an empty fragment; the
// compiler filters those conditions out before dispatch.
func Fragment(op types.Operator, literal string, caseSensitive bool) string {
	flag := ""
	if !caseSensitive {
		flag = "(?i)"
	}

	switch op {
	case types.OpContains:
		return flag + literal
	case types.OpNotContains:
		return flag + "^(?!.*" + literal + ").*$"
	case types.OpStartsWith:
		return flag + "^" + literal
	case types.OpEndsWith:
		return flag + literal + "$"
	case types.OpEquals:
		return flag + "^" + literal + "$"
	case types.OpMatches:
		// Raw passthrough; the value is already a regex and carries its
		// own flags if the author wants them.
		return literal
	case types.OpWordBoundary:
		return flag + `\b` + literal + `\b`
	case types.OpIsEmpty:
		return "^$"
	case types.OpIsNotEmpty:
		return ".+"
	default:
		return ""
	}
}

// conditionFragment escapes the condition value as the operator requires
// and dispatches to the registry.
func conditionFragment(c types.Condition) string {
	if c.Operator == types.OpMatches {
		return Fragment(c.Operator, c.Value, c.CaseSensitive)
	}
	return Fragment(c.Operator, EscapeLiteral(c.Value), c.CaseSensitive)
}
