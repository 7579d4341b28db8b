// internal/pattern/and.go
package pattern

import (
	"strings"

	"github.com/arrstack/cfpattern/internal/types"
)

/*
 * AND composition feasibility and assembly.
 *
 * Conjunction of regex fragments is not generally sound: positional
 * anchors (^, $) do not compose inside lookaheads, and a single inline
 * (?i) cannot represent heterogeneous case sensitivity. The classifier
 * decides between three paths:
 *
 *   - positional composition: at most one startsWith and one endsWith,
 *     any number of contains, assembled left to right into one anchored
 *     pattern (^start.*mid.*end$)
 *   - lookahead composition: no positional or anchoring operators at all,
 *     each fragment wrapped in (?=.*p) expressing unordered conjunction
 *   - advisory fallback: the request is infeasible; fragments are joined
 *     with " && " for display and the conflict flags say why
 *
 * Infeasible combinations:
 *   - duplicate startsWith, endsWith or equals (two different prefixes
 *     cannot both hold)
 *   - equals alongside startsWith/endsWith/contains (equals already pins
 *     the whole string)
 *   - notContains or isEmpty anywhere in a multi-condition AND (their
 *     fragments carry their own ^/$ anchors)
 *   - wordBoundary/matches/isNotEmpty mixed into a positional AND (no
 *     slot for them in the anchored assembly)
 *
 * Scoped inline flags like (?i:...) are not assumed portable across the
 * downstream engine, so heterogeneous case sensitivity always falls back
 * to advisory.
 */

// compileAnd composes a conjunction of two or more valid conditions.
// fragments[i] is the pre-built fragment of conds[i].
func compileAnd(conds []types.Condition, fragments []string) Result {
	var starts, ends, contains []types.Condition
	equalsCount := 0
	anchoring := false
	other := false

	for _, c := range conds {
		switch c.Operator {
		case types.OpStartsWith:
			starts = append(starts, c)
		case types.OpEndsWith:
			ends = append(ends, c)
		case types.OpEquals:
			equalsCount++
		case types.OpContains:
			contains = append(contains, c)
		case types.OpNotContains, types.OpIsEmpty:
			anchoring = true
		default:
			// wordBoundary, matches, isNotEmpty
			other = true
		}
	}

	positional := len(starts)+len(ends)+equalsCount > 0

	conflict := len(starts) > 1 || len(ends) > 1 || equalsCount > 1
	if equalsCount > 0 && (len(starts) > 0 || len(ends) > 0 || len(contains) > 0) {
		conflict = true
	}
	if anchoring {
		conflict = true
	}
	if other && positional {
		conflict = true
	}

	mixed := mixedCaseSensitivity(conds)

	if conflict || mixed {
		return Result{
			Outcome:              OutcomeAdvisory,
			Pattern:              strings.Join(fragments, " && "),
			PositionalConflict:   conflict,
			MixedCaseSensitivity: mixed,
		}
	}

	if positional {
		// Feasibility guarantees zero or one startsWith/endsWith here and
		// no equals (it cannot coexist with anything at this point).
		return Result{
			Outcome: OutcomeCompiled,
			Pattern: composePositional(starts, ends, contains, conds[0].CaseSensitive),
		}
	}

	return Result{Outcome: OutcomeCompiled, Pattern: composeLookahead(fragments)}
}

// composePositional assembles one anchored pattern from at most one
// startsWith, at most one endsWith and any number of contains conditions.
// Case sensitivity is uniform by this point, so a single global (?i)
// covers every literal.
func composePositional(starts, ends, contains []types.Condition, caseSensitive bool) string {
	var b strings.Builder
	if !caseSensitive {
		b.WriteString("(?i)")
	}
	b.WriteString("^")
	if len(starts) > 0 {
		b.WriteString(EscapeLiteral(starts[0].Value))
	}
	for _, c := range contains {
		b.WriteString(".*")
		b.WriteString(EscapeLiteral(c.Value))
	}
	if len(ends) > 0 {
		b.WriteString(".*")
		b.WriteString(EscapeLiteral(ends[0].Value))
		b.WriteString("$")
	} else {
		b.WriteString(".*$")
	}
	return b.String()
}

// composeLookahead expresses an unordered conjunction of independent
// substring constraints: each fragment becomes (?=.*p), and a trailing .*
// consumes the subject.
func composeLookahead(fragments []string) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString("(?=.*")
		b.WriteString(f)
		b.WriteString(")")
	}
	b.WriteString(".*")
	return b.String()
}

// mixedCaseSensitivity reports whether the participating conditions
// disagree on case sensitivity. Judged over every condition's flag,
// including operators that ignore it, matching the data model rather
// than special-casing.
func mixedCaseSensitivity(conds []types.Condition) bool {
	first := conds[0].CaseSensitive
	for _, c := range conds[1:] {
		if c.CaseSensitive != first {
			return true
		}
	}
	return false
}
