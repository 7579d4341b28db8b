// internal/pattern/compile.go
package pattern

import (
	"strings"

	"github.com/arrstack/cfpattern/internal/types"
)

/*
 * Condition-to-regex compilation.
 *
 * Compiles an ordered condition list plus a combinator into a single
 * pattern for the downstream custom-format matcher. Pure, synchronous
 * and stateless: identical input always yields bit-identical output, so
 * callers may memoize results by value equality.
 *
 * Compilation workflow:
 *   1. Filter to valid conditions (non-empty value, or value-less operator)
 *   2. Map each valid condition to its fragment, preserving input order
 *   3. Single condition: return its fragment unchanged (combinator moot)
 *   4. OR: join fragments with alternation (always composable)
 *   5. AND: feasibility analysis, then positional or lookahead composition
 *
 * Compile never returns an error for any structurally valid input. The
 * three outcomes are Empty (nothing to apply yet), Compiled (executable
 * pattern) and Advisory (" && "-joined diagnostic text plus conflict
 * flags; MUST NOT be treated as regex).
 */

// Outcome classifies a compilation result.
type Outcome int

const (
	// OutcomeEmpty means no valid conditions were supplied. Not an error
	// state; there is simply nothing to apply yet.
	OutcomeEmpty Outcome = iota

	// OutcomeCompiled means Pattern is a syntactically valid expression
	// for a PCRE-like engine with inline (?i) flags and lookaheads.
	OutcomeCompiled

	// OutcomeAdvisory means the requested conjunction cannot be expressed
	// as one pattern; Pattern holds human-readable diagnostic text only.
	OutcomeAdvisory
)

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompiled:
		return "compiled"
	case OutcomeAdvisory:
		return "advisory"
	default:
		return "empty"
	}
}

// Result is the compiler output. Pattern is empty for OutcomeEmpty and
// executable only for OutcomeCompiled. The conflict flags are independent:
// a condition set can be both positionally infeasible and mixed-case, and
// the caller renders guidance for each flag separately.
type Result struct {
	Outcome              Outcome
	Pattern              string
	PositionalConflict   bool
	MixedCaseSensitivity bool
}

// Appliable reports whether Pattern may be committed to persisted
// configuration. Callers must gate every apply action on this.
func (r Result) Appliable() bool {
	return r.Outcome == OutcomeCompiled
}

// Compile derives a single pattern from the ordered condition list and
// combinator choice. See the package comment for outcome semantics.
func Compile(conditions []types.Condition, combinator types.Combinator) Result {
	valid := filterValid(conditions)
	if len(valid) == 0 {
		return Result{Outcome: OutcomeEmpty}
	}

	fragments := make([]string, len(valid))
	for i, c := range valid {
		fragments[i] = conditionFragment(c)
	}

	// A single condition is its own pattern; the combinator is irrelevant
	// and no conflict is possible.
	if len(valid) == 1 {
		return Result{Outcome: OutcomeCompiled, Pattern: fragments[0]}
	}

	if combinator == types.CombinatorAnd {
		return compileAnd(valid, fragments)
	}

	// Alternation is unconditionally composable: each branch's anchors and
	// inline flags are scoped to that branch.
	return Result{Outcome: OutcomeCompiled, Pattern: strings.Join(fragments, "|")}
}

// filterValid drops unpopulated conditions, preserving input order.
func filterValid(conditions []types.Condition) []types.Condition {
	valid := make([]types.Condition, 0, len(conditions))
	for _, c := range conditions {
		if c.Valid() {
			valid = append(valid, c)
		}
	}
	return valid
}
