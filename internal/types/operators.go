package types

// Operator identifies one fragment-generation rule in the compiler's
// operator registry. The set is closed; every consumer switches
// exhaustively over these values.
type Operator string

// Condition operators understood by the visual condition builder.
const (
	// Substring operators
	OpContains    Operator = "contains"
	OpNotContains Operator = "notContains"

	// Positional operators pin their literal to the start or end of the
	// release name.
	OpStartsWith Operator = "startsWith"
	OpEndsWith   Operator = "endsWith"
	OpEquals     Operator = "equals"

	// OpMatches passes a user-authored regex through verbatim.
	OpMatches Operator = "matches"

	// OpWordBoundary matches the literal delimited by \b word boundaries.
	OpWordBoundary Operator = "wordBoundary"

	// Value-less operators
	OpIsEmpty    Operator = "isEmpty"
	OpIsNotEmpty Operator = "isNotEmpty"
)

// operatorKeywords maps keyword strings to Operator values.
var operatorKeywords = map[string]Operator{
	"contains":     OpContains,
	"notContains":  OpNotContains,
	"startsWith":   OpStartsWith,
	"endsWith":     OpEndsWith,
	"equals":       OpEquals,
	"matches":      OpMatches,
	"wordBoundary": OpWordBoundary,
	"isEmpty":      OpIsEmpty,
	"isNotEmpty":   OpIsNotEmpty,
}

// ParseOperator parses a string into an Operator.
// Returns the operator and true if valid, or empty and false if invalid.
func ParseOperator(s string) (Operator, bool) {
	op, ok := operatorKeywords[s]
	return op, ok
}

// Known reports whether the operator is part of the closed registry.
func (op Operator) Known() bool {
	_, ok := operatorKeywords[string(op)]
	return ok
}

// RequiresValue reports whether the operator needs a condition value.
// isEmpty and isNotEmpty match on the field alone.
func (op Operator) RequiresValue() bool {
	switch op {
	case OpIsEmpty, OpIsNotEmpty:
		return false
	default:
		return true
	}
}

// Positional reports whether the operator anchors its literal to a fixed
// position. At most one of each positional operator can participate in a
// single AND composition.
func (op Operator) Positional() bool {
	switch op {
	case OpStartsWith, OpEndsWith, OpEquals:
		return true
	default:
		return false
	}
}

// Anchoring reports whether the operator's fragment carries its own ^/$
// anchors and therefore cannot be embedded in any AND composition.
func (op Operator) Anchoring() bool {
	switch op {
	case OpNotContains, OpIsEmpty:
		return true
	default:
		return false
	}
}

// Combinator is the boolean logic joining multiple conditions.
type Combinator string

// Combinators understood by the compiler.
const (
	CombinatorAnd Combinator = "AND"
	CombinatorOr  Combinator = "OR"
)

// combinatorKeywords maps keyword strings to Combinator values.
var combinatorKeywords = map[string]Combinator{
	"AND": CombinatorAnd,
	"OR":  CombinatorOr,
	// Lowercase versions
	"and": CombinatorAnd,
	"or":  CombinatorOr,
}

// ParseCombinator parses a string into a Combinator.
// Returns the combinator and true if valid, or empty and false if invalid.
func ParseCombinator(s string) (Combinator, bool) {
	c, ok := combinatorKeywords[s]
	return c, ok
}
