package types

import "errors"

// Sentinel errors for cfpattern operations.
var (
	// ErrTooManyConditions indicates a request exceeds MaxConditions.
	ErrTooManyConditions = errors.New("too many conditions")

	// ErrValueTooLong indicates a condition value exceeds MaxValueLength.
	ErrValueTooLong = errors.New("condition value too long")

	// ErrFieldTooLong indicates a condition field name exceeds MaxFieldLength.
	ErrFieldTooLong = errors.New("condition field name too long")

	// ErrNameTooLong indicates a custom format name exceeds MaxNameLength.
	ErrNameTooLong = errors.New("custom format name too long")

	// ErrEmptyName indicates a custom format with no name.
	ErrEmptyName = errors.New("custom format name is empty")

	// ErrUnknownOperator indicates an operator outside the closed registry.
	ErrUnknownOperator = errors.New("unknown condition operator")

	// ErrUnknownCombinator indicates a combinator other than AND/OR.
	ErrUnknownCombinator = errors.New("unknown combinator")

	// ErrEmptyPattern indicates an attempt to apply a compilation with no
	// valid conditions. Not a compile failure; there is nothing to apply yet.
	ErrEmptyPattern = errors.New("no pattern to apply")

	// ErrAdvisoryPattern indicates an attempt to apply advisory diagnostic
	// text as if it were an executable pattern.
	ErrAdvisoryPattern = errors.New("advisory pattern is not appliable")

	// ErrInvalidPattern indicates a pattern the downstream engine would
	// reject.
	ErrInvalidPattern = errors.New("pattern is not valid regex")

	// ErrPatternTooLong indicates a pattern exceeds MaxPatternLength.
	ErrPatternTooLong = errors.New("pattern exceeds maximum length")

	// ErrFormatNotFound indicates a custom format lookup miss.
	ErrFormatNotFound = errors.New("custom format not found")
)
