// internal/pattern/validate.go
package pattern

import (
	"fmt"

	"github.com/dlclark/regexp2"

	"github.com/arrstack/cfpattern/internal/types"
)

// Validate gates a compilation result before it may be applied: only a
// compiled outcome passes, and its pattern must survive a PCRE-style
// syntax check. Advisory text is rejected outright rather than guessed at.
func Validate(r Result) error {
	switch r.Outcome {
	case OutcomeEmpty:
		return types.ErrEmptyPattern
	case OutcomeAdvisory:
		return types.ErrAdvisoryPattern
	}
	return ValidatePattern(r.Pattern)
}

// ValidatePattern syntax-checks a pattern against a PCRE-compatible
// engine. The stdlib regexp package (RE2) cannot parse the (?=...)
// lookaheads the AND combinator emits, so regexp2 stands in for the
// downstream matcher here.
func ValidatePattern(p string) error {
	if p == "" {
		return types.ErrEmptyPattern
	}
	if len(p) > types.MaxPatternLength {
		return types.ErrPatternTooLong
	}
	if _, err := regexp2.Compile(p, regexp2.None); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidPattern, err)
	}
	return nil
}
