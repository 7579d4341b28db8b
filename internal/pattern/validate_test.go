package pattern

import (
	"errors"
	"strings"
	"testing"

	"github.com/arrstack/cfpattern/internal/types"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		result  Result
		wantErr error
	}{
		{
			name:    "empty outcome rejected",
			result:  Result{Outcome: OutcomeEmpty},
			wantErr: types.ErrEmptyPattern,
		},
		{
			name: "advisory outcome rejected",
			result: Result{
				Outcome:            OutcomeAdvisory,
				Pattern:            "(?i)^a && (?i)^b",
				PositionalConflict: true,
			},
			wantErr: types.ErrAdvisoryPattern,
		},
		{
			name:   "compiled lookahead accepted",
			result: Result{Outcome: OutcomeCompiled, Pattern: "(?=.*(?i)x264)(?=.*(?i)HEVC).*"},
		},
		{
			name:   "compiled alternation accepted",
			result: Result{Outcome: OutcomeCompiled, Pattern: "(?i)x264|(?i)HEVC"},
		},
		{
			name:   "compiled positional accepted",
			result: Result{Outcome: OutcomeCompiled, Pattern: "(?i)^The.*Remastered$"},
		},
		{
			name:    "malformed user regex rejected",
			result:  Result{Outcome: OutcomeCompiled, Pattern: "x26[45"},
			wantErr: types.ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.result)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePattern_TooLong(t *testing.T) {
	p := strings.Repeat("a", types.MaxPatternLength+1)
	if err := ValidatePattern(p); !errors.Is(err, types.ErrPatternTooLong) {
		t.Errorf("ValidatePattern() error = %v, want ErrPatternTooLong", err)
	}
}
