package pattern

import (
	"testing"

	"github.com/arrstack/cfpattern/internal/types"
)

// Feasibility matrix for AND composition. Positional assembly, lookahead
// assembly and every advisory fallback class.
func TestCompileAnd_Feasibility(t *testing.T) {
	tests := []struct {
		name         string
		conds        []types.Condition
		wantOutcome  Outcome
		wantPattern  string
		wantConflict bool
		wantMixed    bool
	}{
		{
			name: "starts and ends",
			conds: []types.Condition{
				cond(types.OpStartsWith, "The", false),
				cond(types.OpEndsWith, "Remastered", false),
			},
			wantOutcome: OutcomeCompiled,
			wantPattern: "(?i)^The.*Remastered$",
		},
		{
			name: "starts contains ends",
			conds: []types.Condition{
				cond(types.OpStartsWith, "The", false),
				cond(types.OpContains, "1080p", false),
				cond(types.OpEndsWith, "Remastered", false),
			},
			wantOutcome: OutcomeCompiled,
			wantPattern: "(?i)^The.*1080p.*Remastered$",
		},
		{
			name: "starts only plus contains",
			conds: []types.Condition{
				cond(types.OpStartsWith, "The", true),
				cond(types.OpContains, "1080p", true),
			},
			wantOutcome: OutcomeCompiled,
			wantPattern: "^The.*1080p.*$",
		},
		{
			name: "ends plus contains",
			conds: []types.Condition{
				cond(types.OpContains, "HDR", false),
				cond(types.OpEndsWith, "Remastered", false),
			},
			wantOutcome: OutcomeCompiled,
			wantPattern: "(?i)^.*HDR.*Remastered$",
		},
		{
			name: "positional literals escaped",
			conds: []types.Condition{
				cond(types.OpStartsWith, "The.Movie", false),
				cond(types.OpEndsWith, "5.1", false),
			},
			wantOutcome: OutcomeCompiled,
			wantPattern: `(?i)^The\.Movie.*5\.1$`,
		},
		{
			name: "lookahead word boundary with contains",
			conds: []types.Condition{
				cond(types.OpWordBoundary, "HDR", false),
				cond(types.OpContains, "x265", false),
			},
			wantOutcome: OutcomeCompiled,
			wantPattern: `(?=.*(?i)\bHDR\b)(?=.*(?i)x265).*`,
		},
		{
			name: "lookahead matches with contains",
			conds: []types.Condition{
				cond(types.OpMatches, `x26[45]`, false),
				cond(types.OpContains, "HDR", false),
			},
			wantOutcome: OutcomeCompiled,
			wantPattern: `(?=.*x26[45])(?=.*(?i)HDR).*`,
		},
		{
			name: "lookahead isNotEmpty with contains",
			conds: []types.Condition{
				cond(types.OpIsNotEmpty, "", false),
				cond(types.OpContains, "HDR", false),
			},
			wantOutcome: OutcomeCompiled,
			wantPattern: "(?=.*.+)(?=.*(?i)HDR).*",
		},
		{
			name: "duplicate startsWith",
			conds: []types.Condition{
				cond(types.OpStartsWith, "a", false),
				cond(types.OpStartsWith, "b", false),
			},
			wantOutcome:  OutcomeAdvisory,
			wantPattern:  "(?i)^a && (?i)^b",
			wantConflict: true,
		},
		{
			name: "duplicate endsWith",
			conds: []types.Condition{
				cond(types.OpEndsWith, "a", false),
				cond(types.OpEndsWith, "b", false),
			},
			wantOutcome:  OutcomeAdvisory,
			wantPattern:  "(?i)a$ && (?i)b$",
			wantConflict: true,
		},
		{
			name: "duplicate equals",
			conds: []types.Condition{
				cond(types.OpEquals, "a", false),
				cond(types.OpEquals, "b", false),
			},
			wantOutcome:  OutcomeAdvisory,
			wantPattern:  "(?i)^a$ && (?i)^b$",
			wantConflict: true,
		},
		{
			name: "equals with startsWith",
			conds: []types.Condition{
				cond(types.OpEquals, "x265", false),
				cond(types.OpStartsWith, "The", false),
			},
			wantOutcome:  OutcomeAdvisory,
			wantPattern:  "(?i)^x265$ && (?i)^The",
			wantConflict: true,
		},
		{
			name: "equals with endsWith",
			conds: []types.Condition{
				cond(types.OpEquals, "x265", false),
				cond(types.OpEndsWith, "Remastered", false),
			},
			wantOutcome:  OutcomeAdvisory,
			wantPattern:  "(?i)^x265$ && (?i)Remastered$",
			wantConflict: true,
		},
		{
			name: "equals with contains",
			conds: []types.Condition{
				cond(types.OpEquals, "x265", false),
				cond(types.OpContains, "HDR", false),
			},
			wantOutcome:  OutcomeAdvisory,
			wantPattern:  "(?i)^x265$ && (?i)HDR",
			wantConflict: true,
		},
		{
			name: "notContains in multi-condition AND",
			conds: []types.Condition{
				cond(types.OpContains, "x264", false),
				cond(types.OpNotContains, "CAM", false),
			},
			wantOutcome:  OutcomeAdvisory,
			wantPattern:  "(?i)x264 && (?i)^(?!.*CAM).*$",
			wantConflict: true,
		},
		{
			name: "isEmpty in multi-condition AND",
			conds: []types.Condition{
				cond(types.OpIsEmpty, "", false),
				cond(types.OpContains, "HDR", false),
			},
			wantOutcome:  OutcomeAdvisory,
			wantPattern:  "^$ && (?i)HDR",
			wantConflict: true,
		},
		{
			name: "wordBoundary mixed into positional AND",
			conds: []types.Condition{
				cond(types.OpStartsWith, "The", false),
				cond(types.OpWordBoundary, "HDR", false),
			},
			wantOutcome:  OutcomeAdvisory,
			wantPattern:  `(?i)^The && (?i)\bHDR\b`,
			wantConflict: true,
		},
		{
			name: "matches mixed into positional AND",
			conds: []types.Condition{
				cond(types.OpMatches, `x26[45]`, false),
				cond(types.OpEndsWith, "Remastered", false),
			},
			wantOutcome:  OutcomeAdvisory,
			wantPattern:  `x26[45] && (?i)Remastered$`,
			wantConflict: true,
		},
		{
			name: "isNotEmpty mixed into positional AND",
			conds: []types.Condition{
				cond(types.OpIsNotEmpty, "", false),
				cond(types.OpStartsWith, "The", false),
			},
			wantOutcome:  OutcomeAdvisory,
			wantPattern:  ".+ && (?i)^The",
			wantConflict: true,
		},
		{
			name: "mixed case in lookahead path",
			conds: []types.Condition{
				cond(types.OpContains, "x", true),
				cond(types.OpContains, "y", false),
			},
			wantOutcome: OutcomeAdvisory,
			wantPattern: "x && (?i)y",
			wantMixed:   true,
		},
		{
			name: "mixed case in positional path",
			conds: []types.Condition{
				cond(types.OpStartsWith, "The", true),
				cond(types.OpEndsWith, "Remastered", false),
			},
			wantOutcome: OutcomeAdvisory,
			wantPattern: "^The && (?i)Remastered$",
			wantMixed:   true,
		},
		{
			name: "positional conflict and mixed case together",
			conds: []types.Condition{
				cond(types.OpStartsWith, "a", true),
				cond(types.OpStartsWith, "b", false),
			},
			wantOutcome:  OutcomeAdvisory,
			wantPattern:  "^a && (?i)^b",
			wantConflict: true,
			wantMixed:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compile(tt.conds, types.CombinatorAnd)
			if got.Outcome != tt.wantOutcome {
				t.Fatalf("Outcome = %v, want %v", got.Outcome, tt.wantOutcome)
			}
			if got.Pattern != tt.wantPattern {
				t.Errorf("Pattern = %q, want %q", got.Pattern, tt.wantPattern)
			}
			if got.PositionalConflict != tt.wantConflict {
				t.Errorf("PositionalConflict = %v, want %v", got.PositionalConflict, tt.wantConflict)
			}
			if got.MixedCaseSensitivity != tt.wantMixed {
				t.Errorf("MixedCaseSensitivity = %v, want %v", got.MixedCaseSensitivity, tt.wantMixed)
			}
		})
	}
}
