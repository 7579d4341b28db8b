package pattern

import (
	"testing"

	"github.com/arrstack/cfpattern/internal/types"
)

func TestFragment_CaseInsensitive(t *testing.T) {
	tests := []struct {
		op      types.Operator
		literal string
		want    string
	}{
		{types.OpContains, "L", "(?i)L"},
		{types.OpNotContains, "L", "(?i)^(?!.*L).*$"},
		{types.OpStartsWith, "L", "(?i)^L"},
		{types.OpEndsWith, "L", "(?i)L$"},
		{types.OpEquals, "L", "(?i)^L$"},
		{types.OpMatches, `\d+p`, `\d+p`},
		{types.OpWordBoundary, "L", `(?i)\bL\b`},
		{types.OpIsEmpty, "ignored", "^$"},
		{types.OpIsNotEmpty, "ignored", ".+"},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			got := Fragment(tt.op, tt.literal, false)
			if got != tt.want {
				t.Errorf("Fragment(%s, %q, false) = %q, want %q", tt.op, tt.literal, got, tt.want)
			}
		})
	}
}

func TestFragment_CaseSensitive(t *testing.T) {
	tests := []struct {
		op      types.Operator
		literal string
		want    string
	}{
		{types.OpContains, "L", "L"},
		{types.OpNotContains, "L", "^(?!.*L).*$"},
		{types.OpStartsWith, "L", "^L"},
		{types.OpEndsWith, "L", "L$"},
		{types.OpEquals, "L", "^L$"},
		{types.OpMatches, `\d+p`, `\d+p`},
		{types.OpWordBoundary, "L", `\bL\b`},
		{types.OpIsEmpty, "ignored", "^$"},
		{types.OpIsNotEmpty, "ignored", ".+"},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			got := Fragment(tt.op, tt.literal, true)
			if got != tt.want {
				t.Errorf("Fragment(%s, %q, true) = %q, want %q", tt.op, tt.literal, got, tt.want)
			}
		})
	}
}

func TestFragment_UnknownOperator(t *testing.T) {
	got := Fragment(types.Operator("regex"), "L", false)
	if got != "" {
		t.Errorf("Fragment(unknown) = %q, want empty", got)
	}
}

func TestConditionFragment_EscapesAllButMatches(t *testing.T) {
	contains := types.Condition{Operator: types.OpContains, Value: "5.1"}
	if got := conditionFragment(contains); got != `(?i)5\.1` {
		t.Errorf("contains fragment = %q, want %q", got, `(?i)5\.1`)
	}

	matches := types.Condition{Operator: types.OpMatches, Value: `x26[45]`}
	if got := conditionFragment(matches); got != `x26[45]` {
		t.Errorf("matches fragment = %q, want raw %q", got, `x26[45]`)
	}
}
