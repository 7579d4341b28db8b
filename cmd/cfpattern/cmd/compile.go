package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arrstack/cfpattern/internal/pattern"
	"github.com/arrstack/cfpattern/internal/types"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a condition set to a pattern",
	Long: `Compile reads a JSON document with "conditions" and "combinator"
keys from the given file (or stdin when omitted) and prints the compiler
result as JSON. Exits non-zero when the result is empty or advisory.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

type compileInput struct {
	Conditions []types.Condition `json:"conditions"`
	Combinator string            `json:"combinator"`
}

type compileOutput struct {
	Outcome               string  `json:"outcome"`
	Pattern               *string `json:"pattern"`
	PositionalAndConflict bool    `json:"positionalAndConflict"`
	MixedCaseSensitivity  bool    `json:"mixedCaseSensitivity"`
}

func runCompile(cmd *cobra.Command, args []string) error {
	var reader io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var input compileInput
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	if len(input.Conditions) > types.MaxConditions {
		return types.ErrTooManyConditions
	}
	combinator, ok := types.ParseCombinator(input.Combinator)
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrUnknownCombinator, input.Combinator)
	}

	result := pattern.Compile(input.Conditions, combinator)

	output := compileOutput{
		Outcome:               result.Outcome.String(),
		PositionalAndConflict: result.PositionalConflict,
		MixedCaseSensitivity:  result.MixedCaseSensitivity,
	}
	if result.Outcome != pattern.OutcomeEmpty {
		output.Pattern = &result.Pattern
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return err
	}

	// Advisory and empty results cannot be applied; signal that to
	// shell pipelines via the exit code.
	if err := pattern.Validate(result); err != nil {
		return err
	}
	return nil
}
