package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/arrstack/cfpattern/internal/pattern"
	"github.com/arrstack/cfpattern/internal/types"
)

type compileRequest struct {
	Conditions []types.Condition `json:"conditions"`
	Combinator string            `json:"combinator"`
}

// compileResponse mirrors pattern.Result for the wire. Pattern is a
// pointer so the empty outcome serializes as null rather than "".
type compileResponse struct {
	Outcome               string  `json:"outcome"`
	Pattern               *string `json:"pattern"`
	PositionalAndConflict bool    `json:"positionalAndConflict"`
	MixedCaseSensitivity  bool    `json:"mixedCaseSensitivity"`
}

func toCompileResponse(result pattern.Result) compileResponse {
	resp := compileResponse{
		Outcome:               result.Outcome.String(),
		PositionalAndConflict: result.PositionalConflict,
		MixedCaseSensitivity:  result.MixedCaseSensitivity,
	}
	if result.Outcome != pattern.OutcomeEmpty {
		resp.Pattern = &result.Pattern
	}
	return resp
}

// validateCompileRequest enforces the API-boundary resource limits and
// rejects unknown operators and combinators. The compiler itself is
// total and never errors; all rejection happens here.
func validateCompileRequest(req compileRequest) (types.Combinator, error) {
	if len(req.Conditions) > types.MaxConditions {
		return "", types.ErrTooManyConditions
	}

	for i, c := range req.Conditions {
		if c.Operator != "" && !c.Operator.Known() {
			return "", fmt.Errorf("condition %d: %w: %q", i, types.ErrUnknownOperator, c.Operator)
		}
		if len(c.Value) > types.MaxValueLength {
			return "", fmt.Errorf("condition %d: %w", i, types.ErrValueTooLong)
		}
		if len(c.Field) > types.MaxFieldLength {
			return "", fmt.Errorf("condition %d: %w", i, types.ErrFieldTooLong)
		}
	}

	combinator, ok := types.ParseCombinator(req.Combinator)
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownCombinator, req.Combinator)
	}
	return combinator, nil
}

func (s *Service) handleCompile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	combinator, err := validateCompileRequest(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := pattern.Compile(req.Conditions, combinator)
	s.writeJSON(w, http.StatusOK, toCompileResponse(result))
}

// compileStatusFromError maps apply-gate failures to HTTP status codes.
// Advisory and empty results are a semantic rejection of valid input,
// hence 422 rather than 400.
func compileStatusFromError(err error) int {
	switch {
	case errors.Is(err, types.ErrAdvisoryPattern),
		errors.Is(err, types.ErrEmptyPattern),
		errors.Is(err, types.ErrInvalidPattern),
		errors.Is(err, types.ErrPatternTooLong):
		return http.StatusUnprocessableEntity
	case errors.Is(err, types.ErrEmptyName),
		errors.Is(err, types.ErrNameTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
