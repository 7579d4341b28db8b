package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/arrstack/cfpattern/internal/pattern"
	"github.com/arrstack/cfpattern/internal/types"
)

type createFormatRequest struct {
	Name       string            `json:"name"`
	Score      int               `json:"score"`
	Conditions []types.Condition `json:"conditions"`
	Combinator string            `json:"combinator"`
}

// formatResponse is the wire shape for a stored custom format.
type formatResponse struct {
	FormatID  string `json:"formatId"`
	Name      string `json:"name"`
	Pattern   string `json:"pattern"`
	Score     int    `json:"score"`
	CreatedAt string `json:"createdAt"`
}

func toFormatResponse(f types.CustomFormat) formatResponse {
	return formatResponse{
		FormatID:  f.FormatID.String(),
		Name:      f.Name,
		Pattern:   f.Pattern,
		Score:     f.Score,
		CreatedAt: f.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *Service) handleCreateFormat(w http.ResponseWriter, r *http.Request) {
	var req createFormatRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	combinator, err := validateCompileRequest(compileRequest{
		Conditions: req.Conditions,
		Combinator: req.Combinator,
	})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := pattern.Compile(req.Conditions, combinator)

	format, err := s.store.Apply(r.Context(), req.Name, req.Score, result)
	if err != nil {
		s.writeError(w, compileStatusFromError(err), err.Error())
		return
	}

	s.writeJSON(w, http.StatusCreated, toFormatResponse(format))
}

func (s *Service) handleListFormats(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list formats")
		s.writeError(w, http.StatusInternalServerError, "failed to list formats")
		return
	}

	resp := make([]formatResponse, 0, len(list))
	for _, f := range list {
		resp = append(resp, toFormatResponse(f))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Service) formatIDFromRequest(w http.ResponseWriter, r *http.Request) (types.FormatID, bool) {
	id, err := types.ParseFormatID(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid format id")
		return "", false
	}
	return id, true
}

func (s *Service) handleGetFormat(w http.ResponseWriter, r *http.Request) {
	id, ok := s.formatIDFromRequest(w, r)
	if !ok {
		return
	}

	format, err := s.store.Get(r.Context(), id)
	if errors.Is(err, types.ErrFormatNotFound) {
		s.writeError(w, http.StatusNotFound, "format not found")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Str("format_id", id.String()).Msg("failed to get format")
		s.writeError(w, http.StatusInternalServerError, "failed to get format")
		return
	}

	s.writeJSON(w, http.StatusOK, toFormatResponse(format))
}

func (s *Service) handleDeleteFormat(w http.ResponseWriter, r *http.Request) {
	id, ok := s.formatIDFromRequest(w, r)
	if !ok {
		return
	}

	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, types.ErrFormatNotFound) {
		s.writeError(w, http.StatusNotFound, "format not found")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Str("format_id", id.String()).Msg("failed to delete format")
		s.writeError(w, http.StatusInternalServerError, "failed to delete format")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
