/*
Package api exposes the condition compiler and custom format store over
HTTP. JSON in, JSON out; gorilla/mux for routing.

Routes:

	GET    /health                  liveness plus database ping
	POST   /api/v1/compile          compile conditions to a pattern
	POST   /api/v1/formats          compile and persist as a custom format
	GET    /api/v1/formats          list custom formats
	GET    /api/v1/formats/{id}     fetch one custom format
	DELETE /api/v1/formats/{id}     delete a custom format
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/arrstack/cfpattern/internal/core/config"
	"github.com/arrstack/cfpattern/internal/core/formats"
)

// Service holds the dependencies shared by all HTTP handlers.
type Service struct {
	db    *sqlx.DB
	store *formats.Store
	cfg   config.ServerConfig
	log   zerolog.Logger
}

// NewService wires the API service. The database handle is used only by
// the health endpoint; all data access goes through the store.
func NewService(database *sqlx.DB, store *formats.Store, cfg config.ServerConfig, log zerolog.Logger) *Service {
	return &Service{db: database, store: store, cfg: cfg, log: log}
}

// Router builds the HTTP route table.
func (s *Service) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestLogger)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/compile", s.handleCompile).Methods(http.MethodPost)
	v1.HandleFunc("/formats", s.handleCreateFormat).Methods(http.MethodPost)
	v1.HandleFunc("/formats", s.handleListFormats).Methods(http.MethodGet)
	v1.HandleFunc("/formats/{id}", s.handleGetFormat).Methods(http.MethodGet)
	v1.HandleFunc("/formats/{id}", s.handleDeleteFormat).Methods(http.MethodDelete)

	return r
}

func (s *Service) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request")
		next.ServeHTTP(w, r)
	})
}

// decodeJSON reads a request body into dest with the configured size cap.
// Unknown fields are rejected so client typos surface as 400s instead of
// silently compiling the wrong thing.
func (s *Service) decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
