package api

import (
	"net/http"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// handleHealth reports process liveness and database reachability.
// Returns 503 when the database ping fails so load balancers can pull
// the instance from rotation.
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Database: "ok"}
	status := http.StatusOK

	if err := s.db.PingContext(r.Context()); err != nil {
		s.log.Warn().Err(err).Msg("health check database ping failed")
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	s.writeJSON(w, status, resp)
}
