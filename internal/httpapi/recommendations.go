package httpapi

import "net/http"

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	recs, err := s.recommendations.ForUser(r.Context(), identity.Username)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}
