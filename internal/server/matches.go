package server

import (
	"net/http"
)

func (s *Server) listMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.matchSvc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, matches)
}

func (s *Server) getMatchRanking(w http.ResponseWriter, r *http.Request) {
	ranking, err := s.matchSvc.Ranking(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, ranking)
}

func (s *Server) deleteAllMatches(w http.ResponseWriter, r *http.Request) {
	if err := s.matchSvc.DeleteAll(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
