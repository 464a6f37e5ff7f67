package server

import (
	"net/http"

	"gamelog-tracker/internal/domain"
)

type globalRankingResponse struct {
	Ranking []domain.GlobalPlayerRanking `json:"ranking"`
}

func (s *Server) getGlobalRanking(w http.ResponseWriter, r *http.Request) {
	ranking, err := s.playerSvc.GlobalRanking(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, globalRankingResponse{Ranking: ranking})
}
