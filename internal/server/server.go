package server

import (
	"encoding/json"
	"net/http"

	"gamelog-tracker/internal/config"
	"gamelog-tracker/internal/service"

	"github.com/rs/zerolog"
)

// Server exposes the services over a JSON HTTP API.
type Server struct {
	cfg         *config.Config
	gameLogsSvc *service.GameLogsService
	matchSvc    *service.MatchService
	playerSvc   *service.PlayerService
}

func NewServer(cfg *config.Config, gameLogsSvc *service.GameLogsService, matchSvc *service.MatchService, playerSvc *service.PlayerService) *Server {
	return &Server{cfg: cfg, gameLogsSvc: gameLogsSvc, matchSvc: matchSvc, playerSvc: playerSvc}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /game-logs/upload", s.uploadGameLogs)
	mux.HandleFunc("POST /game-logs/remote", s.processRemoteGameLog)

	mux.HandleFunc("GET /matches", s.listMatches)
	mux.HandleFunc("GET /matches/{id}/ranking", s.getMatchRanking)
	mux.HandleFunc("DELETE /matches", s.deleteAllMatches)

	mux.HandleFunc("GET /players/ranking", s.getGlobalRanking)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("failed to write response")
	}
}
