package service

import (
	"context"
	"time"

	"gamelog-tracker/internal/constants"
	"gamelog-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type PlayerSummary struct {
	Name string `json:"name"`
}

type MatchSummary struct {
	ID        string          `json:"id"`
	StartTime time.Time       `json:"startTime"`
	EndTime   *time.Time      `json:"endTime"`
	Players   []PlayerSummary `json:"players"`
}

type MatchService struct {
	matches MatchStore
	logger  zerolog.Logger
}

func NewMatchService(matches MatchStore, logger zerolog.Logger) *MatchService {
	return &MatchService{matches: matches, logger: logger}
}

func (s *MatchService) Ranking(ctx context.Context, matchID string) (*domain.MatchRanking, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	s.logger.Debug().Str("match_id", matchID).Msg("getting match ranking")

	match, err := s.matches.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	ranking := domain.NewMatchRanking(match)
	return &ranking, nil
}

func (s *MatchService) List(ctx context.Context) ([]MatchSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	matches, err := s.matches.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]MatchSummary, len(matches))
	for i, match := range matches {
		players := make([]PlayerSummary, len(match.PlayerStats))
		for j, player := range match.PlayerStats {
			players[j] = PlayerSummary{Name: player.PlayerName}
		}

		summaries[i] = MatchSummary{
			ID:        match.ID,
			StartTime: match.StartTime,
			EndTime:   match.EndTime,
			Players:   players,
		}
	}

	s.logger.Debug().Int("match_count", len(summaries)).Msg("matches listed")
	return summaries, nil
}

func (s *MatchService) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.matches.DeleteAll(ctx)
}
