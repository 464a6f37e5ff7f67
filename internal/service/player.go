package service

import (
	"context"

	"gamelog-tracker/internal/constants"
	"gamelog-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type PlayerService struct {
	stats  PlayerStatsStore
	logger zerolog.Logger
}

func NewPlayerService(stats PlayerStatsStore, logger zerolog.Logger) *PlayerService {
	return &PlayerService{stats: stats, logger: logger}
}

// GlobalRanking ranks every player seen in stored matches by overall KDA, then total kills.
func (s *PlayerService) GlobalRanking(ctx context.Context) ([]domain.GlobalPlayerRanking, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	aggregates, err := s.stats.GlobalRanking(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("player_count", len(aggregates)).Msg("global ranking built")
	return domain.NewGlobalRanking(aggregates), nil
}
