package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gamelog-tracker/internal/db"
	"gamelog-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type PlayerStatsRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerStatsRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerStatsRepository {
	return &PlayerStatsRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// GlobalRanking sums every stored player_stats row per player name.
func (r *PlayerStatsRepository) GlobalRanking(ctx context.Context) ([]domain.PlayerAggregate, error) {
	rows, err := r.queries.GetGlobalRanking(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get global ranking: %w", err)
	}

	aggregates := make([]domain.PlayerAggregate, len(rows))
	for i, row := range rows {
		aggregates[i] = domain.PlayerAggregate{
			PlayerName:    row.PlayerName,
			TotalKills:    int(row.TotalKills),
			TotalDeaths:   int(row.TotalDeaths),
			BestStreak:    int(row.BestStreak),
			MatchesPlayed: int(row.MatchesPlayed),
		}
	}

	r.logger.Debug().Int("player_count", len(aggregates)).Msg("global ranking aggregated")
	return aggregates, nil
}
