package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gamelog-tracker/internal/constants"
	"gamelog-tracker/internal/db"
	"gamelog-tracker/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

type MatchRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *MatchRepository) FindByID(ctx context.Context, id string) (*domain.Match, error) {
	match, err := r.queries.GetMatch(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.EntityNotFoundError{Entity: "Match", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match %s: %w", id, err)
	}

	rows, err := r.queries.ListPlayerStatsByMatchID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats for match %s: %w", id, err)
	}

	players, err := toDomainPlayers(rows)
	if err != nil {
		return nil, err
	}

	return toDomainMatch(match, players), nil
}

// FindAll returns every stored match ordered by start time.
func (r *MatchRepository) FindAll(ctx context.Context) ([]*domain.Match, error) {
	matches, err := r.queries.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	rows, err := r.queries.ListPlayerStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list player stats: %w", err)
	}

	byMatch := make(map[string][]db.PlayerStat, len(matches))
	for _, row := range rows {
		byMatch[row.MatchID] = append(byMatch[row.MatchID], row)
	}

	results := make([]*domain.Match, len(matches))
	for i, match := range matches {
		players, err := toDomainPlayers(byMatch[match.ID])
		if err != nil {
			return nil, err
		}
		results[i] = toDomainMatch(match, players)
	}

	return results, nil
}

// CreateBatch stores ended matches and their player stats in one transaction. A match id that
// already exists aborts the whole batch with an EntityAlreadyExistsError.
func (r *MatchRepository) CreateBatch(ctx context.Context, matches []*domain.Match) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now().UTC()

	for i := 0; i < len(matches); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(matches))

		for _, match := range matches[i:end] {
			if !match.HasEnded() {
				return fmt.Errorf("match %s has not ended", match.ID)
			}

			err := qtx.InsertMatch(ctx, db.InsertMatchParams{
				ID:        match.ID,
				StartTime: match.StartTime,
				EndTime:   *match.EndTime,
				CreatedAt: now,
			})
			if isConstraintViolation(err) {
				r.logger.Warn().Str("match_id", match.ID).Msg("match already exists")
				return &domain.EntityAlreadyExistsError{Entity: "Match", ID: match.ID}
			}
			if err != nil {
				return fmt.Errorf("failed to insert match %s: %w", match.ID, err)
			}

			if err := r.insertPlayers(ctx, qtx, match); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match batch: %w", err)
	}

	r.logger.Debug().Int("match_count", len(matches)).Msg("match batch stored")
	return nil
}

func (r *MatchRepository) insertPlayers(ctx context.Context, qtx *db.Queries, match *domain.Match) error {
	for position, player := range match.PlayerStats {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}

		weaponStats, err := json.Marshal(player.WeaponsUsed)
		if err != nil {
			return fmt.Errorf("failed to encode weapon stats for %s: %w", player.PlayerName, err)
		}

		err = qtx.InsertPlayerStat(ctx, db.InsertPlayerStatParams{
			ID:          id,
			MatchID:     match.ID,
			PlayerName:  player.PlayerName,
			Kills:       int64(player.Kills),
			Deaths:      int64(player.Deaths),
			BestStreak:  int64(player.BestStreak),
			WeaponStats: string(weaponStats),
			Position:    int64(position),
		})
		if err != nil {
			return fmt.Errorf("failed to insert player stats %s/%s: %w", match.ID, player.PlayerName, err)
		}
	}

	return nil
}

// DeleteAll removes every match and its player stats. Only meant for resetting test data.
func (r *MatchRepository) DeleteAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	if err := qtx.DeleteAllPlayerStats(ctx); err != nil {
		return fmt.Errorf("failed to delete player stats: %w", err)
	}

	deleted, err := qtx.DeleteAllMatches(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete matches: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	r.logger.Warn().Int64("deleted", deleted).Msg("all matches deleted")
	return nil
}

func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func toDomainMatch(match db.Match, players []*domain.PlayerStats) *domain.Match {
	endTime := match.EndTime.UTC()
	return domain.RestoreMatch(match.ID, match.StartTime.UTC(), &endTime, players)
}

func toDomainPlayers(rows []db.PlayerStat) ([]*domain.PlayerStats, error) {
	players := make([]*domain.PlayerStats, len(rows))
	for i, row := range rows {
		weapons := make(map[string]int)
		if err := json.Unmarshal([]byte(row.WeaponStats), &weapons); err != nil {
			return nil, fmt.Errorf("failed to decode weapon stats for %s/%s: %w", row.MatchID, row.PlayerName, err)
		}

		players[i] = domain.RestorePlayerStats(row.PlayerName, int(row.Kills), int(row.Deaths), int(row.BestStreak), weapons)
	}
	return players, nil
}
