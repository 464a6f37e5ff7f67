package db

import (
	"context"
)

const insertPlayerStat = `
INSERT INTO player_stats (id, match_id, player_name, kills, deaths, best_streak, weapon_stats, position)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

type InsertPlayerStatParams struct {
	ID          string
	MatchID     string
	PlayerName  string
	Kills       int64
	Deaths      int64
	BestStreak  int64
	WeaponStats string
	Position    int64
}

func (q *Queries) InsertPlayerStat(ctx context.Context, arg InsertPlayerStatParams) error {
	_, err := q.db.ExecContext(ctx, insertPlayerStat,
		arg.ID,
		arg.MatchID,
		arg.PlayerName,
		arg.Kills,
		arg.Deaths,
		arg.BestStreak,
		arg.WeaponStats,
		arg.Position,
	)
	return err
}

const listPlayerStatsByMatchID = `
SELECT id, match_id, player_name, kills, deaths, best_streak, weapon_stats, position
FROM player_stats
WHERE match_id = ?
ORDER BY position
`

func (q *Queries) ListPlayerStatsByMatchID(ctx context.Context, matchID string) ([]PlayerStat, error) {
	rows, err := q.db.QueryContext(ctx, listPlayerStatsByMatchID, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlayerStats(rows)
}

const listPlayerStats = `
SELECT id, match_id, player_name, kills, deaths, best_streak, weapon_stats, position
FROM player_stats
ORDER BY match_id, position
`

func (q *Queries) ListPlayerStats(ctx context.Context) ([]PlayerStat, error) {
	rows, err := q.db.QueryContext(ctx, listPlayerStats)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlayerStats(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Close() error
	Err() error
}

func scanPlayerStats(rows rowScanner) ([]PlayerStat, error) {
	var items []PlayerStat
	for rows.Next() {
		var i PlayerStat
		if err := rows.Scan(
			&i.ID,
			&i.MatchID,
			&i.PlayerName,
			&i.Kills,
			&i.Deaths,
			&i.BestStreak,
			&i.WeaponStats,
			&i.Position,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteAllPlayerStats = `
DELETE FROM player_stats
`

func (q *Queries) DeleteAllPlayerStats(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllPlayerStats)
	return err
}

const getGlobalRanking = `
SELECT player_name,
       SUM(kills)        AS total_kills,
       SUM(deaths)       AS total_deaths,
       MAX(best_streak)  AS best_streak,
       COUNT(id)         AS matches_played
FROM player_stats
GROUP BY player_name
ORDER BY total_kills DESC, player_name
`

type GetGlobalRankingRow struct {
	PlayerName    string
	TotalKills    int64
	TotalDeaths   int64
	BestStreak    int64
	MatchesPlayed int64
}

func (q *Queries) GetGlobalRanking(ctx context.Context) ([]GetGlobalRankingRow, error) {
	rows, err := q.db.QueryContext(ctx, getGlobalRanking)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetGlobalRankingRow
	for rows.Next() {
		var i GetGlobalRankingRow
		if err := rows.Scan(
			&i.PlayerName,
			&i.TotalKills,
			&i.TotalDeaths,
			&i.BestStreak,
			&i.MatchesPlayed,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
