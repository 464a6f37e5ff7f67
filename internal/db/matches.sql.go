package db

import (
	"context"
	"time"
)

const insertMatch = `
INSERT INTO matches (id, start_time, end_time, created_at)
VALUES (?, ?, ?, ?)
`

type InsertMatchParams struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
}

func (q *Queries) InsertMatch(ctx context.Context, arg InsertMatchParams) error {
	_, err := q.db.ExecContext(ctx, insertMatch,
		arg.ID,
		arg.StartTime,
		arg.EndTime,
		arg.CreatedAt,
	)
	return err
}

const getMatch = `
SELECT id, start_time, end_time, created_at
FROM matches
WHERE id = ?
`

func (q *Queries) GetMatch(ctx context.Context, id string) (Match, error) {
	row := q.db.QueryRowContext(ctx, getMatch, id)
	var i Match
	err := row.Scan(
		&i.ID,
		&i.StartTime,
		&i.EndTime,
		&i.CreatedAt,
	)
	return i, err
}

const listMatches = `
SELECT id, start_time, end_time, created_at
FROM matches
ORDER BY start_time, id
`

func (q *Queries) ListMatches(ctx context.Context) ([]Match, error) {
	rows, err := q.db.QueryContext(ctx, listMatches)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Match
	for rows.Next() {
		var i Match
		if err := rows.Scan(
			&i.ID,
			&i.StartTime,
			&i.EndTime,
			&i.CreatedAt,
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

const deleteAllMatches = `
DELETE FROM matches
`

func (q *Queries) DeleteAllMatches(ctx context.Context) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteAllMatches)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
