package service

import (
	"context"

	"gamelog-tracker/internal/domain"
)

type MatchStore interface {
	FindByID(ctx context.Context, id string) (*domain.Match, error)
	FindAll(ctx context.Context) ([]*domain.Match, error)
	CreateBatch(ctx context.Context, matches []*domain.Match) error
	DeleteAll(ctx context.Context) error
}

type PlayerStatsStore interface {
	GlobalRanking(ctx context.Context) ([]domain.PlayerAggregate, error)
}

type RemoteLogFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}
