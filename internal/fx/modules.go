package fx

import (
	"database/sql"

	"gamelog-tracker/internal/api"
	"gamelog-tracker/internal/config"
	"gamelog-tracker/internal/database"
	"gamelog-tracker/internal/db"
	"gamelog-tracker/internal/logger"
	"gamelog-tracker/internal/repository"
	"gamelog-tracker/internal/server"
	"gamelog-tracker/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Invoke(logger.ApplyLevel),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(fx.Annotate(repository.NewMatchRepository, fx.As(new(service.MatchStore)))),
	fx.Provide(fx.Annotate(repository.NewPlayerStatsRepository, fx.As(new(service.PlayerStatsStore)))),
	// api client
	fx.Provide(fx.Annotate(api.NewLogClient, fx.As(new(service.RemoteLogFetcher)))),
	// svc
	fx.Provide(service.NewGameLogsService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewPlayerService),
	// server
	fx.Provide(server.NewServer),
)
