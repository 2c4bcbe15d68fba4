package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"reviewfeed/internal/config"
	"reviewfeed/internal/infra"
	"reviewfeed/internal/repositories"
	mem "reviewfeed/pkg/memcache"
)

var Module = fx.Provide(
	provideChangeRepo)

// provideChangeRepo uses Postgres when configured and reachable, memory otherwise.
func provideChangeRepo(
	lc fx.Lifecycle,
	cfg config.Config,
	store mem.ChangeLog,
	log *zap.Logger,
) repositories.ChangeRepositoryInterface {
	if cfg.PostgresURL == "" {
		log.Info("POSTGRES_URL is not set, keeping feed changes in memory")
		return repositories.NewMemoryChangeRepository(store)
	}

	db, err := infra.InitPostgresql(cfg.PostgresURL)
	if err != nil {
		log.Error("Postgres change journal unavailable, falling back to memory", zap.Error(err))
		return repositories.NewMemoryChangeRepository(store)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	log.Info("Recording feed changes in Postgres")
	return repositories.NewChangeRepository(db)
}
