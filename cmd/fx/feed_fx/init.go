package feed_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"reviewfeed/internal/config"
	"reviewfeed/internal/feed"
	"reviewfeed/internal/repositories"
	"reviewfeed/internal/services"
)

var Module = fx.Provide(
	provideRandom, feed.NewState, provideMutator, provideFeedService, services.NewChangeService,
)

func provideRandom(cfg config.Config) feed.Random {
	return feed.NewRandom(cfg.Seed)
}

func provideMutator(rnd feed.Random, log *zap.Logger) *feed.Mutator {
	return feed.NewMutator(rnd, log.Named("feed"))
}

func provideFeedService(
	state *feed.State,
	mutator *feed.Mutator,
	changeRepo repositories.ChangeRepositoryInterface,
	log *zap.Logger,
) services.FeedServiceInterface {
	return services.NewFeedService(state, mutator, changeRepo, log)
}
