package memcache_fx

import (
	"go.uber.org/fx"
	"reviewfeed/internal/config"
	mem "reviewfeed/pkg/memcache"
)

var Module = fx.Provide(provideChangeLog)

func provideChangeLog(cfg config.Config) mem.ChangeLog {
	return mem.NewChangeEvents(cfg.ChangeLogCapacity)
}
