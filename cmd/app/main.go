package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"reviewfeed/cmd/fx/config_fx"
	"reviewfeed/cmd/fx/controllers_fx"
	"reviewfeed/cmd/fx/db_fx"
	"reviewfeed/cmd/fx/feed_fx"
	"reviewfeed/cmd/fx/memcache_fx"
	"reviewfeed/internal/api"
	"reviewfeed/internal/config"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		config_fx.Module,
		memcache_fx.Module,
		db_fx.Module,
		feed_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()), zap.Uint64("seed", cfg.Seed))
			go serve(srv, ln, shutdowner, log)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			defer log.Sync() //nolint:errcheck
			return srv.Shutdown(ctx)
		},
	})
}

// serve blocks until srv stops; an unexpected failure shuts the app down
// through fx so the stop hooks still run.
func serve(srv *http.Server, ln net.Listener, shutdowner fx.Shutdowner, log *zap.Logger) {
	err := srv.Serve(ln)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}

	log.Error("Failed to serve HTTP", zap.Error(err))
	if err := shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
		log.Error("Failed to request shutdown", zap.Error(err))
	}
}
