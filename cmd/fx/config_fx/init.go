package config_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"reviewfeed/internal/config"
	"reviewfeed/pkg/logger"
)

var Module = fx.Provide(
	config.LoadConfig, provideLogger,
)

func provideLogger(cfg config.Config) (*zap.Logger, error) {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	return logger.New(cfg.Debug)
}
