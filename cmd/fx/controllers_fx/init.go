package controllers_fx

import (
	"go.uber.org/fx"
	"reviewfeed/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewFeedController),
	fx.Provide(controllers.NewChangesController))
