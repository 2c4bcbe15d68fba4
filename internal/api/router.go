package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"reviewfeed/internal/api/controllers"
	"reviewfeed/pkg/middleware"
)

func ProvideRouter(
	log *zap.Logger,
	feedController *controllers.FeedController,
	changesController *controllers.ChangesController) *gin.Engine {

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())

	RegisterRoutes(r, feedController, changesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	feedController *controllers.FeedController,
	changesController *controllers.ChangesController) {

	r.GET("/", feedController.GetFeed)

	debugGroup := r.Group("/debug")
	debugGroup.GET("/stats", feedController.GetStats)
	debugGroup.GET("/changes", changesController.ListChanges)
}
