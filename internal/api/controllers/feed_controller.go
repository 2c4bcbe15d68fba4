package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"reviewfeed/internal/services"
	"reviewfeed/pkg/utils"
)

const feedContentType = "application/json; charset=utf-8"

type FeedController struct {
	feedService services.FeedServiceInterface
	log         *zap.Logger
}

func NewFeedController(feedService services.FeedServiceInterface, log *zap.Logger) *FeedController {
	return &FeedController{feedService: feedService, log: log}
}

// GetFeed godoc
// @Summary Customer reviews feed
// @Description Applies 1-3 random edits to the review feed and returns all of it
// @Tags Feed
// @Produce json
// @Success 200 {string} string "customer reviews document"
// @Router / [get]
func (f *FeedController) GetFeed(c *gin.Context) {
	body, err := f.feedService.Snapshot(c.Request.Context(), c.GetString(utils.TraceIDKey))
	if err != nil {
		utils.HandleServiceError(c, f.log, err)
		return
	}

	c.Data(http.StatusOK, feedContentType, body)
}

// GetStats godoc
// @Summary Feed counters
// @Tags Debug
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /debug/stats [get]
func (f *FeedController) GetStats(c *gin.Context) {
	utils.RespondSuccess(c, f.feedService.Stats(c.Request.Context()), "Fetched feed stats successfully")
}
