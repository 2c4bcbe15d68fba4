package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"reviewfeed/internal/services"
	"reviewfeed/pkg/utils"
)

type ChangesController struct {
	changeService services.ChangeServiceInterface
	log           *zap.Logger
}

func NewChangesController(changeService services.ChangeServiceInterface, log *zap.Logger) *ChangesController {
	return &ChangesController{changeService: changeService, log: log}
}

// ListChanges godoc
// @Summary List feed changes
// @Description Edits applied to the feed, newest first
// @Tags Debug
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.ChangeEventResponse
// @Failure 400 {object} utils.APIResponse
// @Router /debug/changes [get]
func (cc *ChangesController) ListChanges(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	changes, err := cc.changeService.ListChanges(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, cc.log, err)
		return
	}

	utils.RespondSuccess(c, changes, "Fetched feed changes successfully")
}
