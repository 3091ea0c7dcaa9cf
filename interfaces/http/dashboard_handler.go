package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/interfaces/middleware"
	"videotube/usecase"
)

type IDashboardHandler interface {
	ChannelStats(c *gin.Context)
	ChannelVideos(c *gin.Context)
}

type DashboardHandler struct {
	dashboardUsecase usecase.IDashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.IDashboardUsecase) IDashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (dashboardHandler *DashboardHandler) ChannelStats(c *gin.Context) {
	stats, err := dashboardHandler.dashboardUsecase.ChannelStats(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "channel stats fetched", stats)
}

func (dashboardHandler *DashboardHandler) ChannelVideos(c *gin.Context) {
	videos, err := dashboardHandler.dashboardUsecase.ChannelVideos(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "channel videos fetched", videos)
}
