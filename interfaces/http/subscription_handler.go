package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/interfaces/middleware"
	"videotube/usecase"
)

type ISubscriptionHandler interface {
	Toggle(c *gin.Context)
	Subscribers(c *gin.Context)
	SubscribedChannels(c *gin.Context)
}

type SubscriptionHandler struct {
	subscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

func (subscriptionHandler *SubscriptionHandler) Toggle(c *gin.Context) {
	result, err := subscriptionHandler.subscriptionUsecase.Toggle(c.Request.Context(), middleware.SubjectID(c), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "subscription toggled", result)
}

func (subscriptionHandler *SubscriptionHandler) Subscribers(c *gin.Context) {
	users, err := subscriptionHandler.subscriptionUsecase.Subscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "subscribers fetched", users)
}

func (subscriptionHandler *SubscriptionHandler) SubscribedChannels(c *gin.Context) {
	users, err := subscriptionHandler.subscriptionUsecase.SubscribedChannels(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "subscribed channels fetched", users)
}
