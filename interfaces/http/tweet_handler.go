package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/interfaces/middleware"
	"videotube/usecase"
)

type ITweetHandler interface {
	Create(c *gin.Context)
	ListByUser(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type TweetHandler struct {
	tweetUsecase usecase.ITweetUsecase
}

func NewTweetHandler(tweetUsecase usecase.ITweetUsecase) ITweetHandler {
	return &TweetHandler{tweetUsecase: tweetUsecase}
}

func (tweetHandler *TweetHandler) Create(c *gin.Context) {
	var req dto.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: ErrorUnmarshal})
		return
	}

	tweet, err := tweetHandler.tweetUsecase.Create(c.Request.Context(), middleware.SubjectID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "tweet created", tweet)
}

func (tweetHandler *TweetHandler) ListByUser(c *gin.Context) {
	tweets, err := tweetHandler.tweetUsecase.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "tweets fetched", tweets)
}

func (tweetHandler *TweetHandler) Update(c *gin.Context) {
	var req dto.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: ErrorUnmarshal})
		return
	}

	tweet, err := tweetHandler.tweetUsecase.Update(c.Request.Context(), middleware.SubjectID(c), c.Param("tweetId"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "tweet updated", tweet)
}

func (tweetHandler *TweetHandler) Delete(c *gin.Context) {
	if err := tweetHandler.tweetUsecase.Delete(c.Request.Context(), middleware.SubjectID(c), c.Param("tweetId")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "tweet deleted", nil)
}
