package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/domain/model"
	"videotube/interfaces/middleware"
	"videotube/usecase"
)

type ILikeHandler interface {
	ToggleVideoLike(c *gin.Context)
	ToggleCommentLike(c *gin.Context)
	ToggleTweetLike(c *gin.Context)
	LikedVideos(c *gin.Context)
}

type LikeHandler struct {
	likeUsecase usecase.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecase.ILikeUsecase) ILikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

func (likeHandler *LikeHandler) toggle(c *gin.Context, kind model.LikeTargetKind, param string) {
	result, err := likeHandler.likeUsecase.Toggle(c.Request.Context(), middleware.SubjectID(c), kind, c.Param(param))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "like toggled", result)
}

func (likeHandler *LikeHandler) ToggleVideoLike(c *gin.Context) {
	likeHandler.toggle(c, model.LikeTargetVideo, "videoId")
}

func (likeHandler *LikeHandler) ToggleCommentLike(c *gin.Context) {
	likeHandler.toggle(c, model.LikeTargetComment, "commentId")
}

func (likeHandler *LikeHandler) ToggleTweetLike(c *gin.Context) {
	likeHandler.toggle(c, model.LikeTargetTweet, "tweetId")
}

func (likeHandler *LikeHandler) LikedVideos(c *gin.Context) {
	videos, err := likeHandler.likeUsecase.LikedVideos(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "liked videos fetched", videos)
}
