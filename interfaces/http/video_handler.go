package http

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/interfaces/middleware"
	"videotube/usecase"
)

type IVideoHandler interface {
	Publish(c *gin.Context)
	Feed(c *gin.Context)
	GetByID(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	TogglePublish(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

// formFile returns the named upload or nil when the field is absent.
func formFile(c *gin.Context, name string) *multipart.FileHeader {
	file, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return file
}

func (videoHandler *VideoHandler) Publish(c *gin.Context) {
	video, err := videoHandler.videoUsecase.Publish(
		c.Request.Context(),
		middleware.SubjectID(c),
		c.PostForm("title"),
		c.PostForm("description"),
		formFile(c, "videoFile"),
		formFile(c, "thumbnail"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "video published", video)
}

func (videoHandler *VideoHandler) Feed(c *gin.Context) {
	var req dto.VideoFeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("binding feed query failed")
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid feed query"})
		return
	}

	page, err := videoHandler.videoUsecase.Feed(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "videos fetched", page)
}

func (videoHandler *VideoHandler) GetByID(c *gin.Context) {
	video, err := videoHandler.videoUsecase.GetByID(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "video fetched", video)
}

func (videoHandler *VideoHandler) Update(c *gin.Context) {
	req := dto.VideoUpdateRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	video, err := videoHandler.videoUsecase.Update(
		c.Request.Context(),
		middleware.SubjectID(c),
		c.Param("videoId"),
		req,
		formFile(c, "thumbnail"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "video updated", video)
}

func (videoHandler *VideoHandler) Delete(c *gin.Context) {
	if err := videoHandler.videoUsecase.Delete(c.Request.Context(), middleware.SubjectID(c), c.Param("videoId")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "video deleted", nil)
}

func (videoHandler *VideoHandler) TogglePublish(c *gin.Context) {
	status, err := videoHandler.videoUsecase.TogglePublish(c.Request.Context(), middleware.SubjectID(c), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "publish status toggled", status)
}
