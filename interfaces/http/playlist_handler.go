package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/interfaces/middleware"
	"videotube/usecase"
)

type IPlaylistHandler interface {
	Create(c *gin.Context)
	ListByUser(c *gin.Context)
	Detail(c *gin.Context)
	AddVideo(c *gin.Context)
	RemoveVideo(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type PlaylistHandler struct {
	playlistUsecase usecase.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecase.IPlaylistUsecase) IPlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

func (playlistHandler *PlaylistHandler) Create(c *gin.Context) {
	var req dto.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: ErrorUnmarshal})
		return
	}

	playlist, err := playlistHandler.playlistUsecase.Create(c.Request.Context(), middleware.SubjectID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "playlist created", playlist)
}

func (playlistHandler *PlaylistHandler) ListByUser(c *gin.Context) {
	playlists, err := playlistHandler.playlistUsecase.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "playlists fetched", playlists)
}

func (playlistHandler *PlaylistHandler) Detail(c *gin.Context) {
	detail, err := playlistHandler.playlistUsecase.Detail(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "playlist fetched", detail)
}

func (playlistHandler *PlaylistHandler) AddVideo(c *gin.Context) {
	playlist, err := playlistHandler.playlistUsecase.AddVideo(c.Request.Context(), middleware.SubjectID(c), c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "video added to playlist", playlist)
}

func (playlistHandler *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlist, err := playlistHandler.playlistUsecase.RemoveVideo(c.Request.Context(), middleware.SubjectID(c), c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "video removed from playlist", playlist)
}

func (playlistHandler *PlaylistHandler) Update(c *gin.Context) {
	var req dto.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: ErrorUnmarshal})
		return
	}

	playlist, err := playlistHandler.playlistUsecase.Update(c.Request.Context(), middleware.SubjectID(c), c.Param("playlistId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "playlist updated", playlist)
}

func (playlistHandler *PlaylistHandler) Delete(c *gin.Context) {
	if err := playlistHandler.playlistUsecase.Delete(c.Request.Context(), middleware.SubjectID(c), c.Param("playlistId")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "playlist deleted", nil)
}
