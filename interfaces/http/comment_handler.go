package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/interfaces/middleware"
	"videotube/usecase"
)

type ICommentHandler interface {
	Add(c *gin.Context)
	Thread(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (commentHandler *CommentHandler) Add(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: ErrorUnmarshal})
		return
	}

	comment, err := commentHandler.commentUsecase.Add(c.Request.Context(), middleware.SubjectID(c), c.Param("videoId"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "comment added", comment)
}

func (commentHandler *CommentHandler) Thread(c *gin.Context) {
	page, err := commentHandler.commentUsecase.Thread(c.Request.Context(), c.Param("videoId"), c.Query("page"), c.Query("limit"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "comments fetched", page)
}

func (commentHandler *CommentHandler) Update(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: ErrorUnmarshal})
		return
	}

	comment, err := commentHandler.commentUsecase.Update(c.Request.Context(), middleware.SubjectID(c), c.Param("commentId"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "comment updated", comment)
}

func (commentHandler *CommentHandler) Delete(c *gin.Context) {
	if err := commentHandler.commentUsecase.Delete(c.Request.Context(), middleware.SubjectID(c), c.Param("commentId")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "comment deleted", nil)
}
