package usecase

import (
	"context"
	"strings"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
)

type ICommentUsecase interface {
	Add(ctx context.Context, ownerHex, videoHex, content string) (*model.Comment, error)
	Thread(ctx context.Context, videoHex, page, limit string) (dto.Page[dto.CommentView], error)
	Update(ctx context.Context, actorHex, commentHex, content string) (*model.Comment, error)
	Delete(ctx context.Context, actorHex, commentHex string) error
}

type commentUsecase struct {
	commentRepo repository.IComment
	videoRepo   repository.IVideo
	authorizer  *Authorizer
}

func NewCommentUsecase(commentRepo repository.IComment, videoRepo repository.IVideo, authorizer *Authorizer) ICommentUsecase {
	return &commentUsecase{commentRepo: commentRepo, videoRepo: videoRepo, authorizer: authorizer}
}

// Add accepts comments on any existing video regardless of its publish
// state.
func (u *commentUsecase) Add(ctx context.Context, ownerHex, videoHex, content string) (*model.Comment, error) {
	owner, err := parseID("owner", ownerHex)
	if err != nil {
		return nil, err
	}
	videoID, err := parseID("video", videoHex)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.New(apperror.KindInvalidArgument, "content is required")
	}

	found, err := u.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.New(apperror.KindNotFound, "video not found")
	}

	comment := &model.Comment{Content: content, Video: videoID, Owner: owner}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (u *commentUsecase) Thread(ctx context.Context, videoHex, page, limit string) (dto.Page[dto.CommentView], error) {
	var zero dto.Page[dto.CommentView]
	videoID, err := parseID("video", videoHex)
	if err != nil {
		return zero, err
	}
	found, err := u.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, apperror.New(apperror.KindNotFound, "video not found")
	}
	return u.commentRepo.Thread(ctx, videoID, dto.ParsePageRequest(page, limit))
}

// Update is owner-only; the video owner's moderation right covers delete
// but not edit.
func (u *commentUsecase) Update(ctx context.Context, actorHex, commentHex, content string) (*model.Comment, error) {
	actor, err := parseID("actor", actorHex)
	if err != nil {
		return nil, err
	}
	id, err := parseID("comment", commentHex)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.New(apperror.KindInvalidArgument, "content is required")
	}

	comment, err := u.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.Owner != actor {
		return nil, apperror.New(apperror.KindNotFound, "comment not found")
	}

	comment.Content = content
	if err := u.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete allows the comment owner or, by delegation, the owner of the
// containing video.
func (u *commentUsecase) Delete(ctx context.Context, actorHex, commentHex string) error {
	actor, err := parseID("actor", actorHex)
	if err != nil {
		return err
	}
	id, err := parseID("comment", commentHex)
	if err != nil {
		return err
	}
	if err := u.authorizer.MayMutate(ctx, actor, ResourceComment, id); err != nil {
		return hideOwnership(err, "comment")
	}
	return u.commentRepo.Delete(ctx, id)
}
