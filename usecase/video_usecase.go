package usecase

import (
	"context"
	"mime/multipart"
	"strings"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

// Feed sort fields callers may choose from.
var feedSortFields = map[string]struct{}{
	"createdAt": {},
	"views":     {},
	"duration":  {},
	"title":     {},
}

type IVideoUsecase interface {
	Publish(ctx context.Context, ownerHex, title, description string, videoFile, thumbnail *multipart.FileHeader) (*model.Video, error)
	Feed(ctx context.Context, req dto.VideoFeedRequest) (dto.Page[dto.VideoWithOwner], error)
	GetByID(ctx context.Context, videoHex string) (*dto.VideoWithOwner, error)
	Update(ctx context.Context, actorHex, videoHex string, req dto.VideoUpdateRequest, thumbnail *multipart.FileHeader) (*model.Video, error)
	Delete(ctx context.Context, actorHex, videoHex string) error
	TogglePublish(ctx context.Context, actorHex, videoHex string) (dto.PublishStatus, error)
}

type videoUsecase struct {
	videoRepo  repository.IVideo
	mediaStore repository.IMedia
	authorizer *Authorizer
}

func NewVideoUsecase(videoRepo repository.IVideo, mediaStore repository.IMedia, authorizer *Authorizer) IVideoUsecase {
	return &videoUsecase{videoRepo: videoRepo, mediaStore: mediaStore, authorizer: authorizer}
}

// Publish uploads both files, takes the duration the media backend
// extracted and persists the video as published.
func (u *videoUsecase) Publish(ctx context.Context, ownerHex, title, description string, videoFile, thumbnail *multipart.FileHeader) (*model.Video, error) {
	owner, err := parseID("owner", ownerHex)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, apperror.New(apperror.KindInvalidArgument, "title and description are required")
	}
	if videoFile == nil {
		return nil, apperror.New(apperror.KindInvalidArgument, "video file is required")
	}
	if thumbnail == nil {
		return nil, apperror.New(apperror.KindInvalidArgument, "thumbnail is required")
	}

	videoAsset, err := u.mediaStore.Store(ctx, videoFile, repository.MediaTypeVideo)
	if err != nil {
		return nil, err
	}
	thumbAsset, err := u.mediaStore.Store(ctx, thumbnail, repository.MediaTypeImage)
	if err != nil {
		return nil, err
	}

	video := &model.Video{
		Title:       title,
		Description: description,
		VideoFile:   videoAsset.URL,
		Thumbnail:   thumbAsset.URL,
		Duration:    videoAsset.Duration,
		IsPublished: true,
		Owner:       owner,
	}
	if err := u.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (u *videoUsecase) Feed(ctx context.Context, req dto.VideoFeedRequest) (dto.Page[dto.VideoWithOwner], error) {
	sortBy := req.SortBy
	if _, ok := feedSortFields[sortBy]; !ok {
		sortBy = "createdAt"
	}
	q := repository.VideoFeedQuery{
		Search:        strings.TrimSpace(req.Query),
		SortBy:        sortBy,
		SortAscending: strings.EqualFold(req.SortType, "asc"),
		Page:          dto.ParsePageRequest(req.Page, req.Limit),
	}
	return u.videoRepo.Feed(ctx, q)
}

// GetByID bumps the view counter before composing the detail view, so the
// returned record already reflects this read.
func (u *videoUsecase) GetByID(ctx context.Context, videoHex string) (*dto.VideoWithOwner, error) {
	id, err := parseID("video", videoHex)
	if err != nil {
		return nil, err
	}
	if err := u.videoRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return u.videoRepo.GetByIDWithOwner(ctx, id)
}

func (u *videoUsecase) Update(ctx context.Context, actorHex, videoHex string, req dto.VideoUpdateRequest, thumbnail *multipart.FileHeader) (*model.Video, error) {
	actor, err := parseID("actor", actorHex)
	if err != nil {
		return nil, err
	}
	id, err := parseID("video", videoHex)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" && description == "" && thumbnail == nil {
		return nil, apperror.New(apperror.KindInvalidArgument, "nothing to update")
	}

	if err := u.authorizer.MayMutate(ctx, actor, ResourceVideo, id); err != nil {
		return nil, hideOwnership(err, "video")
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != "" {
		video.Title = title
	}
	if description != "" {
		video.Description = description
	}
	oldThumbnail := ""
	if thumbnail != nil {
		asset, err := u.mediaStore.Store(ctx, thumbnail, repository.MediaTypeImage)
		if err != nil {
			return nil, err
		}
		oldThumbnail = video.Thumbnail
		video.Thumbnail = asset.URL
	}

	if err := u.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}
	if oldThumbnail != "" {
		u.removeAsset(ctx, oldThumbnail, repository.MediaTypeImage)
	}
	return video, nil
}

// Delete removes the record first; media cleanup is best-effort and only
// logged on failure.
func (u *videoUsecase) Delete(ctx context.Context, actorHex, videoHex string) error {
	actor, err := parseID("actor", actorHex)
	if err != nil {
		return err
	}
	id, err := parseID("video", videoHex)
	if err != nil {
		return err
	}
	if err := u.authorizer.MayMutate(ctx, actor, ResourceVideo, id); err != nil {
		return hideOwnership(err, "video")
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.videoRepo.Delete(ctx, id); err != nil {
		return err
	}
	u.removeAsset(ctx, video.VideoFile, repository.MediaTypeVideo)
	u.removeAsset(ctx, video.Thumbnail, repository.MediaTypeImage)
	return nil
}

func (u *videoUsecase) TogglePublish(ctx context.Context, actorHex, videoHex string) (dto.PublishStatus, error) {
	var zero dto.PublishStatus

	actor, err := parseID("actor", actorHex)
	if err != nil {
		return zero, err
	}
	id, err := parseID("video", videoHex)
	if err != nil {
		return zero, err
	}
	if err := u.authorizer.MayMutate(ctx, actor, ResourceVideo, id); err != nil {
		return zero, hideOwnership(err, "video")
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	video.IsPublished = !video.IsPublished
	if err := u.videoRepo.Update(ctx, video); err != nil {
		return zero, err
	}
	return dto.PublishStatus{Video: video, IsPublished: video.IsPublished}, nil
}

func (u *videoUsecase) removeAsset(ctx context.Context, assetURL, resourceType string) {
	if assetURL == "" {
		return
	}
	if err := u.mediaStore.Remove(ctx, assetURL, resourceType); err != nil {
		logger.GetLogger().
			WithField("error", err).
			WithField("url", assetURL).
			Warn("media cleanup failed")
	}
}
