package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
)

type IPlaylistUsecase interface {
	Create(ctx context.Context, ownerHex string, req dto.PlaylistRequest) (*model.Playlist, error)
	ListByUser(ctx context.Context, userHex string) ([]dto.PlaylistSummary, error)
	Detail(ctx context.Context, playlistHex string) (*dto.PlaylistDetail, error)
	AddVideo(ctx context.Context, actorHex, playlistHex, videoHex string) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, actorHex, playlistHex, videoHex string) (*model.Playlist, error)
	Update(ctx context.Context, actorHex, playlistHex string, req dto.PlaylistRequest) (*model.Playlist, error)
	Delete(ctx context.Context, actorHex, playlistHex string) error
}

type playlistUsecase struct {
	playlistRepo repository.IPlaylist
	videoRepo    repository.IVideo
	authorizer   *Authorizer
}

func NewPlaylistUsecase(playlistRepo repository.IPlaylist, videoRepo repository.IVideo, authorizer *Authorizer) IPlaylistUsecase {
	return &playlistUsecase{playlistRepo: playlistRepo, videoRepo: videoRepo, authorizer: authorizer}
}

func (u *playlistUsecase) Create(ctx context.Context, ownerHex string, req dto.PlaylistRequest) (*model.Playlist, error) {
	owner, err := parseID("owner", ownerHex)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.New(apperror.KindInvalidArgument, "name is required")
	}

	playlist := &model.Playlist{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Owner:       owner,
	}
	if err := u.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (u *playlistUsecase) ListByUser(ctx context.Context, userHex string) ([]dto.PlaylistSummary, error) {
	user, err := parseID("user", userHex)
	if err != nil {
		return nil, err
	}
	return u.playlistRepo.ListByOwner(ctx, user)
}

func (u *playlistUsecase) Detail(ctx context.Context, playlistHex string) (*dto.PlaylistDetail, error) {
	id, err := parseID("playlist", playlistHex)
	if err != nil {
		return nil, err
	}
	return u.playlistRepo.Detail(ctx, id)
}

// AddVideo rejects duplicate membership and requires the video to exist.
// The read-modify-write on the membership array accepts a lost update
// under concurrent writers to the same playlist.
func (u *playlistUsecase) AddVideo(ctx context.Context, actorHex, playlistHex, videoHex string) (*model.Playlist, error) {
	playlist, videoID, err := u.membershipArgs(ctx, actorHex, playlistHex, videoHex)
	if err != nil {
		return nil, err
	}

	found, err := u.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.New(apperror.KindNotFound, "video not found")
	}
	if playlist.Contains(videoID) {
		return nil, apperror.New(apperror.KindConflict, "video already in playlist")
	}

	playlist.Videos = append(playlist.Videos, videoID)
	if err := u.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (u *playlistUsecase) RemoveVideo(ctx context.Context, actorHex, playlistHex, videoHex string) (*model.Playlist, error) {
	playlist, videoID, err := u.membershipArgs(ctx, actorHex, playlistHex, videoHex)
	if err != nil {
		return nil, err
	}
	if !playlist.Contains(videoID) {
		return nil, apperror.New(apperror.KindNotFound, "video not in playlist")
	}

	videos := playlist.Videos[:0]
	for _, v := range playlist.Videos {
		if v != videoID {
			videos = append(videos, v)
		}
	}
	playlist.Videos = videos
	if err := u.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// membershipArgs parses ids, checks ownership and loads the playlist for
// both membership mutations.
func (u *playlistUsecase) membershipArgs(ctx context.Context, actorHex, playlistHex, videoHex string) (*model.Playlist, bson.ObjectID, error) {
	var zero bson.ObjectID
	actor, err := parseID("actor", actorHex)
	if err != nil {
		return nil, zero, err
	}
	playlistID, err := parseID("playlist", playlistHex)
	if err != nil {
		return nil, zero, err
	}
	videoID, err := parseID("video", videoHex)
	if err != nil {
		return nil, zero, err
	}
	if err := u.authorizer.MayMutate(ctx, actor, ResourcePlaylist, playlistID); err != nil {
		return nil, zero, hideOwnership(err, "playlist")
	}
	playlist, err := u.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, zero, err
	}
	return playlist, videoID, nil
}

func (u *playlistUsecase) Update(ctx context.Context, actorHex, playlistHex string, req dto.PlaylistRequest) (*model.Playlist, error) {
	actor, err := parseID("actor", actorHex)
	if err != nil {
		return nil, err
	}
	id, err := parseID("playlist", playlistHex)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" && description == "" {
		return nil, apperror.New(apperror.KindInvalidArgument, "nothing to update")
	}

	if err := u.authorizer.MayMutate(ctx, actor, ResourcePlaylist, id); err != nil {
		return nil, hideOwnership(err, "playlist")
	}
	playlist, err := u.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}
	if err := u.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (u *playlistUsecase) Delete(ctx context.Context, actorHex, playlistHex string) error {
	actor, err := parseID("actor", actorHex)
	if err != nil {
		return err
	}
	id, err := parseID("playlist", playlistHex)
	if err != nil {
		return err
	}
	if err := u.authorizer.MayMutate(ctx, actor, ResourcePlaylist, id); err != nil {
		return hideOwnership(err, "playlist")
	}
	return u.playlistRepo.Delete(ctx, id)
}
