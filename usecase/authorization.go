package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
	"videotube/domain/repository"
)

// ResourceKind names the ownership-gated resource families.
type ResourceKind string

const (
	ResourceVideo    ResourceKind = "video"
	ResourceComment  ResourceKind = "comment"
	ResourcePlaylist ResourceKind = "playlist"
	ResourceTweet    ResourceKind = "tweet"
)

// ownerResolver returns every user allowed to mutate the resource. A
// missing resource surfaces as NotFound.
type ownerResolver func(ctx context.Context, id bson.ObjectID) ([]bson.ObjectID, error)

// Authorizer answers "may this actor mutate this resource" with a
// per-kind table of candidate owners. Comments carry the one multi-hop
// rule: the containing video's owner may moderate them.
type Authorizer struct {
	resolvers map[ResourceKind]ownerResolver
}

func NewAuthorizer(
	videoRepo repository.IVideo,
	commentRepo repository.IComment,
	playlistRepo repository.IPlaylist,
	tweetRepo repository.ITweet,
) *Authorizer {
	return &Authorizer{resolvers: map[ResourceKind]ownerResolver{
		ResourceVideo: func(ctx context.Context, id bson.ObjectID) ([]bson.ObjectID, error) {
			video, err := videoRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return []bson.ObjectID{video.Owner}, nil
		},
		ResourcePlaylist: func(ctx context.Context, id bson.ObjectID) ([]bson.ObjectID, error) {
			playlist, err := playlistRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return []bson.ObjectID{playlist.Owner}, nil
		},
		ResourceTweet: func(ctx context.Context, id bson.ObjectID) ([]bson.ObjectID, error) {
			tweet, err := tweetRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return []bson.ObjectID{tweet.Owner}, nil
		},
		ResourceComment: func(ctx context.Context, id bson.ObjectID) ([]bson.ObjectID, error) {
			comment, err := commentRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			candidates := []bson.ObjectID{comment.Owner}
			// The containing video may itself be gone; the comment owner
			// still counts.
			if video, err := videoRepo.GetByID(ctx, comment.Video); err == nil {
				candidates = append(candidates, video.Owner)
			} else if !apperror.IsNotFound(err) {
				return nil, err
			}
			return candidates, nil
		},
	}}
}

// MayMutate returns nil when actor may mutate the resource, NotFound when
// the resource is absent and Forbidden when the actor matches no candidate
// owner. Callers hide the Forbidden/NotFound distinction at their boundary.
func (a *Authorizer) MayMutate(ctx context.Context, actor bson.ObjectID, kind ResourceKind, resource bson.ObjectID) error {
	resolver, ok := a.resolvers[kind]
	if !ok {
		return apperror.Newf(apperror.KindInvalidArgument, "unknown resource kind %q", kind)
	}
	owners, err := resolver(ctx, resource)
	if err != nil {
		return err
	}
	for _, owner := range owners {
		if owner == actor {
			return nil
		}
	}
	return apperror.Newf(apperror.KindForbidden, "not allowed to mutate this %s", kind)
}
