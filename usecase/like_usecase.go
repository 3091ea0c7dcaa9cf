package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type ILikeUsecase interface {
	Toggle(ctx context.Context, subjectHex string, kind model.LikeTargetKind, targetHex string) (dto.ToggleResult, error)
	LikedVideos(ctx context.Context, subjectHex string) ([]dto.VideoWithOwner, error)
}

type existsFn func(ctx context.Context, id bson.ObjectID) (bool, error)

type likeUsecase struct {
	likeRepo repository.ILike
	exists   map[model.LikeTargetKind]existsFn
}

func NewLikeUsecase(
	likeRepo repository.ILike,
	videoRepo repository.IVideo,
	commentRepo repository.IComment,
	tweetRepo repository.ITweet,
) ILikeUsecase {
	return &likeUsecase{
		likeRepo: likeRepo,
		exists: map[model.LikeTargetKind]existsFn{
			model.LikeTargetVideo:   videoRepo.Exists,
			model.LikeTargetComment: commentRepo.Exists,
			model.LikeTargetTweet:   tweetRepo.Exists,
		},
	}
}

// Toggle flips the like relation for (subject, target) and reports the
// resulting state. The unique index on the like collection turns a lost
// read race into a Conflict on create, which re-resolves as already
// active; a delete that removed nothing resolves as already inactive.
// Conflict never reaches the caller.
func (u *likeUsecase) Toggle(ctx context.Context, subjectHex string, kind model.LikeTargetKind, targetHex string) (dto.ToggleResult, error) {
	var zero dto.ToggleResult

	subject, err := parseID("subject", subjectHex)
	if err != nil {
		return zero, err
	}
	targetID, err := parseID(string(kind), targetHex)
	if err != nil {
		return zero, err
	}
	target, err := model.NewLikeTarget(kind, targetID)
	if err != nil {
		return zero, err
	}

	check, ok := u.exists[kind]
	if !ok {
		return zero, apperror.Newf(apperror.KindInvalidArgument, "unknown like target kind %q", kind)
	}
	found, err := check(ctx, targetID)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, apperror.Newf(apperror.KindNotFound, "%s not found", kind)
	}

	_, err = u.likeRepo.FindByTarget(ctx, subject, target)
	switch {
	case err == nil:
		if _, err := u.likeRepo.DeleteByTarget(ctx, subject, target); err != nil {
			return zero, err
		}
		return dto.ToggleResult{Active: false}, nil
	case apperror.IsNotFound(err):
		like := model.NewLike(subject, target)
		if err := u.likeRepo.Create(ctx, &like); err != nil {
			if apperror.IsConflict(err) {
				// Lost the read race; the relation already exists.
				logger.GetLogger().
					WithField("subject", subject.Hex()).
					WithField("target", targetID.Hex()).
					Info("like toggle re-resolved after conflict")
				return dto.ToggleResult{Active: true}, nil
			}
			return zero, err
		}
		return dto.ToggleResult{Active: true}, nil
	default:
		return zero, err
	}
}

func (u *likeUsecase) LikedVideos(ctx context.Context, subjectHex string) ([]dto.VideoWithOwner, error) {
	subject, err := parseID("subject", subjectHex)
	if err != nil {
		return nil, err
	}
	return u.likeRepo.LikedVideos(ctx, subject)
}
