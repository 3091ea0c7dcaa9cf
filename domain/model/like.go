package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
)

// LikeTargetKind names the single entity kind a like points at.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

// LikeTarget is a tagged (kind, id) pair. Construct through NewLikeTarget
// so a like can never point at more than one kind.
type LikeTarget struct {
	Kind LikeTargetKind
	ID   bson.ObjectID
}

func NewLikeTarget(kind LikeTargetKind, id bson.ObjectID) (LikeTarget, error) {
	switch kind {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
	default:
		return LikeTarget{}, apperror.Newf(apperror.KindInvalidArgument, "unknown like target kind %q", kind)
	}
	if id.IsZero() {
		return LikeTarget{}, apperror.New(apperror.KindInvalidArgument, "like target id is required")
	}
	return LikeTarget{Kind: kind, ID: id}, nil
}

// Like persists with exactly one of Video/Comment/Tweet set; the repository
// maps the tagged target onto that field so the per-kind partial unique
// indexes apply.
type Like struct {
	ID        bson.ObjectID  `json:"id" bson:"_id,omitempty"`
	LikedBy   bson.ObjectID  `json:"likedBy" bson:"likedBy"`
	Video     *bson.ObjectID `json:"video,omitempty" bson:"video,omitempty"`
	Comment   *bson.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	Tweet     *bson.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// NewLike materializes the tagged target onto the matching document field.
func NewLike(likedBy bson.ObjectID, target LikeTarget) Like {
	like := Like{LikedBy: likedBy}
	id := target.ID
	switch target.Kind {
	case LikeTargetVideo:
		like.Video = &id
	case LikeTargetComment:
		like.Comment = &id
	case LikeTargetTweet:
		like.Tweet = &id
	}
	return like
}
