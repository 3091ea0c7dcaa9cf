package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
)

// ILike defines persistence operations for like relation records. Create
// relies on the per-kind partial unique indexes: a duplicate (likedBy,
// target) pair surfaces as a Conflict, never as a second record.
type ILike interface {
	Create(ctx context.Context, like *model.Like) error
	// DeleteByTarget removes the relation record and reports whether one
	// existed.
	DeleteByTarget(ctx context.Context, likedBy bson.ObjectID, target model.LikeTarget) (bool, error)
	FindByTarget(ctx context.Context, likedBy bson.ObjectID, target model.LikeTarget) (*model.Like, error)

	// LikedVideos drops entries whose target video vanished (join-miss
	// drop, not null-fill).
	LikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]dto.VideoWithOwner, error)
}
