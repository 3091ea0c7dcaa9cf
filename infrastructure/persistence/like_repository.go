package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

// LikeRepository is the MongoDB implementation of ILike. The per-kind
// partial unique indexes (see EnsureIndexes) make Create single-flight per
// (likedBy, target); a lost race surfaces as Conflict.
type LikeRepository struct {
	coll *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) repository.ILike {
	return &LikeRepository{coll: db.Collection(collLikes)}
}

// targetFilter maps the tagged target onto the per-kind document field.
func targetFilter(likedBy bson.ObjectID, target model.LikeTarget) bson.D {
	return bson.D{
		{Key: "likedBy", Value: likedBy},
		{Key: string(target.Kind), Value: target.ID},
	}
}

func (r *LikeRepository) Create(ctx context.Context, like *model.Like) error {
	now := time.Now().UTC()
	like.CreatedAt = now
	like.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, like)
	if err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			logger.GetLogger().WithField("error", err).Error("mongo: create like failed")
		}
		return mapWriteErr(err, "like")
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		like.ID = id
	}
	return nil
}

func (r *LikeRepository) DeleteByTarget(ctx context.Context, likedBy bson.ObjectID, target model.LikeTarget) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, targetFilter(likedBy, target))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete like failed")
		return false, mapWriteErr(err, "like")
	}
	return res.DeletedCount > 0, nil
}

func (r *LikeRepository) FindByTarget(ctx context.Context, likedBy bson.ObjectID, target model.LikeTarget) (*model.Like, error) {
	var like model.Like
	if err := r.coll.FindOne(ctx, targetFilter(likedBy, target)).Decode(&like); err != nil {
		return nil, mapFindErr(err, "like")
	}
	return &like, nil
}

func (r *LikeRepository) LikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]dto.VideoWithOwner, error) {
	return aggregateAll[dto.VideoWithOwner](ctx, r.coll, likedVideosPipeline(likedBy))
}
