package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

// CommentRepository is the MongoDB implementation of IComment.
type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) repository.IComment {
	return &CommentRepository{coll: db.Collection(collComments)}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: create comment failed")
		return mapWriteErr(err, "comment")
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		comment.ID = id
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment); err != nil {
		return nil, mapFindErr(err, "comment")
	}
	return &comment, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	comment.UpdatedAt = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: comment.ID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: comment.Content},
			{Key: "updatedAt", Value: comment.UpdatedAt},
		}}},
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: update comment failed")
		return mapWriteErr(err, "comment")
	}
	if res.MatchedCount == 0 {
		return apperror.New(apperror.KindNotFound, "comment not found")
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete comment failed")
		return mapWriteErr(err, "comment")
	}
	if res.DeletedCount == 0 {
		return apperror.New(apperror.KindNotFound, "comment not found")
	}
	return nil
}

func (r *CommentRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, apperror.Wrap(err, apperror.KindUpstream, "comment existence check failed")
	}
	return count > 0, nil
}

func (r *CommentRepository) Thread(ctx context.Context, videoID bson.ObjectID, page dto.PageRequest) (dto.Page[dto.CommentView], error) {
	return aggregatePaginate[dto.CommentView](ctx, r.coll, commentThreadPipeline(videoID), page)
}
