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

// VideoRepository is the MongoDB implementation of IVideo.
type VideoRepository struct {
	coll *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{coll: db.Collection(collVideos)}
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, video)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: create video failed")
		return mapWriteErr(err, "video")
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		video.ID = id
	}
	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	var video model.Video
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video); err != nil {
		return nil, mapFindErr(err, "video")
	}
	return &video, nil
}

func (r *VideoRepository) GetByIDWithOwner(ctx context.Context, id bson.ObjectID) (*dto.VideoWithOwner, error) {
	results, err := aggregateAll[dto.VideoWithOwner](ctx, r.coll, videoWithOwnerPipeline(id))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, apperror.New(apperror.KindNotFound, "video not found")
	}
	return &results[0], nil
}

func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	video.UpdatedAt = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: video.ID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "title", Value: video.Title},
			{Key: "description", Value: video.Description},
			{Key: "thumbnail", Value: video.Thumbnail},
			{Key: "isPublished", Value: video.IsPublished},
			{Key: "updatedAt", Value: video.UpdatedAt},
		}}},
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: update video failed")
		return mapWriteErr(err, "video")
	}
	if res.MatchedCount == 0 {
		return apperror.New(apperror.KindNotFound, "video not found")
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete video failed")
		return mapWriteErr(err, "video")
	}
	if res.DeletedCount == 0 {
		return apperror.New(apperror.KindNotFound, "video not found")
	}
	return nil
}

func (r *VideoRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, apperror.Wrap(err, apperror.KindUpstream, "video existence check failed")
	}
	return count > 0, nil
}

// IncrementViews is a store-level $inc so concurrent viewers never lose
// updates to a read-modify-write cycle.
func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}},
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: increment views failed")
		return mapWriteErr(err, "video")
	}
	return nil
}

func (r *VideoRepository) Feed(ctx context.Context, q repository.VideoFeedQuery) (dto.Page[dto.VideoWithOwner], error) {
	return aggregatePaginate[dto.VideoWithOwner](ctx, r.coll, videoFeedPipeline(q), q.Page)
}

func (r *VideoRepository) ChannelVideos(ctx context.Context, owner bson.ObjectID) ([]dto.VideoWithOwner, error) {
	return aggregateAll[dto.VideoWithOwner](ctx, r.coll, channelVideosPipeline(owner))
}

type channelStatsRow struct {
	TotalViews  int64 `bson:"totalViews"`
	TotalVideos int64 `bson:"totalVideos"`
	TotalLikes  int64 `bson:"totalLikes"`
}

// ChannelStats returns all-zero stats when the owner has no videos; the
// subscriber count is filled in by the dashboard usecase.
func (r *VideoRepository) ChannelStats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, error) {
	rows, err := aggregateAll[channelStatsRow](ctx, r.coll, channelStatsPipeline(owner))
	if err != nil {
		return dto.ChannelStats{}, err
	}
	if len(rows) == 0 {
		return dto.ChannelStats{}, nil
	}
	return dto.ChannelStats{
		TotalViews:  rows[0].TotalViews,
		TotalVideos: rows[0].TotalVideos,
		TotalLikes:  rows[0].TotalLikes,
	}, nil
}
