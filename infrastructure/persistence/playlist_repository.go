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

// PlaylistRepository is the MongoDB implementation of IPlaylist.
type PlaylistRepository struct {
	coll *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) repository.IPlaylist {
	return &PlaylistRepository{coll: db.Collection(collPlaylists)}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	now := time.Now().UTC()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []bson.ObjectID{}
	}
	res, err := r.coll.InsertOne(ctx, playlist)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: create playlist failed")
		return mapWriteErr(err, "playlist")
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		playlist.ID = id
	}
	return nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&playlist); err != nil {
		return nil, mapFindErr(err, "playlist")
	}
	return &playlist, nil
}

// Update persists metadata and the whole membership array. Concurrent
// writers to the same playlist can lose an update; see DESIGN.md.
func (r *PlaylistRepository) Update(ctx context.Context, playlist *model.Playlist) error {
	playlist.UpdatedAt = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: playlist.ID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "name", Value: playlist.Name},
			{Key: "description", Value: playlist.Description},
			{Key: "videos", Value: playlist.Videos},
			{Key: "updatedAt", Value: playlist.UpdatedAt},
		}}},
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: update playlist failed")
		return mapWriteErr(err, "playlist")
	}
	if res.MatchedCount == 0 {
		return apperror.New(apperror.KindNotFound, "playlist not found")
	}
	return nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete playlist failed")
		return mapWriteErr(err, "playlist")
	}
	if res.DeletedCount == 0 {
		return apperror.New(apperror.KindNotFound, "playlist not found")
	}
	return nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]dto.PlaylistSummary, error) {
	return aggregateAll[dto.PlaylistSummary](ctx, r.coll, userPlaylistsPipeline(owner))
}

func (r *PlaylistRepository) Detail(ctx context.Context, id bson.ObjectID) (*dto.PlaylistDetail, error) {
	results, err := aggregateAll[dto.PlaylistDetail](ctx, r.coll, playlistDetailPipeline(id))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, apperror.New(apperror.KindNotFound, "playlist not found")
	}
	if results[0].Videos == nil {
		results[0].Videos = []dto.VideoWithOwner{}
	}
	return &results[0], nil
}
