package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
)

// VideoFeedQuery is the normalized feed query the pipeline is built from.
type VideoFeedQuery struct {
	Search        string
	SortBy        string
	SortAscending bool
	Page          dto.PageRequest
}

// IVideo defines persistence operations for video documents, including the
// composed feed and channel views.
type IVideo interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error)
	GetByIDWithOwner(ctx context.Context, id bson.ObjectID) (*dto.VideoWithOwner, error)
	Update(ctx context.Context, video *model.Video) error
	Delete(ctx context.Context, id bson.ObjectID) error
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)

	// IncrementViews is a store-level atomic counter update; callers never
	// read-modify-write the views field.
	IncrementViews(ctx context.Context, id bson.ObjectID) error

	Feed(ctx context.Context, q VideoFeedQuery) (dto.Page[dto.VideoWithOwner], error)
	ChannelVideos(ctx context.Context, owner bson.ObjectID) ([]dto.VideoWithOwner, error)
	ChannelStats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, error)
}
