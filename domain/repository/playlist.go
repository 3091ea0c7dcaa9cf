package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
)

// IPlaylist defines persistence operations for playlist documents.
type IPlaylist interface {
	Create(ctx context.Context, playlist *model.Playlist) error
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error)
	Update(ctx context.Context, playlist *model.Playlist) error
	Delete(ctx context.Context, id bson.ObjectID) error

	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]dto.PlaylistSummary, error)
	// Detail expands member videos with their own owner projections.
	Detail(ctx context.Context, id bson.ObjectID) (*dto.PlaylistDetail, error)
}
