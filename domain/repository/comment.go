package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
)

// IComment defines persistence operations for comment documents.
type IComment interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id bson.ObjectID) error
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)

	// Thread returns the paginated comment view for a video, newest first.
	Thread(ctx context.Context, videoID bson.ObjectID, page dto.PageRequest) (dto.Page[dto.CommentView], error)
}
