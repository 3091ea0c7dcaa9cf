package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
)

// ITweet defines persistence operations for tweet documents.
type ITweet interface {
	Create(ctx context.Context, tweet *model.Tweet) error
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error)
	Update(ctx context.Context, tweet *model.Tweet) error
	Delete(ctx context.Context, id bson.ObjectID) error
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)

	// ListByOwner returns a user's tweets, newest first.
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Tweet, error)
}
