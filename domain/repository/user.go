package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
)

// IUser defines read access to user documents. Profile mutation flows live
// with the auth service, not here.
type IUser interface {
	GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
}
