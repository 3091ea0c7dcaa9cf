package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/apperror"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

// UserRepository is the MongoDB implementation of IUser.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.IUser {
	return &UserRepository{coll: db.Collection(collUsers)}
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if err != nil {
		return nil, mapFindErr(err, "user")
	}
	return &user, nil
}

func (r *UserRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: user existence check failed")
		return false, apperror.Wrap(err, apperror.KindUpstream, "user existence check failed")
	}
	return count > 0, nil
}
