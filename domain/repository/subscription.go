package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
)

// ISubscription defines persistence operations for subscription records.
// Create relies on the (channel, subscriber) unique index for single-flight
// semantics under concurrent toggles.
type ISubscription interface {
	Create(ctx context.Context, sub *model.Subscription) error
	DeleteByPair(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error)
	FindByPair(ctx context.Context, channel, subscriber bson.ObjectID) (*model.Subscription, error)

	Subscribers(ctx context.Context, channel bson.ObjectID) ([]dto.ChannelUser, error)
	SubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]dto.ChannelUser, error)
	CountSubscribers(ctx context.Context, channel bson.ObjectID) (int64, error)
}
