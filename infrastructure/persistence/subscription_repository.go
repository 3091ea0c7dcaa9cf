package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

// SubscriptionRepository is the MongoDB implementation of ISubscription.
// The unique (channel, subscriber) index makes Create single-flight per pair.
type SubscriptionRepository struct {
	coll *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) repository.ISubscription {
	return &SubscriptionRepository{coll: db.Collection(collSubscriptions)}
}

func pairFilter(channel, subscriber bson.ObjectID) bson.D {
	return bson.D{
		{Key: "channel", Value: channel},
		{Key: "subscriber", Value: subscriber},
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, sub)
	if err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			logger.GetLogger().WithField("error", err).Error("mongo: create subscription failed")
		}
		return mapWriteErr(err, "subscription")
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		sub.ID = id
	}
	return nil
}

func (r *SubscriptionRepository) DeleteByPair(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, pairFilter(channel, subscriber))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete subscription failed")
		return false, mapWriteErr(err, "subscription")
	}
	return res.DeletedCount > 0, nil
}

func (r *SubscriptionRepository) FindByPair(ctx context.Context, channel, subscriber bson.ObjectID) (*model.Subscription, error) {
	var sub model.Subscription
	if err := r.coll.FindOne(ctx, pairFilter(channel, subscriber)).Decode(&sub); err != nil {
		return nil, mapFindErr(err, "subscription")
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Subscribers(ctx context.Context, channel bson.ObjectID) ([]dto.ChannelUser, error) {
	return aggregateAll[dto.ChannelUser](ctx, r.coll, subscriptionUsersPipeline("channel", channel, "subscriber"))
}

func (r *SubscriptionRepository) SubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]dto.ChannelUser, error) {
	return aggregateAll[dto.ChannelUser](ctx, r.coll, subscriptionUsersPipeline("subscriber", subscriber, "channel"))
}

func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channel bson.ObjectID) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{{Key: "channel", Value: channel}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: count subscribers failed")
		return 0, mapWriteErr(err, "subscription")
	}
	return count, nil
}
