package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"videotube/domain/apperror"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

// TweetRepository is the MongoDB implementation of ITweet.
type TweetRepository struct {
	coll *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) repository.ITweet {
	return &TweetRepository{coll: db.Collection(collTweets)}
}

func (r *TweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	now := time.Now().UTC()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, tweet)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: create tweet failed")
		return mapWriteErr(err, "tweet")
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		tweet.ID = id
	}
	return nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet); err != nil {
		return nil, mapFindErr(err, "tweet")
	}
	return &tweet, nil
}

func (r *TweetRepository) Update(ctx context.Context, tweet *model.Tweet) error {
	tweet.UpdatedAt = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: tweet.ID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: tweet.Content},
			{Key: "updatedAt", Value: tweet.UpdatedAt},
		}}},
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: update tweet failed")
		return mapWriteErr(err, "tweet")
	}
	if res.MatchedCount == 0 {
		return apperror.New(apperror.KindNotFound, "tweet not found")
	}
	return nil
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete tweet failed")
		return mapWriteErr(err, "tweet")
	}
	if res.DeletedCount == 0 {
		return apperror.New(apperror.KindNotFound, "tweet not found")
	}
	return nil
}

func (r *TweetRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, apperror.Wrap(err, apperror.KindUpstream, "tweet existence check failed")
	}
	return count > 0, nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Tweet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindUpstream, "listing tweets failed")
	}
	defer func() { _ = cursor.Close(ctx) }()

	tweets := []model.Tweet{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, apperror.Wrap(err, apperror.KindUpstream, "decoding tweets failed")
	}
	return tweets, nil
}
