package persistence

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/repository"
)

// Pipeline builders for the composed views. Kept as pure functions so the
// stage structure is unit-testable without a running store.

// ownerProjection is the user subset every join attaches:
// {username, fullName, avatar}.
var ownerProjection = bson.D{
	{Key: "username", Value: 1},
	{Key: "fullName", Value: 1},
	{Key: "avatar", Value: 1},
}

// userLookupStages joins users via localField into a single embedded
// document under asField. Left-outer: a join miss leaves asField null
// instead of dropping the record.
func userLookupStages(localField, asField string, projection bson.D) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collUsers},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: asField},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: projection}},
			}},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + asField},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

// videoFeedPipeline filters by case-insensitive substring match on title or
// description, embeds the owner projection and sorts by the caller-chosen
// field. Pagination is appended by the caller.
func videoFeedPipeline(q repository.VideoFeedQuery) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if q.Search != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{
			{Key: "$or", Value: bson.A{
				bson.D{{Key: "title", Value: bson.D{{Key: "$regex", Value: q.Search}, {Key: "$options", Value: "i"}}}},
				bson.D{{Key: "description", Value: bson.D{{Key: "$regex", Value: q.Search}, {Key: "$options", Value: "i"}}}},
			}},
		}}})
	}
	pipeline = append(pipeline, userLookupStages("owner", "ownerInfo", ownerProjection)...)
	pipeline = append(pipeline,
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$ownerInfo", nil}}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "ownerInfo", Value: 0}}}},
	)
	order := -1
	if q.SortAscending {
		order = 1
	}
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: q.SortBy, Value: order}}}})
	return pipeline
}

// videoWithOwnerPipeline resolves one video with its owner embedded.
func videoWithOwnerPipeline(id bson.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
	}
	pipeline = append(pipeline, userLookupStages("owner", "ownerInfo", ownerProjection)...)
	return append(pipeline,
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$ownerInfo", nil}}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "ownerInfo", Value: 0}}}},
	)
}

// channelVideosPipeline lists a channel's videos newest first with owner
// embedded.
func channelVideosPipeline(owner bson.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
	}
	pipeline = append(pipeline, userLookupStages("owner", "ownerInfo", ownerProjection)...)
	return append(pipeline,
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$ownerInfo", nil}}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "ownerInfo", Value: 0}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	)
}

// channelStatsPipeline sums views and per-video like counts over every
// video the channel owns.
func channelStatsPipeline(owner bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collLikes},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "video"},
			{Key: "as", Value: "videoLikes"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "likeCount", Value: bson.D{{Key: "$size", Value: "$videoLikes"}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
			{Key: "totalVideos", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalLikes", Value: bson.D{{Key: "$sum", Value: "$likeCount"}}},
		}}},
	}
}

// commentThreadPipeline flattens each comment with its author's username
// and avatar, newest first. Pagination is appended by the caller.
func commentThreadPipeline(videoID bson.ObjectID) mongo.Pipeline {
	commenterProjection := bson.D{
		{Key: "username", Value: 1},
		{Key: "avatar", Value: 1},
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "video", Value: videoID}}}},
	}
	pipeline = append(pipeline, userLookupStages("owner", "commentUser", commenterProjection)...)
	return append(pipeline,
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "username", Value: "$commentUser.username"},
			{Key: "avatar", Value: "$commentUser.avatar"},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "content", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
			{Key: "username", Value: 1},
			{Key: "avatar", Value: 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	)
}

// playlistDetailPipeline expands each member video with its own owner
// projection, embeds the playlist owner and derives videoCount.
func playlistDetailPipeline(id bson.ObjectID) mongo.Pipeline {
	memberVideoStages := bson.A{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collUsers},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videoOwner"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: ownerProjection}},
			}},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$videoOwner"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$videoOwner", nil}}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "videoOwner", Value: 0}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collVideos},
			{Key: "localField", Value: "videos"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videos"},
			{Key: "pipeline", Value: memberVideoStages},
		}}},
	}
	pipeline = append(pipeline, userLookupStages("owner", "playlistOwner", ownerProjection)...)
	return append(pipeline,
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$playlistOwner", nil}}}},
			{Key: "videoCount", Value: bson.D{{Key: "$size", Value: "$videos"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "playlistOwner", Value: 0}}}},
	)
}

// subscriptionUsersPipeline resolves the counterpart user of each
// subscription record: the subscriber list matches on channel and joins
// the subscriber, the subscribed-channel list does the reverse.
func subscriptionUsersPipeline(matchField string, matchID bson.ObjectID, joinField string) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: matchField, Value: matchID}}}},
	}
	pipeline = append(pipeline, userLookupStages(joinField, "userInfo", ownerProjection)...)
	return append(pipeline,
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$userInfo._id"},
			{Key: "username", Value: "$userInfo.username"},
			{Key: "fullName", Value: "$userInfo.fullName"},
			{Key: "avatar", Value: "$userInfo.avatar"},
		}}},
	)
}

// likedVideosPipeline returns the videos a user liked with owners embedded.
// Unlike the owner joins, a missing target video drops the record: the
// root entity of this view must exist.
func likedVideosPipeline(likedBy bson.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "likedBy", Value: likedBy},
			{Key: "video", Value: bson.D{
				{Key: "$exists", Value: true},
				{Key: "$ne", Value: nil},
			}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collVideos},
			{Key: "localField", Value: "video"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videoDetails"},
		}}},
		// No preserveNullAndEmptyArrays here: a like whose video was
		// deleted is excluded entirely.
		{{Key: "$unwind", Value: bson.D{{Key: "path", Value: "$videoDetails"}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collUsers},
			{Key: "localField", Value: "videoDetails.owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "ownerInfo"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: ownerProjection}},
			}},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$ownerInfo"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "videoDetails.owner", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$ownerInfo", nil}}}},
		}}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$videoDetails"}}}},
	}
	return pipeline
}

// userPlaylistsPipeline lists a user's playlists with the derived video
// count, newest first.
func userPlaylistsPipeline(owner bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "videoCount", Value: bson.D{{Key: "$size", Value: "$videos"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "description", Value: 1},
			{Key: "videoCount", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
}
