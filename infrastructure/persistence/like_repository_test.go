package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
)

func TestTargetFilterMapsKindToField(t *testing.T) {
	likedBy := bson.NewObjectID()
	id := bson.NewObjectID()

	for _, kind := range []model.LikeTargetKind{
		model.LikeTargetVideo,
		model.LikeTargetComment,
		model.LikeTargetTweet,
	} {
		target, err := model.NewLikeTarget(kind, id)
		require.NoError(t, err)

		filter := targetFilter(likedBy, target)
		require.Len(t, filter, 2)
		assert.Equal(t, "likedBy", filter[0].Key)
		assert.Equal(t, likedBy, filter[0].Value)
		assert.Equal(t, string(kind), filter[1].Key)
		assert.Equal(t, id, filter[1].Value)
	}
}

func TestPairFilterShape(t *testing.T) {
	channel := bson.NewObjectID()
	subscriber := bson.NewObjectID()

	filter := pairFilter(channel, subscriber)
	require.Len(t, filter, 2)
	assert.Equal(t, "channel", filter[0].Key)
	assert.Equal(t, channel, filter[0].Value)
	assert.Equal(t, "subscriber", filter[1].Key)
	assert.Equal(t, subscriber, filter[1].Value)
}
