package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/usecase"
)

func TestDashboardChannelStats(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	subRepo := new(MockSubscriptionRepository)
	channel := bson.NewObjectID()

	videoRepo.On("ChannelStats", mock.Anything, channel).
		Return(dto.ChannelStats{TotalViews: 120, TotalVideos: 4, TotalLikes: 9}, nil).Once()
	subRepo.On("CountSubscribers", mock.Anything, channel).Return(int64(31), nil).Once()

	uc := usecase.NewDashboardUsecase(videoRepo, subRepo)
	stats, err := uc.ChannelStats(context.Background(), channel.Hex())

	require.NoError(t, err)
	assert.Equal(t, dto.ChannelStats{
		TotalViews:       120,
		TotalVideos:      4,
		TotalLikes:       9,
		TotalSubscribers: 31,
	}, stats)
}

func TestDashboardChannelStats_EmptyChannel(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	subRepo := new(MockSubscriptionRepository)
	channel := bson.NewObjectID()

	videoRepo.On("ChannelStats", mock.Anything, channel).Return(dto.ChannelStats{}, nil).Once()
	subRepo.On("CountSubscribers", mock.Anything, channel).Return(int64(0), nil).Once()

	uc := usecase.NewDashboardUsecase(videoRepo, subRepo)
	stats, err := uc.ChannelStats(context.Background(), channel.Hex())

	require.NoError(t, err)
	assert.Equal(t, dto.ChannelStats{}, stats)
}

func TestDashboardChannelStats_MalformedID(t *testing.T) {
	uc := usecase.NewDashboardUsecase(new(MockVideoRepository), new(MockSubscriptionRepository))
	_, err := uc.ChannelStats(context.Background(), "nope")
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
}

func TestDashboardChannelVideos(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	channel := bson.NewObjectID()
	videoRepo.On("ChannelVideos", mock.Anything, channel).
		Return([]dto.VideoWithOwner{{Title: "first"}}, nil).Once()

	uc := usecase.NewDashboardUsecase(videoRepo, new(MockSubscriptionRepository))
	videos, err := uc.ChannelVideos(context.Background(), channel.Hex())

	require.NoError(t, err)
	assert.Len(t, videos, 1)
}
