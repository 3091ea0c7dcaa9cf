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
	"videotube/domain/model"
	"videotube/usecase"
)

func TestSubscriptionToggle_SelfSubscriptionRejected(t *testing.T) {
	uc := usecase.NewSubscriptionUsecase(new(MockSubscriptionRepository), new(MockUserRepository))
	id := bson.NewObjectID().Hex()

	_, err := uc.Toggle(context.Background(), id, id)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
}

func TestSubscriptionToggle_MissingChannel(t *testing.T) {
	userRepo := new(MockUserRepository)
	channel := bson.NewObjectID()
	userRepo.On("Exists", mock.Anything, channel).Return(false, nil).Once()

	uc := usecase.NewSubscriptionUsecase(new(MockSubscriptionRepository), userRepo)
	_, err := uc.Toggle(context.Background(), bson.NewObjectID().Hex(), channel.Hex())

	assert.True(t, apperror.IsNotFound(err))
}

func TestSubscriptionToggle_CreatesWhenAbsent(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	channel := bson.NewObjectID()
	subscriber := bson.NewObjectID()

	userRepo.On("Exists", mock.Anything, channel).Return(true, nil).Once()
	subRepo.On("FindByPair", mock.Anything, channel, subscriber).
		Return(nil, apperror.New(apperror.KindNotFound, "subscription not found")).Once()
	subRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Subscription")).Return(nil).Once()

	uc := usecase.NewSubscriptionUsecase(subRepo, userRepo)
	res, err := uc.Toggle(context.Background(), subscriber.Hex(), channel.Hex())

	require.NoError(t, err)
	assert.True(t, res.Active)
	subRepo.AssertExpectations(t)
}

func TestSubscriptionToggle_ConflictResolvesAsActive(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	channel := bson.NewObjectID()
	subscriber := bson.NewObjectID()

	userRepo.On("Exists", mock.Anything, channel).Return(true, nil).Once()
	subRepo.On("FindByPair", mock.Anything, channel, subscriber).
		Return(nil, apperror.New(apperror.KindNotFound, "subscription not found")).Once()
	subRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Subscription")).
		Return(apperror.New(apperror.KindConflict, "duplicate subscription")).Once()

	uc := usecase.NewSubscriptionUsecase(subRepo, userRepo)
	res, err := uc.Toggle(context.Background(), subscriber.Hex(), channel.Hex())

	require.NoError(t, err)
	assert.True(t, res.Active)
}

func TestSubscriptionToggle_DeletesWhenPresent(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	channel := bson.NewObjectID()
	subscriber := bson.NewObjectID()

	userRepo.On("Exists", mock.Anything, channel).Return(true, nil).Once()
	subRepo.On("FindByPair", mock.Anything, channel, subscriber).
		Return(&model.Subscription{Channel: channel, Subscriber: subscriber}, nil).Once()
	subRepo.On("DeleteByPair", mock.Anything, channel, subscriber).Return(true, nil).Once()

	uc := usecase.NewSubscriptionUsecase(subRepo, userRepo)
	res, err := uc.Toggle(context.Background(), subscriber.Hex(), channel.Hex())

	require.NoError(t, err)
	assert.False(t, res.Active)
}

func TestSubscriptionLists(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	channel := bson.NewObjectID()
	subscriber := bson.NewObjectID()

	subRepo.On("Subscribers", mock.Anything, channel).Return([]dto.ChannelUser{{Username: "alice"}}, nil).Once()
	subRepo.On("SubscribedChannels", mock.Anything, subscriber).Return([]dto.ChannelUser{}, nil).Once()

	uc := usecase.NewSubscriptionUsecase(subRepo, new(MockUserRepository))

	subs, err := uc.Subscribers(context.Background(), channel.Hex())
	require.NoError(t, err)
	assert.Len(t, subs, 1)

	channels, err := uc.SubscribedChannels(context.Background(), subscriber.Hex())
	require.NoError(t, err)
	assert.Empty(t, channels)
}
