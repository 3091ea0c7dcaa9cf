package usecase

import (
	"context"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type ISubscriptionUsecase interface {
	Toggle(ctx context.Context, subscriberHex, channelHex string) (dto.ToggleResult, error)
	Subscribers(ctx context.Context, channelHex string) ([]dto.ChannelUser, error)
	SubscribedChannels(ctx context.Context, subscriberHex string) ([]dto.ChannelUser, error)
	CountSubscribers(ctx context.Context, channelHex string) (int64, error)
}

type subscriptionUsecase struct {
	subRepo  repository.ISubscription
	userRepo repository.IUser
}

func NewSubscriptionUsecase(subRepo repository.ISubscription, userRepo repository.IUser) ISubscriptionUsecase {
	return &subscriptionUsecase{subRepo: subRepo, userRepo: userRepo}
}

// Toggle flips the subscription for (channel, subscriber) under the same
// conflict re-resolution the like toggle uses. Self-subscription is
// rejected before any store call.
func (u *subscriptionUsecase) Toggle(ctx context.Context, subscriberHex, channelHex string) (dto.ToggleResult, error) {
	var zero dto.ToggleResult

	subscriber, err := parseID("subscriber", subscriberHex)
	if err != nil {
		return zero, err
	}
	channel, err := parseID("channel", channelHex)
	if err != nil {
		return zero, err
	}
	if channel == subscriber {
		return zero, apperror.New(apperror.KindInvalidArgument, "cannot subscribe to yourself")
	}

	found, err := u.userRepo.Exists(ctx, channel)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, apperror.New(apperror.KindNotFound, "channel not found")
	}

	_, err = u.subRepo.FindByPair(ctx, channel, subscriber)
	switch {
	case err == nil:
		if _, err := u.subRepo.DeleteByPair(ctx, channel, subscriber); err != nil {
			return zero, err
		}
		return dto.ToggleResult{Active: false}, nil
	case apperror.IsNotFound(err):
		sub := model.Subscription{Channel: channel, Subscriber: subscriber}
		if err := u.subRepo.Create(ctx, &sub); err != nil {
			if apperror.IsConflict(err) {
				logger.GetLogger().
					WithField("channel", channel.Hex()).
					WithField("subscriber", subscriber.Hex()).
					Info("subscription toggle re-resolved after conflict")
				return dto.ToggleResult{Active: true}, nil
			}
			return zero, err
		}
		return dto.ToggleResult{Active: true}, nil
	default:
		return zero, err
	}
}

func (u *subscriptionUsecase) Subscribers(ctx context.Context, channelHex string) ([]dto.ChannelUser, error) {
	channel, err := parseID("channel", channelHex)
	if err != nil {
		return nil, err
	}
	return u.subRepo.Subscribers(ctx, channel)
}

func (u *subscriptionUsecase) SubscribedChannels(ctx context.Context, subscriberHex string) ([]dto.ChannelUser, error) {
	subscriber, err := parseID("subscriber", subscriberHex)
	if err != nil {
		return nil, err
	}
	return u.subRepo.SubscribedChannels(ctx, subscriber)
}

func (u *subscriptionUsecase) CountSubscribers(ctx context.Context, channelHex string) (int64, error) {
	channel, err := parseID("channel", channelHex)
	if err != nil {
		return 0, err
	}
	return u.subRepo.CountSubscribers(ctx, channel)
}
