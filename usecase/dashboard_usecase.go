package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"videotube/domain/dto"
	"videotube/domain/repository"
)

type IDashboardUsecase interface {
	ChannelStats(ctx context.Context, channelHex string) (dto.ChannelStats, error)
	ChannelVideos(ctx context.Context, channelHex string) ([]dto.VideoWithOwner, error)
}

type dashboardUsecase struct {
	videoRepo repository.IVideo
	subRepo   repository.ISubscription
}

func NewDashboardUsecase(videoRepo repository.IVideo, subRepo repository.ISubscription) IDashboardUsecase {
	return &dashboardUsecase{videoRepo: videoRepo, subRepo: subRepo}
}

// ChannelStats runs the video aggregation and the subscriber count
// concurrently; both are independent reads.
func (u *dashboardUsecase) ChannelStats(ctx context.Context, channelHex string) (dto.ChannelStats, error) {
	channel, err := parseID("channel", channelHex)
	if err != nil {
		return dto.ChannelStats{}, err
	}

	var stats dto.ChannelStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := u.videoRepo.ChannelStats(gctx, channel)
		if err != nil {
			return err
		}
		stats.TotalViews = s.TotalViews
		stats.TotalVideos = s.TotalVideos
		stats.TotalLikes = s.TotalLikes
		return nil
	})
	g.Go(func() error {
		count, err := u.subRepo.CountSubscribers(gctx, channel)
		if err != nil {
			return err
		}
		stats.TotalSubscribers = count
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.ChannelStats{}, err
	}
	return stats, nil
}

func (u *dashboardUsecase) ChannelVideos(ctx context.Context, channelHex string) ([]dto.VideoWithOwner, error) {
	channel, err := parseID("channel", channelHex)
	if err != nil {
		return nil, err
	}
	return u.videoRepo.ChannelVideos(ctx, channel)
}
