package usecase_test

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
)

// Mock implementations of the store adapter interfaces.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByIDWithOwner(ctx context.Context, id bson.ObjectID) (*dto.VideoWithOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VideoWithOwner), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, video *model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) Feed(ctx context.Context, q repository.VideoFeedQuery) (dto.Page[dto.VideoWithOwner], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(dto.Page[dto.VideoWithOwner]), args.Error(1)
}

func (m *MockVideoRepository) ChannelVideos(ctx context.Context, owner bson.ObjectID) ([]dto.VideoWithOwner, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VideoWithOwner), args.Error(1)
}

func (m *MockVideoRepository) ChannelStats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(dto.ChannelStats), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepository) Thread(ctx context.Context, videoID bson.ObjectID, page dto.PageRequest) (dto.Page[dto.CommentView], error) {
	args := m.Called(ctx, videoID, page)
	return args.Get(0).(dto.Page[dto.CommentView]), args.Error(1)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, playlist *model.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]dto.PlaylistSummary, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PlaylistSummary), args.Error(1)
}

func (m *MockPlaylistRepository) Detail(ctx context.Context, id bson.ObjectID) (*dto.PlaylistDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PlaylistDetail), args.Error(1)
}

type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Update(ctx context.Context, tweet *model.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTweetRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTweetRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Tweet, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tweet), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, like *model.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteByTarget(ctx context.Context, likedBy bson.ObjectID, target model.LikeTarget) (bool, error) {
	args := m.Called(ctx, likedBy, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) FindByTarget(ctx context.Context, likedBy bson.ObjectID, target model.LikeTarget) (*model.Like, error) {
	args := m.Called(ctx, likedBy, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeRepository) LikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]dto.VideoWithOwner, error) {
	args := m.Called(ctx, likedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.VideoWithOwner), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteByPair(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	args := m.Called(ctx, channel, subscriber)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) FindByPair(ctx context.Context, channel, subscriber bson.ObjectID) (*model.Subscription, error) {
	args := m.Called(ctx, channel, subscriber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Subscribers(ctx context.Context, channel bson.ObjectID) ([]dto.ChannelUser, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ChannelUser), args.Error(1)
}

func (m *MockSubscriptionRepository) SubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]dto.ChannelUser, error) {
	args := m.Called(ctx, subscriber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ChannelUser), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribers(ctx context.Context, channel bson.ObjectID) (int64, error) {
	args := m.Called(ctx, channel)
	return args.Get(0).(int64), args.Error(1)
}

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Store(ctx context.Context, file *multipart.FileHeader, resourceType string) (*model.MediaAsset, error) {
	args := m.Called(ctx, file, resourceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MediaAsset), args.Error(1)
}

func (m *MockMediaStore) Remove(ctx context.Context, assetURL string, resourceType string) error {
	args := m.Called(ctx, assetURL, resourceType)
	return args.Error(0)
}
