package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
	"videotube/domain/model"
	"videotube/usecase"
)

func newLikeUsecase(likeRepo *MockLikeRepository, videoRepo *MockVideoRepository, commentRepo *MockCommentRepository, tweetRepo *MockTweetRepository) usecase.ILikeUsecase {
	return usecase.NewLikeUsecase(likeRepo, videoRepo, commentRepo, tweetRepo)
}

func TestLikeToggle_CreatesWhenAbsent(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	videoRepo := new(MockVideoRepository)
	subject := bson.NewObjectID()
	videoID := bson.NewObjectID()
	target, _ := model.NewLikeTarget(model.LikeTargetVideo, videoID)

	videoRepo.On("Exists", mock.Anything, videoID).Return(true, nil).Once()
	likeRepo.On("FindByTarget", mock.Anything, subject, target).
		Return(nil, apperror.New(apperror.KindNotFound, "like not found")).Once()
	likeRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Like")).Return(nil).Once()

	uc := newLikeUsecase(likeRepo, videoRepo, new(MockCommentRepository), new(MockTweetRepository))
	res, err := uc.Toggle(context.Background(), subject.Hex(), model.LikeTargetVideo, videoID.Hex())

	require.NoError(t, err)
	assert.True(t, res.Active)
	likeRepo.AssertExpectations(t)
	videoRepo.AssertExpectations(t)
}

func TestLikeToggle_DeletesWhenPresent(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	videoRepo := new(MockVideoRepository)
	subject := bson.NewObjectID()
	videoID := bson.NewObjectID()
	target, _ := model.NewLikeTarget(model.LikeTargetVideo, videoID)
	existing := model.NewLike(subject, target)

	videoRepo.On("Exists", mock.Anything, videoID).Return(true, nil).Once()
	likeRepo.On("FindByTarget", mock.Anything, subject, target).Return(&existing, nil).Once()
	likeRepo.On("DeleteByTarget", mock.Anything, subject, target).Return(true, nil).Once()

	uc := newLikeUsecase(likeRepo, videoRepo, new(MockCommentRepository), new(MockTweetRepository))
	res, err := uc.Toggle(context.Background(), subject.Hex(), model.LikeTargetVideo, videoID.Hex())

	require.NoError(t, err)
	assert.False(t, res.Active)
	likeRepo.AssertExpectations(t)
}

func TestLikeToggle_ConflictResolvesAsActive(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	commentRepo := new(MockCommentRepository)
	subject := bson.NewObjectID()
	commentID := bson.NewObjectID()
	target, _ := model.NewLikeTarget(model.LikeTargetComment, commentID)

	commentRepo.On("Exists", mock.Anything, commentID).Return(true, nil).Once()
	likeRepo.On("FindByTarget", mock.Anything, subject, target).
		Return(nil, apperror.New(apperror.KindNotFound, "like not found")).Once()
	// A concurrent toggle won the race: the insert hits the unique index.
	likeRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Like")).
		Return(apperror.New(apperror.KindConflict, "duplicate like")).Once()

	uc := newLikeUsecase(likeRepo, new(MockVideoRepository), commentRepo, new(MockTweetRepository))
	res, err := uc.Toggle(context.Background(), subject.Hex(), model.LikeTargetComment, commentID.Hex())

	require.NoError(t, err)
	assert.True(t, res.Active)
	likeRepo.AssertExpectations(t)
}

func TestLikeToggle_DeleteRemovingNothingIsInactive(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	tweetRepo := new(MockTweetRepository)
	subject := bson.NewObjectID()
	tweetID := bson.NewObjectID()
	target, _ := model.NewLikeTarget(model.LikeTargetTweet, tweetID)
	existing := model.NewLike(subject, target)

	tweetRepo.On("Exists", mock.Anything, tweetID).Return(true, nil).Once()
	likeRepo.On("FindByTarget", mock.Anything, subject, target).Return(&existing, nil).Once()
	// A concurrent toggle already removed the record.
	likeRepo.On("DeleteByTarget", mock.Anything, subject, target).Return(false, nil).Once()

	uc := newLikeUsecase(likeRepo, new(MockVideoRepository), new(MockCommentRepository), tweetRepo)
	res, err := uc.Toggle(context.Background(), subject.Hex(), model.LikeTargetTweet, tweetID.Hex())

	require.NoError(t, err)
	assert.False(t, res.Active)
}

func TestLikeToggle_MissingTarget(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	videoID := bson.NewObjectID()
	videoRepo.On("Exists", mock.Anything, videoID).Return(false, nil).Once()

	uc := newLikeUsecase(new(MockLikeRepository), videoRepo, new(MockCommentRepository), new(MockTweetRepository))
	_, err := uc.Toggle(context.Background(), bson.NewObjectID().Hex(), model.LikeTargetVideo, videoID.Hex())

	assert.True(t, apperror.IsNotFound(err))
}

func TestLikeToggle_MalformedIDs(t *testing.T) {
	uc := newLikeUsecase(new(MockLikeRepository), new(MockVideoRepository), new(MockCommentRepository), new(MockTweetRepository))

	_, err := uc.Toggle(context.Background(), "not-an-id", model.LikeTargetVideo, bson.NewObjectID().Hex())
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))

	_, err = uc.Toggle(context.Background(), bson.NewObjectID().Hex(), model.LikeTargetVideo, "")
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
}

func TestLikedVideos(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	subject := bson.NewObjectID()
	likeRepo.On("LikedVideos", mock.Anything, subject).Return(nil, nil).Once()

	uc := newLikeUsecase(likeRepo, new(MockVideoRepository), new(MockCommentRepository), new(MockTweetRepository))
	videos, err := uc.LikedVideos(context.Background(), subject.Hex())

	require.NoError(t, err)
	assert.Empty(t, videos)
}
