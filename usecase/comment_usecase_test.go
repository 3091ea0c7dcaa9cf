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

func newCommentUsecase(commentRepo *MockCommentRepository, videoRepo *MockVideoRepository) usecase.ICommentUsecase {
	authz := usecase.NewAuthorizer(videoRepo, commentRepo, new(MockPlaylistRepository), new(MockTweetRepository))
	return usecase.NewCommentUsecase(commentRepo, videoRepo, authz)
}

func TestCommentAdd(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	owner := bson.NewObjectID()
	videoID := bson.NewObjectID()

	videoRepo.On("Exists", mock.Anything, videoID).Return(true, nil).Once()
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil).Once()

	uc := newCommentUsecase(commentRepo, videoRepo)
	comment, err := uc.Add(context.Background(), owner.Hex(), videoID.Hex(), "  nice video  ")

	require.NoError(t, err)
	assert.Equal(t, "nice video", comment.Content)
	assert.Equal(t, videoID, comment.Video)
	assert.Equal(t, owner, comment.Owner)
}

func TestCommentAdd_Validation(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	videoID := bson.NewObjectID()
	videoRepo.On("Exists", mock.Anything, videoID).Return(false, nil).Once()

	uc := newCommentUsecase(new(MockCommentRepository), videoRepo)

	_, err := uc.Add(context.Background(), bson.NewObjectID().Hex(), videoID.Hex(), "   ")
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))

	_, err = uc.Add(context.Background(), bson.NewObjectID().Hex(), videoID.Hex(), "hello")
	assert.True(t, apperror.IsNotFound(err))
}

func TestCommentThread_MissingVideo(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	videoID := bson.NewObjectID()
	videoRepo.On("Exists", mock.Anything, videoID).Return(false, nil).Once()

	uc := newCommentUsecase(new(MockCommentRepository), videoRepo)
	_, err := uc.Thread(context.Background(), videoID.Hex(), "1", "10")

	assert.True(t, apperror.IsNotFound(err))
}

func TestCommentThread_PassesNormalizedPage(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	videoID := bson.NewObjectID()

	videoRepo.On("Exists", mock.Anything, videoID).Return(true, nil).Once()
	commentRepo.On("Thread", mock.Anything, videoID, dto.PageRequest{Page: 2, Limit: 5}).
		Return(dto.NewPage[dto.CommentView](nil, dto.PageRequest{Page: 2, Limit: 5}, 0), nil).Once()

	uc := newCommentUsecase(commentRepo, videoRepo)
	page, err := uc.Thread(context.Background(), videoID.Hex(), "2", "5")

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	commentRepo.AssertExpectations(t)
}

func TestCommentUpdate_OwnerOnly(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	owner := bson.NewObjectID()
	commentID := bson.NewObjectID()

	commentRepo.On("GetByID", mock.Anything, commentID).
		Return(&model.Comment{ID: commentID, Owner: owner, Content: "old"}, nil)
	commentRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil).Once()

	uc := newCommentUsecase(commentRepo, new(MockVideoRepository))

	comment, err := uc.Update(context.Background(), owner.Hex(), commentID.Hex(), "new content")
	require.NoError(t, err)
	assert.Equal(t, "new content", comment.Content)

	// The video owner may delete comments but not edit them.
	_, err = uc.Update(context.Background(), bson.NewObjectID().Hex(), commentID.Hex(), "hijack")
	assert.True(t, apperror.IsNotFound(err))
}

func TestCommentDelete_Delegated(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)

	videoOwner := bson.NewObjectID()
	videoID := bson.NewObjectID()
	commentID := bson.NewObjectID()

	commentRepo.On("GetByID", mock.Anything, commentID).
		Return(&model.Comment{ID: commentID, Video: videoID, Owner: bson.NewObjectID()}, nil).Once()
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(&model.Video{ID: videoID, Owner: videoOwner}, nil).Once()
	commentRepo.On("Delete", mock.Anything, commentID).Return(nil).Once()

	uc := newCommentUsecase(commentRepo, videoRepo)
	err := uc.Delete(context.Background(), videoOwner.Hex(), commentID.Hex())

	require.NoError(t, err)
	commentRepo.AssertExpectations(t)
}
