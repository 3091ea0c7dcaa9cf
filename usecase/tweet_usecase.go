package usecase

import (
	"context"
	"strings"

	"videotube/domain/apperror"
	"videotube/domain/model"
	"videotube/domain/repository"
)

type ITweetUsecase interface {
	Create(ctx context.Context, ownerHex, content string) (*model.Tweet, error)
	ListByUser(ctx context.Context, userHex string) ([]model.Tweet, error)
	Update(ctx context.Context, actorHex, tweetHex, content string) (*model.Tweet, error)
	Delete(ctx context.Context, actorHex, tweetHex string) error
}

type tweetUsecase struct {
	tweetRepo  repository.ITweet
	authorizer *Authorizer
}

func NewTweetUsecase(tweetRepo repository.ITweet, authorizer *Authorizer) ITweetUsecase {
	return &tweetUsecase{tweetRepo: tweetRepo, authorizer: authorizer}
}

func (u *tweetUsecase) Create(ctx context.Context, ownerHex, content string) (*model.Tweet, error) {
	owner, err := parseID("owner", ownerHex)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.New(apperror.KindInvalidArgument, "content is required")
	}

	tweet := &model.Tweet{Content: content, Owner: owner}
	if err := u.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (u *tweetUsecase) ListByUser(ctx context.Context, userHex string) ([]model.Tweet, error) {
	user, err := parseID("user", userHex)
	if err != nil {
		return nil, err
	}
	return u.tweetRepo.ListByOwner(ctx, user)
}

func (u *tweetUsecase) Update(ctx context.Context, actorHex, tweetHex, content string) (*model.Tweet, error) {
	actor, err := parseID("actor", actorHex)
	if err != nil {
		return nil, err
	}
	id, err := parseID("tweet", tweetHex)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.New(apperror.KindInvalidArgument, "content is required")
	}

	if err := u.authorizer.MayMutate(ctx, actor, ResourceTweet, id); err != nil {
		return nil, hideOwnership(err, "tweet")
	}
	tweet, err := u.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tweet.Content = content
	if err := u.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (u *tweetUsecase) Delete(ctx context.Context, actorHex, tweetHex string) error {
	actor, err := parseID("actor", actorHex)
	if err != nil {
		return err
	}
	id, err := parseID("tweet", tweetHex)
	if err != nil {
		return err
	}
	if err := u.authorizer.MayMutate(ctx, actor, ResourceTweet, id); err != nil {
		return hideOwnership(err, "tweet")
	}
	return u.tweetRepo.Delete(ctx, id)
}
