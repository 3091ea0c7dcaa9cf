package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"videotube/infrastructure/configuration"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/media"
	"videotube/infrastructure/persistence"
	httpHandler "videotube/interfaces/http"
	"videotube/server"
	"videotube/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Non-destructive: OS env still has precedence.
	if err := godotenv.Load(); err == nil {
		logger.GetLogger().Info("Loaded .env from working directory")
	}

	mongoClient, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB initialization failed")
		os.Exit(1)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	db := mongoClient.Database(configuration.C.Database.Mongo.Name)
	if err := persistence.EnsureIndexes(db); err != nil {
		logger.GetLogger().WithField("error", err).Error("Index creation failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("MongoDB connected")

	mediaStore := media.NewClient(&media.Config{
		CloudName: configuration.C.Media.CloudName,
		APIKey:    configuration.C.Media.APIKey,
		APISecret: configuration.C.Media.APISecret,
		UploadURL: configuration.C.Media.UploadURL,
	})

	userRepository := persistence.NewUserRepository(db)
	videoRepository := persistence.NewVideoRepository(db)
	commentRepository := persistence.NewCommentRepository(db)
	playlistRepository := persistence.NewPlaylistRepository(db)
	tweetRepository := persistence.NewTweetRepository(db)
	likeRepository := persistence.NewLikeRepository(db)
	subscriptionRepository := persistence.NewSubscriptionRepository(db)

	authorizer := usecase.NewAuthorizer(videoRepository, commentRepository, playlistRepository, tweetRepository)

	videoUsecase := usecase.NewVideoUsecase(videoRepository, mediaStore, authorizer)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, videoRepository, authorizer)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepository, videoRepository, authorizer)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepository, authorizer)
	likeUsecase := usecase.NewLikeUsecase(likeRepository, videoRepository, commentRepository, tweetRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository, userRepository)
	dashboardUsecase := usecase.NewDashboardUsecase(videoRepository, subscriptionRepository)

	router := server.InitiateRouter(
		httpHandler.NewVideoHandler(videoUsecase),
		httpHandler.NewCommentHandler(commentUsecase),
		httpHandler.NewLikeHandler(likeUsecase),
		httpHandler.NewSubscriptionHandler(subscriptionUsecase),
		httpHandler.NewPlaylistHandler(playlistUsecase),
		httpHandler.NewTweetHandler(tweetUsecase),
		httpHandler.NewDashboardHandler(dashboardUsecase),
		httpHandler.NewHealthcheckHandler(mongoClient),
		userRepository,
	)

	port := configuration.C.App.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
