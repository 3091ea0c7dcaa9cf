package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"videotube/domain/repository"
	httpHandler "videotube/interfaces/http"
	"videotube/interfaces/middleware"
)

func InitiateRouter(
	videoHandler httpHandler.IVideoHandler,
	commentHandler httpHandler.ICommentHandler,
	likeHandler httpHandler.ILikeHandler,
	subscriptionHandler httpHandler.ISubscriptionHandler,
	playlistHandler httpHandler.IPlaylistHandler,
	tweetHandler httpHandler.ITweetHandler,
	dashboardHandler httpHandler.IDashboardHandler,
	healthcheckHandler httpHandler.IHealthcheckHandler,
	userRepository repository.IUser,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthcheck", healthcheckHandler.Healthcheck)

	api := router.Group("api/v1")
	api.Use(middleware.Auth(userRepository))

	videos := api.Group("videos")
	{
		videos.GET("", videoHandler.Feed)
		videos.POST("", videoHandler.Publish)
		videos.GET("/:videoId", videoHandler.GetByID)
		videos.PATCH("/:videoId", videoHandler.Update)
		videos.DELETE("/:videoId", videoHandler.Delete)
		videos.PATCH("/toggle/publish/:videoId", videoHandler.TogglePublish)
	}

	comments := api.Group("comments")
	{
		comments.GET("/:videoId", commentHandler.Thread)
		comments.POST("/:videoId", commentHandler.Add)
		comments.PATCH("/c/:commentId", commentHandler.Update)
		comments.DELETE("/c/:commentId", commentHandler.Delete)
	}

	likes := api.Group("likes")
	{
		likes.POST("/toggle/v/:videoId", likeHandler.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", likeHandler.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", likeHandler.ToggleTweetLike)
		likes.GET("/videos", likeHandler.LikedVideos)
	}

	subscriptions := api.Group("subscriptions")
	{
		subscriptions.POST("/c/:channelId", subscriptionHandler.Toggle)
		subscriptions.GET("/c/:channelId", subscriptionHandler.Subscribers)
		subscriptions.GET("/u/:subscriberId", subscriptionHandler.SubscribedChannels)
	}

	playlists := api.Group("playlist")
	{
		playlists.POST("", playlistHandler.Create)
		playlists.GET("/user/:userId", playlistHandler.ListByUser)
		playlists.GET("/:playlistId", playlistHandler.Detail)
		playlists.PATCH("/:playlistId", playlistHandler.Update)
		playlists.DELETE("/:playlistId", playlistHandler.Delete)
		playlists.PATCH("/add/:videoId/:playlistId", playlistHandler.AddVideo)
		playlists.PATCH("/remove/:videoId/:playlistId", playlistHandler.RemoveVideo)
	}

	tweets := api.Group("tweets")
	{
		tweets.POST("", tweetHandler.Create)
		tweets.GET("/user/:userId", tweetHandler.ListByUser)
		tweets.PATCH("/:tweetId", tweetHandler.Update)
		tweets.DELETE("/:tweetId", tweetHandler.Delete)
	}

	dashboard := api.Group("dashboard")
	{
		dashboard.GET("/stats", dashboardHandler.ChannelStats)
		dashboard.GET("/videos", dashboardHandler.ChannelVideos)
	}

	return router
}
