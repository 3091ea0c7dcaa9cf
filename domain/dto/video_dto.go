package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// OwnerInfo is the owner projection attached by the join stages:
// {username, fullName, avatar}. A nil value means the join missed.
type OwnerInfo struct {
	Username string `json:"username" bson:"username"`
	FullName string `json:"fullName" bson:"fullName"`
	Avatar   string `json:"avatar" bson:"avatar"`
}

// VideoWithOwner is a video record with its owner projection embedded.
type VideoWithOwner struct {
	ID          bson.ObjectID `json:"id" bson:"_id"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	VideoFile   string        `json:"videoFile" bson:"videoFile"`
	Thumbnail   string        `json:"thumbnail" bson:"thumbnail"`
	Duration    float64       `json:"duration" bson:"duration"`
	Views       int64         `json:"views" bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"isPublished"`
	Owner       *OwnerInfo    `json:"owner" bson:"owner"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// VideoFeedRequest carries the feed query before normalization. SortBy
// defaults to createdAt, SortType to desc.
type VideoFeedRequest struct {
	Query    string `form:"query"`
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType"`
	Page     string `form:"page"`
	Limit    string `form:"limit"`
}

// VideoUpdateRequest updates video metadata. At least one field (or a new
// thumbnail upload) must be present.
type VideoUpdateRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

// PublishStatus reports the publish flag after a toggle.
type PublishStatus struct {
	Video       interface{} `json:"video"`
	IsPublished bool        `json:"isPublished"`
}
