package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PlaylistRequest creates or updates playlist metadata.
type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PlaylistSummary lists a user's playlists with the derived video count.
type PlaylistSummary struct {
	ID          bson.ObjectID `json:"id" bson:"_id"`
	Name        string        `json:"name" bson:"name"`
	Description string        `json:"description" bson:"description"`
	VideoCount  int           `json:"videoCount" bson:"videoCount"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistDetail is the single-playlist view: member videos expanded with
// their own owner projections, plus the playlist owner and video count.
type PlaylistDetail struct {
	ID          bson.ObjectID    `json:"id" bson:"_id"`
	Name        string           `json:"name" bson:"name"`
	Description string           `json:"description" bson:"description"`
	Owner       *OwnerInfo       `json:"owner" bson:"owner"`
	Videos      []VideoWithOwner `json:"videos" bson:"videos"`
	VideoCount  int              `json:"videoCount" bson:"videoCount"`
	CreatedAt   time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt" bson:"updatedAt"`
}
