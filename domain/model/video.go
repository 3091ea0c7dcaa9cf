package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Video is a published media document. Owner is immutable after creation;
// Views is only ever changed through a store-level atomic increment.
type Video struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	VideoFile   string        `json:"videoFile" bson:"videoFile"`
	Thumbnail   string        `json:"thumbnail" bson:"thumbnail"`
	Duration    float64       `json:"duration" bson:"duration"`
	Views       int64         `json:"views" bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"isPublished"`
	Owner       bson.ObjectID `json:"owner" bson:"owner"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}
