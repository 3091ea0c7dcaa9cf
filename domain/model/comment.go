package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment belongs to exactly one video. Video and Owner are immutable;
// only Content may change after creation.
type Comment struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Content   string        `json:"content" bson:"content"`
	Video     bson.ObjectID `json:"video" bson:"video"`
	Owner     bson.ObjectID `json:"owner" bson:"owner"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}
