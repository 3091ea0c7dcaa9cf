package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Tweet is a short standalone post. Owner is immutable; only Content may
// change after creation.
type Tweet struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Content   string        `json:"content" bson:"content"`
	Owner     bson.ObjectID `json:"owner" bson:"owner"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}
