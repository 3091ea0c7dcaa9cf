package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription links a subscriber to a channel (both users). A compound
// unique index on (channel, subscriber) keeps the pair single-valued.
type Subscription struct {
	ID         bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Channel    bson.ObjectID `json:"channel" bson:"channel"`
	Subscriber bson.ObjectID `json:"subscriber" bson:"subscriber"`
	CreatedAt  time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt" bson:"updatedAt"`
}
