package dto

import "go.mongodb.org/mongo-driver/v2/bson"

// ChannelUser is the counterpart-user projection of the subscriber and
// subscribed-channel lists.
type ChannelUser struct {
	ID       bson.ObjectID `json:"id" bson:"_id"`
	Username string        `json:"username" bson:"username"`
	FullName string        `json:"fullName" bson:"fullName"`
	Avatar   string        `json:"avatar" bson:"avatar"`
}

// ToggleResult reports the relation state after a toggle call.
type ToggleResult struct {
	Active bool `json:"active"`
}
