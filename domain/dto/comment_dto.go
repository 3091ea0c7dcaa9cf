package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CommentView is one thread entry: the comment plus the flattened author
// fields. Username/Avatar stay empty when the owner join misses.
type CommentView struct {
	ID        bson.ObjectID `json:"id" bson:"_id"`
	Content   string        `json:"content" bson:"content"`
	Username  string        `json:"username" bson:"username"`
	Avatar    string        `json:"avatar" bson:"avatar"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// CommentRequest carries comment content for add/update.
type CommentRequest struct {
	Content string `json:"content"`
}
