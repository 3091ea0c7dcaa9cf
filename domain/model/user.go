package model

import (
	"time"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a channel owner / viewer. Credential fields live with the auth
// service; this backend only ever reads the public profile.
type User struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string        `json:"username" bson:"username"`
	FullName  string        `json:"fullName" bson:"fullName"`
	Avatar    string        `json:"avatar" bson:"avatar"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// UserClaims is the JWT payload the auth middleware resolves a caller from.
// Subject carries the user id hex.
type UserClaims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}
