package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Playlist holds an ordered list of video references without duplicates.
type Playlist struct {
	ID          bson.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name        string          `json:"name" bson:"name"`
	Description string          `json:"description" bson:"description"`
	Owner       bson.ObjectID   `json:"owner" bson:"owner"`
	Videos      []bson.ObjectID `json:"videos" bson:"videos"`
	CreatedAt   time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// Contains reports whether the playlist already references videoID.
func (p *Playlist) Contains(videoID bson.ObjectID) bool {
	for _, v := range p.Videos {
		if v == videoID {
			return true
		}
	}
	return false
}
