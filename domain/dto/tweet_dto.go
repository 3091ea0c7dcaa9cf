package dto

// TweetRequest carries the tweet body for create and update.
type TweetRequest struct {
	Content string `json:"content"`
}
