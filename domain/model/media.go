package model

// MediaAsset is the stored representation of an uploaded file as reported
// by the media backend.
type MediaAsset struct {
	URL      string  `json:"url"`
	Duration float64 `json:"duration"`
}
