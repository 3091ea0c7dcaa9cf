package repository

import (
	"context"
	"mime/multipart"

	"videotube/domain/model"
)

// Media resource types as the upload backend names them.
const (
	MediaTypeVideo = "video"
	MediaTypeImage = "image"
)

// IMedia stores uploaded files on the external media backend and removes
// them when their owning record goes away.
type IMedia interface {
	Store(ctx context.Context, file *multipart.FileHeader, resourceType string) (*model.MediaAsset, error)
	Remove(ctx context.Context, assetURL string, resourceType string) error
}
