package storage

import "context"

// StorageService defines the image storage operations used for activity
// banners and sub-images.
type StorageService interface {
	UploadImage(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}
