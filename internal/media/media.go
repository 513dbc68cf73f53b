// Package media uploads recipe images to the configured media host.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"RECIPEBOOK_BACK-END/internal/config"
)

// ErrUpload wraps every failure reported by a media host.
var ErrUpload = errors.New("media upload failed")

// RecipesFolder is the folder recipe images are uploaded into.
const RecipesFolder = "/recipes"

// UploadInput describes a single file to upload.
// FileName is passed to the host untouched.
type UploadInput struct {
	Body        io.Reader
	Size        int64
	ContentType string
	FileName    string
	Folder      string
}

// UploadResult is what the host reports back for a stored file.
type UploadResult struct {
	FileID string
	Name   string
	URL    string
}

// Uploader stores binary content on a media host.
type Uploader interface {
	Upload(ctx context.Context, in UploadInput) (UploadResult, error)
}

// New builds the Uploader selected by cfg.Driver.
func New(ctx context.Context, cfg config.MediaConfig) (Uploader, error) {
	switch cfg.Driver {
	case config.MediaDriverImageKit:
		return NewImageKitUploader(cfg.ImageKit), nil
	case config.MediaDriverS3:
		return NewS3Uploader(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown media driver %q", cfg.Driver)
	}
}
