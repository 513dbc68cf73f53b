package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"RECIPEBOOK_BACK-END/internal/config"
)

// ImageKitUploader talks to the ImageKit server-side upload API.
// Requests are authenticated with the private key as the basic-auth user.
type ImageKitUploader struct {
	client      *resty.Client
	uploadURL   string
	urlEndpoint string
}

type imageKitUploadResponse struct {
	FileID   string `json:"fileId"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	FilePath string `json:"filePath"`
}

type imageKitErrorResponse struct {
	Message string `json:"message"`
	Help    string `json:"help"`
}

// NewImageKitUploader creates a new ImageKitUploader instance
func NewImageKitUploader(cfg config.ImageKitConfig) *ImageKitUploader {
	client := resty.New().
		SetBasicAuth(cfg.PrivateKey, "").
		SetHeader("Accept", "application/json")

	return &ImageKitUploader{
		client:      client,
		uploadURL:   cfg.UploadURL,
		urlEndpoint: strings.TrimRight(cfg.URLEndpoint, "/"),
	}
}

func (u *ImageKitUploader) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	resp, err := u.client.R().
		SetContext(ctx).
		SetFileReader("file", in.FileName, in.Body).
		SetFormData(map[string]string{
			"fileName": in.FileName,
			"folder":   in.Folder,
		}).
		SetResult(&imageKitUploadResponse{}).
		SetError(&imageKitErrorResponse{}).
		Post(u.uploadURL)
	if err != nil {
		return UploadResult{}, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	if resp.IsError() {
		msg := resp.Status()
		if e, ok := resp.Error().(*imageKitErrorResponse); ok && e.Message != "" {
			msg = e.Message
		}
		return UploadResult{}, fmt.Errorf("%w: imagekit responded %d: %s", ErrUpload, resp.StatusCode(), msg)
	}

	res, ok := resp.Result().(*imageKitUploadResponse)
	if !ok || res.Name == "" {
		return UploadResult{}, fmt.Errorf("%w: imagekit returned an empty upload response", ErrUpload)
	}

	url := res.URL
	if url == "" && u.urlEndpoint != "" && res.FilePath != "" {
		url = u.urlEndpoint + "/" + strings.TrimLeft(res.FilePath, "/")
	}
	if url == "" {
		return UploadResult{}, fmt.Errorf("%w: imagekit returned no url for %s", ErrUpload, res.Name)
	}

	return UploadResult{FileID: res.FileID, Name: res.Name, URL: url}, nil
}
