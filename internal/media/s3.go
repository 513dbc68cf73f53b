package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"RECIPEBOOK_BACK-END/internal/config"
)

// S3Uploader stores images in an S3-compatible bucket (AWS, MinIO) and
// returns URLs under a public base URL such as a CDN or the bucket website.
type S3Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Uploader creates a new S3Uploader instance. Static credentials are
// used when configured, otherwise the default AWS credential chain applies.
func NewS3Uploader(ctx context.Context, cfg config.S3Config) (*S3Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3Uploader{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	key := objectKey(in.Folder, in.FileName)

	body, ok := in.Body.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(in.Body)
		if err != nil {
			return UploadResult{}, fmt.Errorf("%w: read body: %v", ErrUpload, err)
		}
		body = bytes.NewReader(data)
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if in.ContentType != "" {
		input.ContentType = aws.String(in.ContentType)
	}
	if in.Size > 0 {
		input.ContentLength = aws.Int64(in.Size)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		return UploadResult{}, fmt.Errorf("%w: put object %s: %v", ErrUpload, key, err)
	}

	return UploadResult{
		FileID: key,
		Name:   in.FileName,
		URL:    u.publicBaseURL + "/" + escapeKey(key),
	}, nil
}

// objectKey joins folder and name without cleaning the name, so the stored
// key is exactly the name the caller asked for.
func objectKey(folder, name string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
