package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"portfolio/internal/config"
)

// publicReadPolicy lets anonymous clients GET objects so image URLs can be embedded in pages.
const publicReadPolicy = `{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"AWS": ["*"]},
    "Action": ["s3:GetObject"],
    "Resource": ["arn:aws:s3:::%s/*"]
  }]
}`

// minioImageHost implements ImageHost using an S3-compatible backend (MinIO, AWS S3, etc.).
// It is safe for concurrent use by multiple goroutines.
type minioImageHost struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinIO creates the image host backed by MinIO.
// It validates connectivity and ensures the bucket exists and is publicly readable.
func NewMinIO(cfg config.MinIOConfig) (ImageHost, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}
	if cfg.PublicURL == "" {
		return nil, fmt.Errorf("minio public url is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	if err := cli.SetBucketPolicy(ctx, cfg.Bucket, fmt.Sprintf(publicReadPolicy, cfg.Bucket)); err != nil {
		return nil, fmt.Errorf("set bucket policy: %w", err)
	}

	return &minioImageHost{client: cli, bucket: cfg.Bucket, publicURL: cfg.PublicURL}, nil
}

// Upload streams the image bytes to the bucket under folder/<uuid><ext>.
func (m *minioImageHost) Upload(ctx context.Context, folder string, img Image) (Uploaded, error) {
	ct, err := imageContentType(img)
	if err != nil {
		return Uploaded{}, err
	}

	key := objectKey(folder, img.Filename, ct)
	_, err = m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(img.Data), int64(len(img.Data)), minio.PutObjectOptions{
		ContentType:  ct,
		CacheControl: "public, max-age=31536000, immutable",
		UserMetadata: map[string]string{"original-filename": img.Filename},
	})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		msg := resp.Message
		if msg == "" {
			msg = err.Error()
		}
		return Uploaded{}, &UploadError{Message: msg, Status: resp.StatusCode}
	}

	return Uploaded{URL: publicObjectURL(m.publicURL, m.bucket, key), Key: key}, nil
}

// Delete removes an object by key.
func (m *minioImageHost) Delete(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

// imageContentType resolves the content type from the declared type, falling back to
// sniffing the payload, and rejects anything that is not an image.
func imageContentType(img Image) (string, error) {
	if len(img.Data) == 0 {
		return "", &UploadError{Message: "No file provided.", Status: http.StatusBadRequest}
	}
	ct := img.ContentType
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(img.Data)
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return "", &UploadError{Message: "Only image files can be uploaded.", Status: http.StatusUnsupportedMediaType}
	}
	return mediaType, nil
}

func objectKey(folder, filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	return path.Join(strings.Trim(folder, "/"), uuid.NewString()+ext)
}

func publicObjectURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + key
}
