// Package storage hosts uploaded images on an S3-compatible object store
// and hands back durable public URLs for them.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Image is one uploaded image held in memory for the duration of a request.
type Image struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Uploaded describes a stored image.
type Uploaded struct {
	URL string
	Key string
}

// UploadError is the structured failure of an upload. Message is safe to show to the submitter.
type UploadError struct {
	Message string
	Status  int
}

func (e *UploadError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("image upload failed (%d): %s", e.Status, e.Message)
	}
	return "image upload failed: " + e.Message
}

// AsUploadError extracts an *UploadError from err, wrapping foreign errors
// so callers always have a message to surface.
func AsUploadError(err error) *UploadError {
	var ue *UploadError
	if errors.As(err, &ue) {
		return ue
	}
	return &UploadError{Message: err.Error()}
}

// ImageHost stores images under a destination folder.
type ImageHost interface {
	// Upload stores img under folder and returns its public URL.
	Upload(ctx context.Context, folder string, img Image) (Uploaded, error)
	// Delete removes a previously uploaded object by key.
	Delete(ctx context.Context, key string) error
}

// Unconfigured is the ImageHost used when no object store is set up.
// Every upload fails with a message the submitter can read.
type Unconfigured struct{}

func (Unconfigured) Upload(context.Context, string, Image) (Uploaded, error) {
	return Uploaded{}, &UploadError{Message: "Image uploads are not configured."}
}

func (Unconfigured) Delete(context.Context, string) error { return nil }
