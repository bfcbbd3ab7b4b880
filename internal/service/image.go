package service

import "portfolio/internal/storage"

// ImageSource is the image attached to a submission: a new upload, a URL that is
// already hosted, or nothing at all.
type ImageSource interface {
	imageSource()
}

// NewUpload is a freshly attached file.
type NewUpload struct {
	storage.Image
}

// ExistingURL keeps an image that is already hosted.
type ExistingURL string

// NoImage means the submission carries no image. On edit the stored image is kept.
type NoImage struct{}

func (NewUpload) imageSource()   {}
func (ExistingURL) imageSource() {}
func (NoImage) imageSource()     {}

// attached normalizes a submission's image: a missing source or an upload
// without data counts as NoImage.
func attached(img ImageSource) ImageSource {
	switch src := img.(type) {
	case nil:
		return NoImage{}
	case NewUpload:
		if len(src.Data) == 0 {
			return NoImage{}
		}
	}
	return img
}
