package handler

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// imageFromForm reads the image attached under field. A non-empty file wins,
// then a same-named text value carrying an already hosted URL.
func imageFromForm(c *fiber.Ctx, field string) (service.ImageSource, error) {
	if fh, err := c.FormFile(field); err == nil && fh.Size > 0 {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", field, err)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", field, err)
		}
		return service.NewUpload{Image: storage.Image{
			Data:        data,
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
		}}, nil
	}

	if v := strings.TrimSpace(c.FormValue(field)); v != "" {
		return service.ExistingURL(v), nil
	}
	return service.NoImage{}, nil
}
