package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// registerKind mounts list/create/edit/delete for one content kind under r.
//
//	GET    /<kind>       full list (JSON)
//	POST   /<kind>       create (multipart)
//	PUT    /<kind>/:id   edit (multipart); omitting the image keeps the stored one
//	DELETE /<kind>/:id   delete; unknown ids succeed
func registerKind[T any, F service.Form[T]](r fiber.Router, kind model.Kind, list service.Lister[T], p *service.Pipeline[T, F]) {
	base := "/" + string(kind)
	imageField := service.ImageFields[kind]

	r.Get(base, func(c *fiber.Ctx) error {
		return c.JSON(list.List(c.UserContext()))
	})

	r.Post(base, func(c *fiber.Ctx) error {
		form, img, bad := parseSubmission[T, F](c, imageField)
		if bad != nil {
			return writeError(c, fiber.StatusBadRequest, bad.code, bad.message)
		}
		return writeResult(c, fiber.StatusCreated, p.Create(c.UserContext(), form, img))
	})

	r.Put(base+"/:id", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		form, img, bad := parseSubmission[T, F](c, imageField)
		if bad != nil {
			return writeError(c, fiber.StatusBadRequest, bad.code, bad.message)
		}
		return writeResult(c, fiber.StatusOK, p.Edit(c.UserContext(), id, form, img))
	})

	r.Delete(base+"/:id", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res := p.Delete(c.UserContext(), id)
		if res.OK() {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return writeResult(c, fiber.StatusNoContent, res)
	})
}

type badRequest struct {
	code    string
	message string
}

// parseSubmission binds the form body and its image.
func parseSubmission[T any, F service.Form[T]](c *fiber.Ctx, imageField string) (F, service.ImageSource, *badRequest) {
	var form F
	if err := c.BodyParser(&form); err != nil {
		return form, nil, &badRequest{"BAD_REQUEST", "malformed form data"}
	}
	img, err := imageFromForm(c, imageField)
	if err != nil {
		return form, nil, &badRequest{"FILE_OPEN_ERROR", "cannot read uploaded file"}
	}
	return form, img, nil
}
