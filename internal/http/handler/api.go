package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/auth"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// Pinger reports whether the content store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Authenticator issues and checks admin tokens.
type Authenticator interface {
	Login(password string) (string, error)
	Validate(token string) (*auth.Claims, error)
}

type loginRequest struct {
	Password string `json:"password" form:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// HealthCheck godoc
// @Summary      Store health
// @Description  Pings the content store.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  errorPayload
// @Router       /health [get]
func HealthCheck(p Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 while the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListContent godoc
// @Summary      List content
// @Description  Returns every entry of a content kind in display order.
// @Tags         content
// @Produce      json
// @Param        kind  path  string  true  "experience, projects, certificates or reviews"
// @Success      200  {array}   object
// @Failure      404  {object}  errorPayload
// @Router       /api/{kind} [get]
func ListContent(pages *service.Pages) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind, ok := model.ParseKind(c.Params("kind"))
		if !ok {
			return writeError(c, fiber.StatusNotFound, "UNKNOWN_KIND", "unknown content kind")
		}
		items, _ := pages.List(c.UserContext(), kind)
		return c.JSON(items)
	}
}

// SubmitReview godoc
// @Summary      Submit a testimonial
// @Description  Public review form. The avatar file is optional.
// @Tags         reviews
// @Accept       multipart/form-data
// @Produce      json
// @Param        name     formData  string  true   "Name"
// @Param        company  formData  string  false  "Company"
// @Param        text     formData  string  true   "Review text"
// @Param        rating   formData  int     true   "Rating 1..5"
// @Param        avatar   formData  file    false  "Avatar image"
// @Success      201  {object}  successPayload
// @Failure      422  {object}  errorPayload
// @Failure      429  {object}  errorPayload
// @Failure      502  {object}  errorPayload
// @Router       /api/reviews [post]
func SubmitReview(v *service.VisitorReviews) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form service.VisitorReviewForm
		if err := c.BodyParser(&form); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed form data")
		}
		avatar, err := imageFromForm(c, "avatar")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}
		return writeResult(c, fiber.StatusCreated, v.Submit(c.UserContext(), form, avatar))
	}
}

// SendContact godoc
// @Summary      Contact the owner
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        message  body  model.ContactMessage  true  "Message"
// @Success      200  {object}  successPayload
// @Failure      422  {object}  errorPayload
// @Failure      502  {object}  errorPayload
// @Router       /api/contact [post]
func SendContact(contact *service.Contact) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var msg model.ContactMessage
		if err := c.BodyParser(&msg); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		return writeResult(c, fiber.StatusOK, contact.Send(c.UserContext(), msg))
	}
}

// AdminLogin godoc
// @Summary      Owner login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        credentials  body  loginRequest  true  "Password"
// @Success      200  {object}  loginResponse
// @Failure      401  {object}  errorPayload
// @Router       /admin/login [post]
func AdminLogin(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		token, err := a.Login(req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid password")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(loginResponse{Token: token})
	}
}
