package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/http/middleware"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// Deps are the collaborators behind the HTTP surface.
// Admin routes are mounted only when both Auth and Admin are set.
type Deps struct {
	Store    Pinger
	Renderer *Renderer
	Pages    *service.Pages
	Visitor  *service.VisitorReviews
	Contact  *service.Contact
	Admin    *service.Admin
	Auth     Authenticator
	// ReviewLimit guards the public review form; nil leaves it unlimited.
	ReviewLimit fiber.Handler
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.Store))
	app.Get("/healthz", LivenessProbe())

	// Server-rendered pages
	app.Get("/", HomePage(d.Renderer, d.Pages))
	for _, k := range model.Kinds {
		app.Get("/"+string(k), KindPage(d.Renderer, d.Pages, k))
	}

	// Public API
	api := app.Group("/api")
	limit := d.ReviewLimit
	if limit == nil {
		limit = func(c *fiber.Ctx) error { return c.Next() }
	}
	api.Post("/reviews", limit, SubmitReview(d.Visitor))
	api.Post("/contact", SendContact(d.Contact))
	api.Get("/:kind", ListContent(d.Pages))

	if d.Auth == nil || d.Admin == nil {
		return
	}

	app.Post("/admin/login", AdminLogin(d.Auth))
	admin := app.Group("/admin", middleware.RequireAdmin(d.Auth))
	registerKind(admin, model.KindExperience, d.Pages.Experience, d.Admin.Experience)
	registerKind(admin, model.KindProject, d.Pages.Projects, d.Admin.Projects)
	registerKind(admin, model.KindCertificate, d.Pages.Certificates, d.Admin.Certificates)
	registerKind(admin, model.KindReview, d.Pages.Reviews, d.Admin.Reviews)
}
