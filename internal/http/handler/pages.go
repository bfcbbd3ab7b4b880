package handler

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolio/internal/cache"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageCacheHeader reports whether a page came from the render cache.
const PageCacheHeader = "X-Page-Cache"

var pageTitles = map[model.Kind]string{
	model.KindExperience:  "Experience",
	model.KindProject:     "Projects",
	model.KindCertificate: "Certificates",
	model.KindReview:      "Reviews",
}

type pageData struct {
	Title string
	View  service.HomeView
	Items any
}

// Renderer executes the embedded page templates and caches the output per route.
type Renderer struct {
	tmpl  *template.Template
	cache cache.PageCache
	log   *zap.Logger
}

func NewRenderer(pc cache.PageCache, log *zap.Logger) (*Renderer, error) {
	if pc == nil {
		pc = cache.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	tmpl, err := template.New("pages").
		Funcs(template.FuncMap{"stars": stars}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl, cache: pc, log: log}, nil
}

// serve answers from the cache when possible, otherwise renders and stores the page.
// The cache key is the route path, matching what content mutations invalidate.
func (r *Renderer) serve(c *fiber.Ctx, name string, data func(ctx context.Context) pageData) error {
	ctx := c.UserContext()
	key := c.Route().Path

	body, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.log.Warn("page cache read failed", zap.String("path", key), zap.Error(err))
	}
	if ok {
		c.Set(PageCacheHeader, "HIT")
		return c.Type("html").Send(body)
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data(ctx)); err != nil {
		r.log.Error("render page failed", zap.String("template", name), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	if err := r.cache.Set(ctx, key, buf.Bytes()); err != nil {
		r.log.Warn("page cache write failed", zap.String("path", key), zap.Error(err))
	}
	c.Set(PageCacheHeader, "MISS")
	return c.Type("html").Send(buf.Bytes())
}

// HomePage renders the landing page with preview slices of each kind.
func HomePage(r *Renderer, pages *service.Pages) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return r.serve(c, "home.html", func(ctx context.Context) pageData {
			return pageData{Title: "Portfolio", View: pages.Home(ctx)}
		})
	}
}

// KindPage renders the full listing for one content kind.
func KindPage(r *Renderer, pages *service.Pages, kind model.Kind) fiber.Handler {
	name := string(kind) + ".html"
	return func(c *fiber.Ctx) error {
		return r.serve(c, name, func(ctx context.Context) pageData {
			items, _ := pages.List(ctx, kind)
			return pageData{Title: pageTitles[kind], Items: items}
		})
	}
}

func stars(rating int) string {
	rating = max(0, min(rating, 5))
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
