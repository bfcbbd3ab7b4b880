package service

import (
	"context"

	"portfolio/internal/model"
)

// Homepage preview sizes. Experience is always shown in full.
const (
	HomeProjects     = 3
	HomeCertificates = 3
	HomeReviews      = 2
)

// Lister is the read side of a content repository.
type Lister[T any] interface {
	List(ctx context.Context) []T
}

// HomeView is everything the landing page renders.
type HomeView struct {
	Skills           []model.Skill
	Services         []model.Service
	Experience       []model.ExperienceEntry
	Projects         []model.Project
	Certificates     []model.CertificateEntry
	Reviews          []model.Review
	MoreProjects     bool
	MoreCertificates bool
	MoreReviews      bool
}

// Pages assembles page views from the content repositories.
type Pages struct {
	Experience   Lister[model.ExperienceEntry]
	Projects     Lister[model.Project]
	Certificates Lister[model.CertificateEntry]
	Reviews      Lister[model.Review]
}

func (p *Pages) Home(ctx context.Context) HomeView {
	projects := p.Projects.List(ctx)
	certs := p.Certificates.List(ctx)
	reviews := p.Reviews.List(ctx)

	return HomeView{
		Skills:           model.Skills,
		Services:         model.Services,
		Experience:       p.Experience.List(ctx),
		Projects:         preview(projects, HomeProjects),
		Certificates:     preview(certs, HomeCertificates),
		Reviews:          preview(reviews, HomeReviews),
		MoreProjects:     len(projects) > HomeProjects,
		MoreCertificates: len(certs) > HomeCertificates,
		MoreReviews:      len(reviews) > HomeReviews,
	}
}

// List returns the full ordered list for one kind, ready for rendering or JSON.
func (p *Pages) List(ctx context.Context, kind model.Kind) (any, bool) {
	switch kind {
	case model.KindExperience:
		return p.Experience.List(ctx), true
	case model.KindProject:
		return p.Projects.List(ctx), true
	case model.KindCertificate:
		return p.Certificates.List(ctx), true
	case model.KindReview:
		return p.Reviews.List(ctx), true
	}
	return nil, false
}

func preview[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
