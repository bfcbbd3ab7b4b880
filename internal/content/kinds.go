package content

import (
	"context"
	"fmt"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

func pagesFor(k model.Kind) []string {
	return []string{"/", "/" + string(k)}
}

func ExperienceDescriptor() Descriptor[model.ExperienceEntry] {
	return Descriptor[model.ExperienceEntry]{
		Kind:       model.KindExperience,
		Collection: "experience",
		Order:      repository.OrderBy{Field: "duration", Descending: true},
		Seed:       DemoExperience(),
		Pages:      pagesFor(model.KindExperience),
	}
}

func ProjectDescriptor() Descriptor[model.Project] {
	return Descriptor[model.Project]{
		Kind:       model.KindProject,
		Collection: "projects",
		Order:      repository.OrderBy{Field: "title"},
		Seed:       DemoProjects(),
		Pages:      pagesFor(model.KindProject),
	}
}

func CertificateDescriptor() Descriptor[model.CertificateEntry] {
	return Descriptor[model.CertificateEntry]{
		Kind:       model.KindCertificate,
		Collection: "certificates",
		Order:      repository.OrderBy{Field: "issueDate", Descending: true},
		Seed:       DemoCertificates(),
		Pages:      pagesFor(model.KindCertificate),
	}
}

func ReviewDescriptor() Descriptor[model.Review] {
	return Descriptor[model.Review]{
		Kind:       model.KindReview,
		Collection: "reviews",
		Order:      repository.OrderBy{Field: "rating", Descending: true},
		Seed:       DemoReviews(),
		Pages:      pagesFor(model.KindReview),
	}
}

// Set holds one repository per content kind.
type Set struct {
	Experience   *Repository[model.ExperienceEntry]
	Projects     *Repository[model.Project]
	Certificates *Repository[model.CertificateEntry]
	Reviews      *Repository[model.Review]
}

// NewSet builds the four content repositories over shared collaborators.
func NewSet(deps Deps) *Set {
	return &Set{
		Experience:   NewRepository(deps, ExperienceDescriptor()),
		Projects:     NewRepository(deps, ProjectDescriptor()),
		Certificates: NewRepository(deps, CertificateDescriptor()),
		Reviews:      NewRepository(deps, ReviewDescriptor()),
	}
}

type seeder interface {
	Seed(ctx context.Context) (bool, error)
}

func (s *Set) seeder(k model.Kind) (seeder, error) {
	switch k {
	case model.KindExperience:
		return s.Experience, nil
	case model.KindProject:
		return s.Projects, nil
	case model.KindCertificate:
		return s.Certificates, nil
	case model.KindReview:
		return s.Reviews, nil
	default:
		return nil, fmt.Errorf("unknown content kind %q", k)
	}
}

// Seed populates each named kind (all kinds when none are given) that is still empty.
// The result reports, per kind, whether this call inserted the demo set.
func (s *Set) Seed(ctx context.Context, kinds ...model.Kind) (map[model.Kind]bool, error) {
	if len(kinds) == 0 {
		kinds = model.Kinds
	}
	out := make(map[model.Kind]bool, len(kinds))
	for _, k := range kinds {
		sd, err := s.seeder(k)
		if err != nil {
			return out, err
		}
		seeded, err := sd.Seed(ctx)
		if err != nil {
			return out, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = seeded
	}
	return out, nil
}
