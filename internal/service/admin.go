package service

import (
	"go.uber.org/zap"

	"portfolio/internal/content"
	"portfolio/internal/model"
	"portfolio/internal/storage"
	"portfolio/internal/validation"
)

// Admin holds the owner's submission pipelines, one per content kind.
type Admin struct {
	Experience   *Pipeline[model.ExperienceEntry, ExperienceForm]
	Projects     *Pipeline[model.Project, ProjectForm]
	Certificates *Pipeline[model.CertificateEntry, CertificateForm]
	Reviews      *Pipeline[model.Review, ReviewForm]
}

// ImageFields names the entity field holding each kind's image URL.
var ImageFields = map[model.Kind]string{
	model.KindExperience:  "companyLogo",
	model.KindProject:     "image",
	model.KindCertificate: "thumbnailUrl",
	model.KindReview:      "avatar",
}

// NewAdmin wires pipelines for every kind. Uploads land in imageRoot/<kind>.
func NewAdmin(set *content.Set, images storage.ImageHost, imageRoot string, log *zap.Logger) *Admin {
	cfg := func(k model.Kind, schema *validation.Schema, msg string) PipelineConfig {
		return PipelineConfig{
			Schema:         schema,
			ImageField:     ImageFields[k],
			ImageFolder:    ImageFolder(imageRoot, k),
			SuccessMessage: msg,
		}
	}
	return &Admin{
		Experience: NewPipeline[model.ExperienceEntry, ExperienceForm](set.Experience, images,
			cfg(model.KindExperience, ExperienceSchema, "Experience entry saved."), log),
		Projects: NewPipeline[model.Project, ProjectForm](set.Projects, images,
			cfg(model.KindProject, ProjectSchema, "Project saved."), log),
		Certificates: NewPipeline[model.CertificateEntry, CertificateForm](set.Certificates, images,
			cfg(model.KindCertificate, CertificateSchema, "Certificate saved."), log),
		Reviews: NewPipeline[model.Review, ReviewForm](set.Reviews, images,
			cfg(model.KindReview, ReviewSchema, "Review saved."), log),
	}
}

// NewPages reads from the repositories in set.
func NewPages(set *content.Set) *Pages {
	return &Pages{
		Experience:   set.Experience,
		Projects:     set.Projects,
		Certificates: set.Certificates,
		Reviews:      set.Reviews,
	}
}
