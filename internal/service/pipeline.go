package service

import (
	"context"
	"errors"
	"path"

	"go.uber.org/zap"

	"portfolio/internal/content"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
	"portfolio/internal/validation"
)

// ContentWriter is the write side of a content repository.
type ContentWriter[T any] interface {
	Kind() model.Kind
	Add(ctx context.Context, e T) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Remove(ctx context.Context, id string) error
}

// PipelineConfig describes one submission form.
type PipelineConfig struct {
	Schema *validation.Schema
	// ImageField is the entity field that holds the image URL.
	ImageField string
	// ImageFolder is where uploads for this form are stored.
	ImageFolder string
	// SuccessMessage is returned on a successful create or edit.
	SuccessMessage string
}

// Pipeline validates a submission, resolves its image and persists it.
// No collaborator is called for input that fails validation, and nothing is
// persisted when the upload fails.
type Pipeline[T any, F Form[T]] struct {
	repo   ContentWriter[T]
	images storage.ImageHost
	cfg    PipelineConfig
	log    *zap.Logger
}

func NewPipeline[T any, F Form[T]](repo ContentWriter[T], images storage.ImageHost, cfg PipelineConfig, log *zap.Logger) *Pipeline[T, F] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline[T, F]{
		repo:   repo,
		images: images,
		cfg:    cfg,
		log:    log.With(zap.String("kind", string(repo.Kind()))),
	}
}

// Create adds a new entry.
func (p *Pipeline[T, F]) Create(ctx context.Context, form F, img ImageSource) Result {
	res := p.create(ctx, form, attached(img))
	p.count(res)
	return res
}

func (p *Pipeline[T, F]) create(ctx context.Context, form F, img ImageSource) Result {
	if fe := p.cfg.Schema.Validate(form); fe != nil {
		return invalid(fe)
	}

	url, key, res, ok := p.resolveImage(ctx, img)
	if !ok {
		return res
	}

	id, err := p.repo.Add(ctx, form.Entity(url))
	if err != nil {
		p.log.Error("save entry failed", zap.Error(err))
		p.discard(ctx, key)
		return failed(StatusSaveFailed, msgSaveFailed)
	}
	return Result{Status: StatusOK, ID: id, Message: p.cfg.SuccessMessage}
}

// Edit overwrites the editable fields of an existing entry. With NoImage the
// stored image is left untouched.
func (p *Pipeline[T, F]) Edit(ctx context.Context, id string, form F, img ImageSource) Result {
	res := p.edit(ctx, id, form, attached(img))
	p.count(res)
	return res
}

func (p *Pipeline[T, F]) edit(ctx context.Context, id string, form F, img ImageSource) Result {
	if fe := p.cfg.Schema.Validate(form); fe != nil {
		return invalid(fe)
	}

	url, key, res, ok := p.resolveImage(ctx, img)
	if !ok {
		return res
	}

	fields, err := content.EncodeFields(form.Entity(url))
	if err != nil {
		p.discard(ctx, key)
		return failed(StatusSaveFailed, msgSaveFailed)
	}
	if _, keep := img.(NoImage); keep {
		delete(fields, p.cfg.ImageField)
	}

	if err := p.repo.Update(ctx, id, fields); err != nil {
		p.discard(ctx, key)
		if errors.Is(err, repository.ErrNotFound) {
			return Result{Status: StatusNotFound, ID: id, Error: msgNotFound}
		}
		p.log.Error("update entry failed", zap.String("id", id), zap.Error(err))
		return failed(StatusSaveFailed, msgSaveFailed)
	}
	return Result{Status: StatusOK, ID: id, Message: p.cfg.SuccessMessage}
}

// Delete removes an entry. Deleting an unknown id succeeds.
func (p *Pipeline[T, F]) Delete(ctx context.Context, id string) Result {
	res := Result{Status: StatusOK, ID: id}
	if err := p.repo.Remove(ctx, id); err != nil {
		p.log.Error("delete entry failed", zap.String("id", id), zap.Error(err))
		res = failed(StatusSaveFailed, msgDeleteFailed)
	}
	p.count(res)
	return res
}

// resolveImage turns the image source into a URL. key is set only for a fresh upload.
func (p *Pipeline[T, F]) resolveImage(ctx context.Context, img ImageSource) (url, key string, res Result, ok bool) {
	switch src := img.(type) {
	case NewUpload:
		up, err := p.images.Upload(ctx, p.cfg.ImageFolder, src.Image)
		if err != nil {
			ue := storage.AsUploadError(err)
			p.log.Warn("image upload failed", zap.String("filename", src.Filename), zap.Error(err))
			return "", "", failed(StatusUploadFailed, ue.Message), false
		}
		return up.URL, up.Key, Result{}, true
	case ExistingURL:
		return string(src), "", Result{}, true
	default:
		return "", "", Result{}, true
	}
}

// discard removes an upload whose entry could not be saved.
func (p *Pipeline[T, F]) discard(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := p.images.Delete(ctx, key); err != nil {
		p.log.Warn("orphaned upload", zap.String("key", key), zap.Error(err))
	}
}

func (p *Pipeline[T, F]) count(res Result) {
	submissionsTotal.WithLabelValues(string(p.repo.Kind()), string(res.Status)).Inc()
}

// ImageFolder joins the configured root folder with a kind subfolder.
func ImageFolder(root string, kind model.Kind) string {
	return path.Join(root, string(kind))
}
