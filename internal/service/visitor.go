package service

import (
	"context"

	"go.uber.org/zap"

	"portfolio/internal/model"
	"portfolio/internal/storage"
)

const msgReviewThanks = "Thank you for your review!"

// VisitorReviews is the public testimonial path. It can only create reviews,
// and every review it creates is tagged as visitor-submitted.
type VisitorReviews struct {
	pipeline *Pipeline[model.Review, VisitorReviewForm]
}

func NewVisitorReviews(repo ContentWriter[model.Review], images storage.ImageHost, imageFolder string, log *zap.Logger) *VisitorReviews {
	return &VisitorReviews{
		pipeline: NewPipeline[model.Review, VisitorReviewForm](repo, images, PipelineConfig{
			Schema:         VisitorReviewSchema,
			ImageField:     "avatar",
			ImageFolder:    imageFolder,
			SuccessMessage: msgReviewThanks,
		}, log),
	}
}

// Submit validates and stores a visitor review. Only a fresh upload may supply the avatar.
func (v *VisitorReviews) Submit(ctx context.Context, form VisitorReviewForm, avatar ImageSource) Result {
	if _, ok := avatar.(NewUpload); !ok {
		avatar = NoImage{}
	}
	return v.pipeline.Create(ctx, form, avatar)
}
