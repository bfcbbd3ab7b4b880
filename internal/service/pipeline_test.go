package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio/internal/content"
	"portfolio/internal/model"
	"portfolio/internal/repository/memory"
	storeMocks "portfolio/internal/repository/mocks"
	"portfolio/internal/storage"
	storageMocks "portfolio/internal/storage/mocks"
)

func emptySet() *content.Set {
	return content.NewSet(content.Deps{Store: memory.NewDocumentMemory()})
}

func validProject() ProjectForm {
	return ProjectForm{
		Title:       "Portfolio",
		Description: "Personal site with an admin panel",
		TechStack:   "Go, Fiber ,, Postgres",
		LiveLink:    "https://example.com",
		DataAIHint:  "website screenshot",
	}
}

func TestSplitTechStack(t *testing.T) {
	assert.Equal(t, []string{"Go", "Fiber", "Postgres"}, splitTechStack(" Go, Fiber ,, Postgres "))
	assert.Equal(t, []string{}, splitTechStack(" , "))
}

func TestPipeline_CreateProject(t *testing.T) {
	ctx := context.Background()
	set := emptySet()
	images := new(storageMocks.MockImageHost)
	img := storage.Image{Data: []byte("png"), Filename: "shot.png", ContentType: "image/png"}
	images.On("Upload", mock.Anything, "portfolio_images/projects", img).
		Return(storage.Uploaded{URL: "https://img.example.com/p.png", Key: "portfolio_images/projects/p.png"}, nil)
	admin := NewAdmin(set, images, "portfolio_images", nil)

	before := testutil.ToFloat64(submissionsTotal.WithLabelValues("projects", "ok"))
	res := admin.Projects.Create(ctx, validProject(), NewUpload{Image: img})

	require.True(t, res.OK(), res.Error)
	assert.Equal(t, "Project saved.", res.Message)
	assert.Equal(t, before+1, testutil.ToFloat64(submissionsTotal.WithLabelValues("projects", "ok")))

	got := set.Projects.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, res.ID, got[0].ID)
	assert.Equal(t, "https://img.example.com/p.png", got[0].Image)
	assert.Equal(t, []string{"Go", "Fiber", "Postgres"}, got[0].TechStack)
	assert.Equal(t, "", got[0].GithubLink)
	images.AssertExpectations(t)
}

func TestPipeline_ValidationFailureCallsNothing(t *testing.T) {
	store := new(storeMocks.MockDocumentStore)
	images := new(storageMocks.MockImageHost)
	admin := NewAdmin(content.NewSet(content.Deps{Store: store}), images, "root", nil)

	form := validProject()
	form.Title = ""
	form.LiveLink = "not a url"
	form.TechStack = " , "

	res := admin.Projects.Create(context.Background(), form, NewUpload{Image: storage.Image{Data: []byte("x")}})

	assert.Equal(t, StatusInvalid, res.Status)
	assert.Equal(t, []string{"liveLink", "techStack", "title"}, res.Issues.Fields())
	assert.Equal(t, "Live link must be a valid URL", res.Issues["liveLink"])
	store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	images.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_UploadFailurePersistsNothing(t *testing.T) {
	store := new(storeMocks.MockDocumentStore)
	images := new(storageMocks.MockImageHost)
	images.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(storage.Uploaded{}, &storage.UploadError{Message: "File size too large. Got 12MB.", Status: 400})
	admin := NewAdmin(content.NewSet(content.Deps{Store: store}), images, "root", nil)
	broken := NewUpload{Image: storage.Image{Data: []byte("garbage"), Filename: "broken.png"}}

	created := admin.Projects.Create(context.Background(), validProject(), broken)
	edited := admin.Projects.Edit(context.Background(), "3f1f8f4e-8d7a-4d1e-9a43-0f3c1c0a9b11", validProject(), broken)

	for _, res := range []Result{created, edited} {
		assert.Equal(t, StatusUploadFailed, res.Status)
		assert.Equal(t, "File size too large. Got 12MB.", res.Error)
	}
	store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_SaveFailureDiscardsUpload(t *testing.T) {
	store := new(storeMocks.MockDocumentStore)
	store.On("Add", mock.Anything, "projects", mock.Anything).Return("", errors.New("connection refused"))
	images := new(storageMocks.MockImageHost)
	images.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(storage.Uploaded{URL: "https://img/x.png", Key: "root/projects/x.png"}, nil)
	images.On("Delete", mock.Anything, "root/projects/x.png").Return(nil)
	admin := NewAdmin(content.NewSet(content.Deps{Store: store}), images, "root", nil)

	res := admin.Projects.Create(context.Background(), validProject(), NewUpload{Image: storage.Image{Data: []byte("png")}})

	assert.Equal(t, StatusSaveFailed, res.Status)
	assert.Equal(t, "Could not save the entry to the database.", res.Error)
	images.AssertExpectations(t)
}

func TestPipeline_WhitespaceOnlyFieldsRejected(t *testing.T) {
	store := new(storeMocks.MockDocumentStore)
	admin := NewAdmin(content.NewSet(content.Deps{Store: store}), new(storageMocks.MockImageHost), "root", nil)

	res := admin.Experience.Create(context.Background(), ExperienceForm{
		Role:        "   ",
		Company:     "  ",
		Duration:    " ",
		Description: "\t\n",
		TechStack:   "Go",
	}, NoImage{})

	assert.Equal(t, StatusInvalid, res.Status)
	assert.Equal(t, []string{"company", "description", "duration", "role"}, res.Issues.Fields())
	assert.Equal(t, "Role is required", res.Issues["role"])
	store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_StoresTrimmedFields(t *testing.T) {
	ctx := context.Background()
	set := emptySet()
	admin := NewAdmin(set, new(storageMocks.MockImageHost), "root", nil)

	res := admin.Experience.Create(ctx, ExperienceForm{
		Role:        "  Backend Engineer ",
		Company:     " Acme",
		Duration:    "2021 - Present ",
		Description: "  Built the billing service. ",
		TechStack:   "Go, Postgres",
	}, NoImage{})

	require.True(t, res.OK(), res.Error)
	got := set.Experience.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Backend Engineer", got[0].Role)
	assert.Equal(t, "Acme", got[0].Company)
	assert.Equal(t, "2021 - Present", got[0].Duration)
	assert.Equal(t, "Built the billing service.", got[0].Description)
}

func TestPipeline_EmptyUploadCountsAsNoImage(t *testing.T) {
	ctx := context.Background()
	set := emptySet()
	id, err := set.Projects.Add(ctx, model.Project{Title: "Old", Description: "d", TechStack: []string{"Go"}, Image: "https://img/old.png"})
	require.NoError(t, err)
	images := new(storageMocks.MockImageHost)
	admin := NewAdmin(set, images, "root", nil)
	empty := NewUpload{Image: storage.Image{Filename: "blank.png", ContentType: "image/png"}}

	created := admin.Projects.Create(ctx, validProject(), empty)
	edited := admin.Projects.Edit(ctx, id, validProject(), empty)

	require.True(t, created.OK(), created.Error)
	require.True(t, edited.OK(), edited.Error)
	for _, p := range set.Projects.List(ctx) {
		if p.ID == id {
			assert.Equal(t, "https://img/old.png", p.Image)
		} else {
			assert.Empty(t, p.Image)
		}
	}
	images.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_EditKeepsImageWhenNoneGiven(t *testing.T) {
	ctx := context.Background()
	set := emptySet()
	id, err := set.Certificates.Add(ctx, model.CertificateEntry{Title: "Go", Issuer: "Acme", IssueDate: "2023-01", ThumbnailURL: "https://img/old.png"})
	require.NoError(t, err)
	images := new(storageMocks.MockImageHost)
	admin := NewAdmin(set, images, "root", nil)

	res := admin.Certificates.Edit(ctx, id, CertificateForm{Title: "Go Advanced", Issuer: "Acme", IssueDate: "2024-02"}, NoImage{})

	require.True(t, res.OK(), res.Error)
	got := set.Certificates.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Go Advanced", got[0].Title)
	assert.Equal(t, "2024-02", got[0].IssueDate)
	assert.Equal(t, "https://img/old.png", got[0].ThumbnailURL)
	images.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_EditReplacesImageAndClearsLinks(t *testing.T) {
	ctx := context.Background()
	set := emptySet()
	id, err := set.Experience.Add(ctx, model.ExperienceEntry{
		Role: "Engineer", Company: "Acme", Duration: "2020 - 2022", Description: "d",
		TechStack: []string{"Go"}, CompanyLogo: "https://img/old.png", CompanyLink: "https://acme.example",
	})
	require.NoError(t, err)
	admin := NewAdmin(set, new(storageMocks.MockImageHost), "root", nil)

	res := admin.Experience.Edit(ctx, id, ExperienceForm{
		Role: "Lead", Company: "Acme", Duration: "2020 - 2023", Description: "d", TechStack: "Go, Redis",
	}, ExistingURL("https://img/new.png"))

	require.True(t, res.OK(), res.Error)
	got := set.Experience.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Lead", got[0].Role)
	assert.Equal(t, "https://img/new.png", got[0].CompanyLogo)
	assert.Equal(t, "", got[0].CompanyLink)
	assert.Equal(t, []string{"Go", "Redis"}, got[0].TechStack)
}

func TestPipeline_EditMissing(t *testing.T) {
	admin := NewAdmin(emptySet(), new(storageMocks.MockImageHost), "root", nil)

	res := admin.Reviews.Edit(context.Background(), "missing", ReviewForm{Name: "A", Text: "Fine", Rating: 4}, NoImage{})

	assert.Equal(t, StatusNotFound, res.Status)
	assert.Equal(t, "missing", res.ID)
}

func TestPipeline_OwnerReviewEditKeepsVisitorTag(t *testing.T) {
	ctx := context.Background()
	set := emptySet()
	id, err := set.Reviews.Add(ctx, model.Review{Name: "Jane", Text: "Great work", Rating: 5, Source: model.ReviewSourceVisitor})
	require.NoError(t, err)
	admin := NewAdmin(set, new(storageMocks.MockImageHost), "root", nil)

	res := admin.Reviews.Edit(ctx, id, ReviewForm{Name: "Jane D.", Text: "Great work", Rating: 4}, NoImage{})

	require.True(t, res.OK(), res.Error)
	got := set.Reviews.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane D.", got[0].Name)
	assert.Equal(t, model.ReviewSourceVisitor, got[0].Source)
}

func TestPipeline_Delete(t *testing.T) {
	ctx := context.Background()
	set := emptySet()
	id, err := set.Projects.Add(ctx, model.Project{Title: "Gone"})
	require.NoError(t, err)
	admin := NewAdmin(set, new(storageMocks.MockImageHost), "root", nil)

	assert.True(t, admin.Projects.Delete(ctx, id).OK())
	assert.Empty(t, set.Projects.List(ctx))
	assert.True(t, admin.Projects.Delete(ctx, id).OK())
}

func TestPipeline_DeleteStoreFailure(t *testing.T) {
	store := new(storeMocks.MockDocumentStore)
	store.On("Delete", mock.Anything, "reviews", "abc").Return(errors.New("timeout"))
	admin := NewAdmin(content.NewSet(content.Deps{Store: store}), new(storageMocks.MockImageHost), "root", nil)

	res := admin.Reviews.Delete(context.Background(), "abc")

	assert.Equal(t, StatusSaveFailed, res.Status)
	assert.Equal(t, "Could not delete the entry from the database.", res.Error)
}
