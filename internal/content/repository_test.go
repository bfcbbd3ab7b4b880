package content

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	cacheMocks "portfolio/internal/cache/mocks"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/repository/memory"
	storeMocks "portfolio/internal/repository/mocks"
)

func newDeps() Deps {
	return Deps{Store: memory.NewDocumentMemory(), SeedOnRead: true}
}

func checkSeedOnEmpty[T any](t *testing.T, repo *Repository[T], demo []T, clearID func(T) T) {
	t.Helper()
	ctx := context.Background()

	first := repo.List(ctx)
	require.Len(t, first, len(demo))

	ids := map[string]bool{}
	stripped := make([]T, 0, len(first))
	for _, e := range first {
		id := idOf(t, e)
		assert.NotEmpty(t, id)
		assert.False(t, ids[id], "duplicate id %s", id)
		ids[id] = true
		stripped = append(stripped, clearID(e))
	}
	assert.ElementsMatch(t, demo, stripped)

	second := repo.List(ctx)
	assert.Equal(t, first, second)
}

func idOf(t *testing.T, e any) string {
	t.Helper()
	switch v := e.(type) {
	case model.ExperienceEntry:
		return v.ID
	case model.Project:
		return v.ID
	case model.CertificateEntry:
		return v.ID
	case model.Review:
		return v.ID
	default:
		t.Fatalf("unexpected entity %T", e)
		return ""
	}
}

func TestRepository_SeedOnEmpty(t *testing.T) {
	set := NewSet(newDeps())

	t.Run("experience", func(t *testing.T) {
		checkSeedOnEmpty(t, set.Experience, DemoExperience(), func(e model.ExperienceEntry) model.ExperienceEntry { e.ID = ""; return e })
	})
	t.Run("projects", func(t *testing.T) {
		checkSeedOnEmpty(t, set.Projects, DemoProjects(), func(e model.Project) model.Project { e.ID = ""; return e })
	})
	t.Run("certificates", func(t *testing.T) {
		checkSeedOnEmpty(t, set.Certificates, DemoCertificates(), func(e model.CertificateEntry) model.CertificateEntry { e.ID = ""; return e })
	})
	t.Run("reviews", func(t *testing.T) {
		checkSeedOnEmpty(t, set.Reviews, DemoReviews(), func(e model.Review) model.Review { e.ID = ""; return e })
	})
}

func TestRepository_ListOrder(t *testing.T) {
	set := NewSet(newDeps())
	reviews := set.Reviews.List(context.Background())
	require.NotEmpty(t, reviews)
	for i := 1; i < len(reviews); i++ {
		assert.GreaterOrEqual(t, reviews[i-1].Rating, reviews[i].Rating)
	}
}

func TestRepository_SeedDisabled(t *testing.T) {
	deps := newDeps()
	deps.SeedOnRead = false
	repo := NewRepository(deps, ProjectDescriptor())

	assert.Empty(t, repo.List(context.Background()))
}

func TestRepository_AddUpdateRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newDeps(), ProjectDescriptor())
	before := repo.List(ctx)

	id, err := repo.Add(ctx, model.Project{ID: "ignored", Title: "Zeta", Description: "d", TechStack: []string{"Go"}, Image: "z.png"})
	require.NoError(t, err)
	assert.NotEqual(t, "ignored", id)

	after := repo.List(ctx)
	require.Len(t, after, len(before)+1)
	for _, p := range before {
		assert.NotEqual(t, p.ID, id)
	}
	added := after[len(after)-1]
	assert.Equal(t, id, added.ID)
	assert.Equal(t, []string{"Go"}, added.TechStack)

	require.NoError(t, repo.Update(ctx, id, map[string]any{"description": "changed", "id": "hijack"}))
	updated := repo.List(ctx)
	require.Len(t, updated, len(after))
	for i := range updated {
		if updated[i].ID == id {
			want := added
			want.Description = "changed"
			assert.Equal(t, want, updated[i])
		} else {
			assert.Equal(t, after[i], updated[i])
		}
	}

	require.NoError(t, repo.Remove(ctx, id))
	for _, p := range repo.List(ctx) {
		assert.NotEqual(t, id, p.ID)
	}
	assert.NoError(t, repo.Remove(ctx, id))
	assert.NoError(t, repo.Remove(ctx, "never-existed"))
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := NewRepository(newDeps(), ReviewDescriptor())

	err := repo.Update(context.Background(), "missing", map[string]any{"rating": 3})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepository_ListStoreFailureDegrades(t *testing.T) {
	store := new(storeMocks.MockDocumentStore)
	store.On("Query", mock.Anything, "certificates", mock.Anything).Return(nil, errors.New("unavailable"))

	core, logs := observer.New(zap.ErrorLevel)
	repo := NewRepository(Deps{Store: store, Logger: zap.New(core), SeedOnRead: true}, CertificateDescriptor())

	got := repo.List(context.Background())

	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "list content failed", logs.All()[0].Message)
	store.AssertNotCalled(t, "SeedIfEmpty", mock.Anything, mock.Anything, mock.Anything)
}

func TestRepository_SeedFailureDegrades(t *testing.T) {
	store := new(storeMocks.MockDocumentStore)
	store.On("Query", mock.Anything, "reviews", mock.Anything).Return([]repository.Document{}, nil).Once()
	store.On("SeedIfEmpty", mock.Anything, "reviews", mock.Anything).Return(false, errors.New("read only"))

	repo := NewRepository(Deps{Store: store, SeedOnRead: true}, ReviewDescriptor())

	assert.Empty(t, repo.List(context.Background()))
	store.AssertExpectations(t)
}

func TestRepository_SeedLostRaceRereads(t *testing.T) {
	store := new(storeMocks.MockDocumentStore)
	store.On("Query", mock.Anything, "reviews", mock.Anything).Return([]repository.Document{}, nil).Once()
	store.On("SeedIfEmpty", mock.Anything, "reviews", mock.Anything).Return(false, nil)
	store.On("Query", mock.Anything, "reviews", mock.Anything).Return([]repository.Document{
		{ID: "r1", Data: map[string]any{"name": "Jane", "rating": float64(5), "text": "Nice", "avatar": ""}},
	}, nil).Once()

	repo := NewRepository(Deps{Store: store, SeedOnRead: true}, ReviewDescriptor())
	got := repo.List(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, model.Review{ID: "r1", Name: "Jane", Rating: 5, Text: "Nice"}, got[0])
	store.AssertExpectations(t)
}

func TestRepository_SkipsUndecodableDocuments(t *testing.T) {
	store := new(storeMocks.MockDocumentStore)
	store.On("Query", mock.Anything, "reviews", mock.Anything).Return([]repository.Document{
		{ID: "bad", Data: map[string]any{"rating": "five"}},
		{ID: "ok", Data: map[string]any{"name": "Ann", "rating": float64(4)}},
	}, nil)

	repo := NewRepository(Deps{Store: store}, ReviewDescriptor())
	got := repo.List(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].ID)
}

func TestRepository_WriteErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	store := new(storeMocks.MockDocumentStore)
	inv := new(cacheMocks.MockPageCache)
	boom := errors.New("write failed")
	store.On("Add", mock.Anything, "projects", mock.Anything).Return("", boom)
	store.On("Update", mock.Anything, "projects", "p1", mock.Anything).Return(boom)
	store.On("Delete", mock.Anything, "projects", "p1").Return(boom)

	repo := NewRepository(Deps{Store: store, Invalidator: inv}, ProjectDescriptor())

	_, err := repo.Add(ctx, model.Project{Title: "x"})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, repo.Update(ctx, "p1", map[string]any{"title": "y"}), boom)
	assert.ErrorIs(t, repo.Remove(ctx, "p1"), boom)
	inv.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestRepository_MutationsInvalidatePages(t *testing.T) {
	ctx := context.Background()
	inv := new(cacheMocks.MockPageCache)
	inv.On("Invalidate", mock.Anything, []string{"/", "/certificates"}).Return(nil).Times(3)

	repo := NewRepository(Deps{Store: memory.NewDocumentMemory(), Invalidator: inv}, CertificateDescriptor())

	id, err := repo.Add(ctx, model.CertificateEntry{Title: "Go", Issuer: "Me", IssueDate: "2024"})
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, id, map[string]any{"issuer": "You"}))
	require.NoError(t, repo.Remove(ctx, id))

	inv.AssertExpectations(t)
}

func TestRepository_InvalidationFailureIsLoggedOnly(t *testing.T) {
	inv := new(cacheMocks.MockPageCache)
	inv.On("Invalidate", mock.Anything, mock.Anything).Return(errors.New("redis down"))
	core, logs := observer.New(zap.WarnLevel)

	repo := NewRepository(Deps{Store: memory.NewDocumentMemory(), Invalidator: inv, Logger: zap.New(core)}, ReviewDescriptor())
	_, err := repo.Add(context.Background(), model.Review{Name: "A", Text: "B", Rating: 3})

	assert.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("page cache invalidation failed").Len())
}

func TestSet_Seed(t *testing.T) {
	ctx := context.Background()
	deps := newDeps()
	deps.SeedOnRead = false
	set := NewSet(deps)
	before := testutil.ToFloat64(seededTotal.WithLabelValues("projects"))

	res, err := set.Seed(ctx, model.KindProject)
	require.NoError(t, err)
	assert.Equal(t, map[model.Kind]bool{model.KindProject: true}, res)
	assert.Equal(t, before+1, testutil.ToFloat64(seededTotal.WithLabelValues("projects")))
	assert.Len(t, set.Projects.List(ctx), len(DemoProjects()))

	res, err = set.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, res[model.KindProject])
	assert.True(t, res[model.KindExperience])
	assert.True(t, res[model.KindCertificate])
	assert.True(t, res[model.KindReview])

	_, err = set.Seed(ctx, model.Kind("skills"))
	assert.Error(t, err)
}
