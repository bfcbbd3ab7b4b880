package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio/internal/auth"
	"portfolio/internal/content"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/repository/memory"
)

func runCmd(t *testing.T, deps *cmdDeps, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(deps)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func memoryDeps(store repository.DocumentStore) *cmdDeps {
	return &cmdDeps{
		Logger: zap.NewNop(),
		OpenStore: func(context.Context) (repository.DocumentStore, func(), error) {
			return store, func() {}, nil
		},
	}
}

func TestSeedCmd_AllKinds(t *testing.T) {
	store := memory.NewDocumentMemory()

	out, err := runCmd(t, memoryDeps(store), "content")
	require.NoError(t, err)
	assert.Equal(t, "certificates: seeded\nexperience: seeded\nprojects: seeded\nreviews: seeded\n", out)

	set := content.NewSet(content.Deps{Store: store})
	assert.Len(t, set.Projects.List(context.Background()), len(content.DemoProjects()))

	out, err = runCmd(t, memoryDeps(store), "content", "--kind", "all")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "already populated"))
	assert.Len(t, set.Projects.List(context.Background()), len(content.DemoProjects()))
}

func TestSeedCmd_SelectedKinds(t *testing.T) {
	store := memory.NewDocumentMemory()

	out, err := runCmd(t, memoryDeps(store), "content", "--kind", "reviews,projects")
	require.NoError(t, err)
	assert.Equal(t, "projects: seeded\nreviews: seeded\n", out)

	set := content.NewSet(content.Deps{Store: store})
	assert.Empty(t, set.Experience.List(context.Background()))
	assert.Len(t, set.Reviews.List(context.Background()), len(content.DemoReviews()))
}

func TestSeedCmd_Errors(t *testing.T) {
	_, err := runCmd(t, memoryDeps(memory.NewDocumentMemory()), "content", "--kind", "blog")
	assert.EqualError(t, err, `unknown content kind "blog"`)

	deps := &cmdDeps{
		Logger: zap.NewNop(),
		OpenStore: func(context.Context) (repository.DocumentStore, func(), error) {
			return nil, nil, errors.New("connection refused")
		},
	}
	_, err = runCmd(t, deps, "content")
	assert.EqualError(t, err, "open store: connection refused")
}

func TestHashPasswordCmd(t *testing.T) {
	out, err := runCmd(t, memoryDeps(nil), "hash-password", "s3cret")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.True(t, auth.CheckPasswordHash("s3cret", hash))

	_, err = runCmd(t, memoryDeps(nil), "hash-password")
	assert.Error(t, err)
}

func TestParseKinds(t *testing.T) {
	got, err := parseKinds([]string{"experience", "certificates"})
	require.NoError(t, err)
	assert.Equal(t, []model.Kind{model.KindExperience, model.KindCertificate}, got)

	got, err = parseKinds(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
