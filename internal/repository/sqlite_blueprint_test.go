package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/elenavoss/advisor/internal/repository"
	"github.com/elenavoss/advisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlueprintRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBlueprintRepo(database)
	ctx := context.Background()

	bp := testutil.SampleBlueprint("bp-1")
	require.NoError(t, repo.Create(ctx, bp))

	got, err := repo.GetByID(ctx, "bp-1")
	require.NoError(t, err)
	assert.Equal(t, bp.Goal, got.Goal)
	assert.True(t, bp.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, bp.Summary, got.Summary)
	require.NotNil(t, got.Recommendation.Length)
	assert.Equal(t, *bp.Recommendation.Length, *got.Recommendation.Length)
	assert.Equal(t, bp.Recommendation.Ideas, got.Recommendation.Ideas)
	require.NotNil(t, got.Recommendation.Problem)
	assert.Equal(t, "Depuff & Glow", got.Recommendation.Problem.RecommendedProgram)
	assert.Equal(t, bp.Generated, got.Generated)
	assert.Equal(t, bp.NextSteps, got.NextSteps)
	assert.Equal(t, bp.Prompt, got.Prompt)
}

func TestBlueprintRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBlueprintRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBlueprintRepo_NullableFields(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBlueprintRepo(database)
	ctx := context.Background()

	bp := testutil.SampleBlueprint("bp-sparse")
	bp.Recommendation.Length = nil
	bp.Recommendation.Problem = nil
	bp.Recommendation.Ideas = nil
	require.NoError(t, repo.Create(ctx, bp))

	got, err := repo.GetByID(ctx, "bp-sparse")
	require.NoError(t, err)
	assert.Nil(t, got.Recommendation.Length)
	assert.Nil(t, got.Recommendation.Problem)
	assert.Empty(t, got.Recommendation.Ideas)
}

func TestBlueprintRepo_ListRecentOrdersNewestFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBlueprintRepo(database)
	ctx := context.Background()

	old := testutil.SampleBlueprint("bp-old")
	old.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := testutil.SampleBlueprint("bp-new")
	newer.CreatedAt = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bp-new", got[0].ID)
	assert.Equal(t, "bp-old", got[1].ID)

	one, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "bp-new", one[0].ID)
}

func TestBlueprintRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBlueprintRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.SampleBlueprint("bp-del")))
	require.NoError(t, repo.Delete(ctx, "bp-del"))

	_, err := repo.GetByID(ctx, "bp-del")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "bp-del"), repository.ErrNotFound)
}
