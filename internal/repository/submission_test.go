package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glbatch/buko-service/internal/domain"
	"github.com/glbatch/buko-service/internal/repository"
	"github.com/glbatch/buko-service/internal/testutil"
)

func TestSubmissionRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test: requires docker")
	}

	db := testutil.SetupTestDB(t)
	repo := repository.NewSubmissionRepository(db)
	ctx := context.Background()

	t.Run("create and get by id", func(t *testing.T) {
		sub := testutil.NewSubmission()
		require.NoError(t, repo.Create(ctx, sub))

		got, err := repo.GetByID(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, sub.ID, got.ID)
		assert.Equal(t, sub.OperatorID, got.OperatorID)
		assert.Equal(t, sub.DiagnosticCode, got.DiagnosticCode)
		assert.Equal(t, "CLAIM", got.BEType)
		assert.Equal(t, sub.EncodedLine, got.EncodedLine)
		assert.Empty(t, got.DuplicateRows)
		assert.True(t, got.Appended)
		assert.WithinDuration(t, sub.CreatedAt, got.CreatedAt, 0)
	})

	t.Run("duplicate rows round-trip through the array column", func(t *testing.T) {
		sub := testutil.NewSubmission()
		sub.DuplicateRows = []int64{3, 17}
		sub.Appended = true
		require.NoError(t, repo.Create(ctx, sub))

		got, err := repo.GetByID(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 17}, got.DuplicateRows)
	})

	t.Run("get missing id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list is newest first and limited", func(t *testing.T) {
		listed, err := repo.List(ctx, 1)
		require.NoError(t, err)
		require.Len(t, listed, 1)

		all, err := repo.List(ctx, 100)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(all), 2)
		for i := 1; i < len(all); i++ {
			assert.False(t, all[i-1].CreatedAt.Before(all[i].CreatedAt))
		}
	})
}
