//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"go-gin-activities/internal/model"
	"go-gin-activities/internal/repository"
	apperrors "go-gin-activities/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_Create(t *testing.T) {
	repo := repository.NewActivityRepository(testDB)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)

		date := time.Date(2026, 8, 15, 20, 30, 0, 0, time.UTC)
		created, err := repo.Create(ctx, &model.Activity{
			ID:          "a-1",
			Title:       "Jazz Night",
			Date:        date,
			Description: ptr("Live jazz"),
			City:        "Paris",
			Venue:       "Le Duc des Lombards",
			Latitude:    48.8596,
			Longitude:   2.3470,
		})

		require.NoError(t, err)
		assert.Equal(t, "a-1", created.ID)
		assert.Equal(t, "Jazz Night", created.Title)
		assert.True(t, date.Equal(created.Date))
		assert.Equal(t, "Live jazz", *created.Description)
		assert.Nil(t, created.Category)
		assert.False(t, created.IsCancelled)
		assertRowCount(t, "activities", 1)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		setupTestWithTruncate(t)
		createTestActivity(t, "dup", "First")

		_, err := repo.Create(ctx, &model.Activity{ID: "dup", Title: "Second", City: "X", Venue: "Y", Date: time.Now()})

		require.Error(t, err)
		assertRowCount(t, "activities", 1)
	})
}

func TestActivityRepository_FindByID(t *testing.T) {
	repo := repository.NewActivityRepository(testDB)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)
		createTestActivity(t, "a-1", "Concert")

		found, err := repo.FindByID(ctx, "a-1")

		require.NoError(t, err)
		assert.Equal(t, "Concert", found.Title)
		assert.Equal(t, "music", *found.Category)
	})

	t.Run("NotFound", func(t *testing.T) {
		setupTestWithTruncate(t)

		_, err := repo.FindByID(ctx, "missing")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
	})
}

func TestActivityRepository_List(t *testing.T) {
	repo := repository.NewActivityRepository(testDB)
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		setupTestWithTruncate(t)

		activities, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, activities)
		assert.Empty(t, activities)
	})

	t.Run("All", func(t *testing.T) {
		setupTestWithTruncate(t)
		createTestActivity(t, "a-1", "One")
		createTestActivity(t, "a-2", "Two")

		activities, err := repo.List(ctx)

		require.NoError(t, err)
		assert.Len(t, activities, 2)
	})
}

func TestActivityRepository_Update(t *testing.T) {
	repo := repository.NewActivityRepository(testDB)
	ctx := context.Background()

	t.Run("OnlyProvidedFields", func(t *testing.T) {
		setupTestWithTruncate(t)
		createTestActivity(t, "a-1", "Original")

		updated, err := repo.Update(ctx, "a-1", model.UpdateActivityParams{
			Title:       ptr("Renamed"),
			IsCancelled: ptr(true),
		})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.True(t, updated.IsCancelled)
		assert.Equal(t, "London", updated.City)
		assert.Equal(t, "music", *updated.Category)
	})

	t.Run("NotFound", func(t *testing.T) {
		setupTestWithTruncate(t)

		_, err := repo.Update(ctx, "missing", model.UpdateActivityParams{Title: ptr("x")})

		assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
	})

	t.Run("NoFields", func(t *testing.T) {
		setupTestWithTruncate(t)
		createTestActivity(t, "a-1", "Original")

		_, err := repo.Update(ctx, "a-1", model.UpdateActivityParams{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestActivityRepository_Delete(t *testing.T) {
	repo := repository.NewActivityRepository(testDB)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)
		createTestActivity(t, "a-1", "Gone")
		createTestActivity(t, "a-2", "Stays")

		err := repo.Delete(ctx, "a-1")

		require.NoError(t, err)
		assertRowCount(t, "activities", 1)
		_, err = repo.FindByID(ctx, "a-2")
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		setupTestWithTruncate(t)

		err := repo.Delete(ctx, "missing")

		assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
	})
}

func TestActivityRepository_DeleteMany(t *testing.T) {
	repo := repository.NewActivityRepository(testDB)
	tx := repository.NewTransactor(testDB)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)
		createTestActivity(t, "a-1", "One")
		createTestActivity(t, "a-2", "Two")
		createTestActivity(t, "a-3", "Three")

		var deleted []*model.Activity
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			var err error
			deleted, err = repo.DeleteMany(ctx, []string{"a-1", "a-3"})
			return err
		})

		require.NoError(t, err)
		assert.Len(t, deleted, 2)
		assertRowCount(t, "activities", 1)
	})

	t.Run("MissingIDRollsBack", func(t *testing.T) {
		setupTestWithTruncate(t)
		createTestActivity(t, "a-1", "One")
		createTestActivity(t, "a-2", "Two")

		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			_, err := repo.DeleteMany(ctx, []string{"a-1", "missing"})
			return err
		})

		assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
		assertRowCount(t, "activities", 2)
	})
}

func TestActivityRepository_CountAndDeleteAll(t *testing.T) {
	repo := repository.NewActivityRepository(testDB)
	ctx := context.Background()

	setupTestWithTruncate(t)
	createTestActivity(t, "a-1", "One")
	createTestActivity(t, "a-2", "Two")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.DeleteAll(ctx))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
