//go:build integration

package repository_test

import (
	"context"
	"testing"

	"go-gin-activities/internal/model"
	"go-gin-activities/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepository_CreateAndList(t *testing.T) {
	repo := repository.NewGroupRepository(testDB)
	ctx := context.Background()

	setupTestWithTruncate(t)
	alice := createTestPerson(t, "Alice", "Johnson")
	outdoors := createTestTag(t, "Outdoors")

	created, err := repo.Create(ctx, &model.Group{
		GroupID:          uuid.New(),
		GroupName:        "Weekend Trail Club",
		GroupDescription: ptr("Hikes every Saturday"),
		Organizers:       []model.Person{alice},
		GroupTags:        []model.Tag{outdoors},
	})
	require.NoError(t, err)

	groups, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, created.GroupID, groups[0].GroupID)
	assert.Equal(t, "Hikes every Saturday", *groups[0].GroupDescription)
	require.Len(t, groups[0].Organizers, 1)
	assert.Equal(t, "Alice", groups[0].Organizers[0].FirstName)
	assert.Equal(t, []model.Tag{outdoors}, groups[0].GroupTags)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.DeleteAll(ctx))
	assertRowCount(t, "groups", 0)
	assertRowCount(t, "group_organizers", 0)
}

func TestPersonRepository_EnsureExists(t *testing.T) {
	repo := repository.NewPersonRepository(testDB)
	ctx := context.Background()

	setupTestWithTruncate(t)
	alice := createTestPerson(t, "Alice", "Johnson")
	renamed := alice
	renamed.FirstName = "Renamed"
	david := model.Person{PersonID: uuid.New(), FirstName: "David", LastName: "Okafor", Age: 41}

	err := repo.EnsureExists(ctx, []model.Person{renamed, david})

	require.NoError(t, err)
	people, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 2)

	names := map[string]bool{}
	for _, p := range people {
		names[p.FullName()] = true
	}
	// 既有資料不被覆寫
	assert.True(t, names["Alice Johnson"])
	assert.True(t, names["David Okafor"])
}

func TestTagRepository_EnsureExists(t *testing.T) {
	repo := repository.NewTagRepository(testDB)
	ctx := context.Background()

	setupTestWithTruncate(t)
	music := createTestTag(t, "Music")

	err := repo.EnsureExists(ctx, []model.Tag{music, {TagID: uuid.New(), TagName: "Food"}})

	require.NoError(t, err)
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.DeleteAll(ctx))
	assertRowCount(t, "tags", 0)
}

func TestTransactor_WithinTx(t *testing.T) {
	repo := repository.NewActivityRepository(testDB)
	tx := repository.NewTransactor(testDB)
	ctx := context.Background()

	t.Run("RollbackOnError", func(t *testing.T) {
		setupTestWithTruncate(t)

		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := repo.Create(ctx, &model.Activity{ID: "a-1", Title: "T", City: "C", Venue: "V"}); err != nil {
				return err
			}
			return repo.Delete(ctx, "missing")
		})

		require.Error(t, err)
		assertRowCount(t, "activities", 0)
	})

	t.Run("NestedReusesTransaction", func(t *testing.T) {
		setupTestWithTruncate(t)

		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := repo.Create(ctx, &model.Activity{ID: "a-1", Title: "T", City: "C", Venue: "V"}); err != nil {
				return err
			}
			return tx.WithinTx(ctx, func(ctx context.Context) error {
				_, err := repo.FindByID(ctx, "a-1")
				return err
			})
		})

		require.NoError(t, err)
		assertRowCount(t, "activities", 1)
	})
}
