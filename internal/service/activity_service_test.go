package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-gin-activities/internal/model"
	repoMocks "go-gin-activities/internal/repository/mocks"
	"go-gin-activities/internal/service"
	apperrors "go-gin-activities/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func setupActivityService(t *testing.T) (service.ActivityService, *repoMocks.MockActivityRepository) {
	repo := repoMocks.NewMockActivityRepository(t)
	return service.NewActivityService(repo, passthroughTx(t), 0), repo
}

func testActivity(id string) *model.Activity {
	return &model.Activity{
		ID:       id,
		Title:    "Board Game Night",
		Date:     time.Date(2026, 9, 3, 19, 0, 0, 0, time.UTC),
		Category: ptr("Social"),
		City:     "Seattle",
		Venue:    "The Game Lounge",
	}
}

func TestActivityService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		activities := []*model.Activity{testActivity("a-1"), testActivity("a-2")}
		repo.EXPECT().List(ctx).Return(activities, nil).Once()

		result, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, activities, result)
	})

	t.Run("Failed - repository error is internal", func(t *testing.T) {
		logs := observeLogs(t)
		svc, repo := setupActivityService(t)
		dbErr := errors.New("connection refused")
		repo.EXPECT().List(ctx).Return(nil, dbErr).Once()

		_, err := svc.List(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInternalServerError)
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, 1, logs.FilterMessage("Unexpected error").FilterLevelExact(zapcore.ErrorLevel).Len())
	})
}

func TestActivityService_GetDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		repo.EXPECT().FindByID(ctx, "a-1").Return(testActivity("a-1"), nil).Once()

		result, err := svc.GetDetails(ctx, "a-1")

		require.NoError(t, err)
		assert.Equal(t, "a-1", result.ID)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		logs := observeLogs(t)
		svc, repo := setupActivityService(t)
		repo.EXPECT().FindByID(ctx, "missing").Return(nil, apperrors.ErrActivityNotFound).Once()

		_, err := svc.GetDetails(ctx, "missing")

		assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
		assert.Equal(t, 1, logs.FilterMessage("Activity not found").FilterLevelExact(zapcore.WarnLevel).Len())
	})

	t.Run("Failed - cancelled context is timeout", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		repo.EXPECT().FindByID(cancelled, "a-1").Return(nil, context.Canceled).Once()

		_, err := svc.GetDetails(cancelled, "a-1")

		assert.ErrorIs(t, err, apperrors.ErrTimeout)
	})
}

func TestActivityService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - generates id when empty", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		repo.EXPECT().Create(ctx, mock.MatchedBy(func(a *model.Activity) bool {
			_, err := uuid.Parse(a.ID)
			return err == nil
		})).RunAndReturn(func(_ context.Context, a *model.Activity) (*model.Activity, error) {
			return a, nil
		}).Once()

		created, err := svc.Create(ctx, testActivity(""))

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("Success - keeps supplied id", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		activity := testActivity("client-id")
		repo.EXPECT().Create(ctx, activity).Return(activity, nil).Once()

		created, err := svc.Create(ctx, activity)

		require.NoError(t, err)
		assert.Equal(t, "client-id", created.ID)
	})

	t.Run("Failed - nil payload", func(t *testing.T) {
		svc, repo := setupActivityService(t)

		_, err := svc.Create(ctx, nil)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - duplicate id is internal", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		repo.EXPECT().Create(ctx, mock.Anything).Return(nil, errors.New("duplicate key value")).Once()

		_, err := svc.Create(ctx, testActivity("dup"))

		assert.ErrorIs(t, err, apperrors.ErrInternalServerError)
	})
}

func TestActivityService_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - only meaningful fields are applied", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		existing := testActivity("a-1")
		updated := testActivity("a-1")
		updated.Title = "Renamed"

		repo.EXPECT().FindByID(ctx, "a-1").Return(existing, nil).Once()
		repo.EXPECT().Update(ctx, "a-1", model.UpdateActivityParams{Title: ptr("Renamed")}).Return(updated, nil).Once()

		result, err := svc.Edit(ctx, "a-1", model.UpdateActivityParams{
			Title:    ptr("Renamed"),
			City:     ptr("   "),
			Latitude: ptr(0.0),
		})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", result.Title)
	})

	t.Run("Success - nothing meaningful returns existing", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		existing := testActivity("a-1")
		repo.EXPECT().FindByID(ctx, "a-1").Return(existing, nil).Once()

		result, err := svc.Edit(ctx, "a-1", model.UpdateActivityParams{Venue: ptr("")})

		require.NoError(t, err)
		assert.Same(t, existing, result)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("Success - cancelling is always applied", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		repo.EXPECT().FindByID(ctx, "a-1").Return(testActivity("a-1"), nil).Once()
		repo.EXPECT().Update(ctx, "a-1", model.UpdateActivityParams{IsCancelled: ptr(false)}).
			Return(testActivity("a-1"), nil).Once()

		_, err := svc.Edit(ctx, "a-1", model.UpdateActivityParams{IsCancelled: ptr(false)})

		require.NoError(t, err)
	})

	t.Run("Failed - not found logs warning", func(t *testing.T) {
		logs := observeLogs(t)
		svc, repo := setupActivityService(t)
		repo.EXPECT().FindByID(ctx, "missing").Return(nil, apperrors.ErrActivityNotFound).Once()

		_, err := svc.Edit(ctx, "missing", model.UpdateActivityParams{Title: ptr("x")})

		assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
		entries := logs.FilterMessage("Activity not found for update").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, "missing", entries[0].ContextMap()["activity_id"])
		repo.AssertNotCalled(t, "Update")
	})
}

func TestActivityService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		repo.EXPECT().FindByID(ctx, "a-1").Return(testActivity("a-1"), nil).Once()
		repo.EXPECT().Delete(ctx, "a-1").Return(nil).Once()

		err := svc.Delete(ctx, "a-1")

		require.NoError(t, err)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		repo.EXPECT().FindByID(ctx, "missing").Return(nil, apperrors.ErrActivityNotFound).Once()

		err := svc.Delete(ctx, "missing")

		assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("Failed - cancelled while settling", func(t *testing.T) {
		repo := repoMocks.NewMockActivityRepository(t)
		svc := service.NewActivityService(repo, passthroughTx(t), time.Hour)
		cancelled, cancel := context.WithCancel(ctx)
		repo.EXPECT().FindByID(cancelled, "a-1").
			RunAndReturn(func(context.Context, string) (*model.Activity, error) {
				cancel()
				return testActivity("a-1"), nil
			}).Once()

		err := svc.Delete(cancelled, "a-1")

		assert.ErrorIs(t, err, apperrors.ErrTimeout)
		repo.AssertNotCalled(t, "Delete")
	})
}

func TestActivityService_DeleteMany(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - duplicates collapsed", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		deleted := []*model.Activity{testActivity("a-1"), testActivity("a-2")}
		repo.EXPECT().DeleteMany(ctx, []string{"a-1", "a-2"}).Return(deleted, nil).Once()

		result, err := svc.DeleteMany(ctx, []string{"a-1", "a-2", "a-1"})

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Failed - empty list", func(t *testing.T) {
		svc, repo := setupActivityService(t)

		_, err := svc.DeleteMany(ctx, []string{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "DeleteMany")
	})

	t.Run("Failed - one missing", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		repo.EXPECT().DeleteMany(ctx, []string{"a-1", "missing"}).Return(nil, apperrors.ErrActivityNotFound).Once()

		_, err := svc.DeleteMany(ctx, []string{"a-1", "missing"})

		assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
	})
}

func TestActivityService_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("CSV", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		repo.EXPECT().List(ctx).Return([]*model.Activity{testActivity("a-1")}, nil).Once()

		data, err := svc.ExportCSV(ctx)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Id,Title,Date,Description,Category,IsCancelled,City,Venue,Latitude,Longitude", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "a-1,Board Game Night,"))
	})

	t.Run("Excel", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		repo.EXPECT().List(ctx).Return([]*model.Activity{}, nil).Once()

		data, err := svc.ExportExcel(ctx)

		require.NoError(t, err)
		// xlsx 為 zip 格式
		assert.Equal(t, []byte("PK"), data[:2])
	})

	t.Run("Failed - list error", func(t *testing.T) {
		svc, repo := setupActivityService(t)
		repo.EXPECT().List(ctx).Return(nil, errors.New("boom")).Once()

		_, err := svc.ExportCSV(ctx)

		assert.ErrorIs(t, err, apperrors.ErrInternalServerError)
	})
}
