package service

import (
	"context"
	"time"

	"go-gin-activities/internal/export"
	"go-gin-activities/internal/model"
	"go-gin-activities/internal/observability"
	"go-gin-activities/internal/repository"
	apperrors "go-gin-activities/pkg/app_errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ActivityService interface {
	List(ctx context.Context) ([]*model.Activity, error)
	GetDetails(ctx context.Context, id string) (*model.Activity, error)
	Create(ctx context.Context, activity *model.Activity) (*model.Activity, error)
	// Edit 只套用有意義的欄位
	Edit(ctx context.Context, id string, params model.UpdateActivityParams) (*model.Activity, error)
	Delete(ctx context.Context, id string) error
	// DeleteMany 全部成功或全部不刪除
	DeleteMany(ctx context.Context, ids []string) ([]*model.Activity, error)
	ExportExcel(ctx context.Context) ([]byte, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

type ActivityServiceImpl struct {
	repo        repository.ActivityRepository
	tx          repository.Transactor
	settleDelay time.Duration
}

func NewActivityService(repo repository.ActivityRepository, tx repository.Transactor, settleDelay time.Duration) ActivityService {
	return &ActivityServiceImpl{repo: repo, tx: tx, settleDelay: settleDelay}
}

func (s *ActivityServiceImpl) List(ctx context.Context) ([]*model.Activity, error) {
	log := serviceLogger("ListActivities")
	log.Info("Fetching activity list")

	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, classify(ctx, log, err, "")
	}
	return activities, nil
}

func (s *ActivityServiceImpl) GetDetails(ctx context.Context, id string) (*model.Activity, error) {
	log := serviceLogger("GetActivityDetails", zap.String("activity_id", id))

	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(ctx, log, err, "Activity not found")
	}
	log.Info("Activity retrieved successfully")
	return activity, nil
}

func (s *ActivityServiceImpl) Create(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	log := serviceLogger("CreateActivity")
	if activity == nil {
		log.Warn("Activity payload is missing")
		return nil, apperrors.ErrInvalidInput
	}
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		return nil, classify(ctx, log.With(zap.String("activity_id", activity.ID)), err, "")
	}
	log.Info("Activity created successfully", zap.String("activity_id", created.ID))
	return created, nil
}

func (s *ActivityServiceImpl) Edit(ctx context.Context, id string, params model.UpdateActivityParams) (*model.Activity, error) {
	log := serviceLogger("EditActivity", zap.String("activity_id", id))

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(ctx, log, err, "Activity not found for update")
	}

	sparse := params.Sparse()
	if sparse.IsEmpty() {
		log.Info("No meaningful fields to update")
		return existing, nil
	}

	updated, err := s.repo.Update(ctx, id, sparse)
	if err != nil {
		return nil, classify(ctx, log, err, "Activity not found for update")
	}
	log.Info("Activity updated successfully")
	return updated, nil
}

func (s *ActivityServiceImpl) Delete(ctx context.Context, id string) error {
	log := serviceLogger("DeleteActivity", zap.String("activity_id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return classify(ctx, log, err, "Activity not found for deletion")
	}
	if err := settle(ctx, s.settleDelay); err != nil {
		return classify(ctx, log, err, "")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return classify(ctx, log, err, "Activity not found for deletion")
	}
	log.Info("Activity deleted successfully")
	return nil
}

func (s *ActivityServiceImpl) DeleteMany(ctx context.Context, ids []string) ([]*model.Activity, error) {
	log := serviceLogger("DeleteActivities", zap.Int("count", len(ids)))
	ids = distinct(ids)
	if len(ids) == 0 {
		log.Warn("No activity ids supplied")
		return nil, apperrors.ErrInvalidInput
	}

	var deleted []*model.Activity
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = s.repo.DeleteMany(ctx, ids)
		return err
	})
	if err != nil {
		return nil, classify(ctx, log, err, "One or more activities not found for deletion")
	}
	log.Info("Activities deleted successfully", zap.Int("deleted", len(deleted)))
	return deleted, nil
}

func (s *ActivityServiceImpl) ExportExcel(ctx context.Context) ([]byte, error) {
	log := serviceLogger("ExportActivitiesExcel")
	log.Info("Exporting activity list to Excel format")

	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, classify(ctx, log, err, "")
	}
	data, err := export.ActivitiesWorkbook(activities)
	if err != nil {
		log.Error("An error occurred while exporting activities to Excel", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	observability.RecordExportRows("activity", "xlsx", len(activities))
	return data, nil
}

func (s *ActivityServiceImpl) ExportCSV(ctx context.Context) ([]byte, error) {
	log := serviceLogger("ExportActivitiesCSV")
	log.Info("Fetching activity list for CSV export")

	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, classify(ctx, log, err, "")
	}
	data, err := export.ActivitiesCSV(activities)
	if err != nil {
		log.Error("An error occurred while exporting activities to CSV", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	observability.RecordExportRows("activity", "csv", len(activities))
	return data, nil
}
