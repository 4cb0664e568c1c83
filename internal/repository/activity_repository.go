package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-gin-activities/internal/model"
	apperrors "go-gin-activities/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) (*model.Activity, error)
	List(ctx context.Context) ([]*model.Activity, error)
	FindByID(ctx context.Context, id string) (*model.Activity, error)
	Update(ctx context.Context, id string, params model.UpdateActivityParams) (*model.Activity, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) ([]*model.Activity, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type ActivityRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &ActivityRepositoryImpl{
		pool: pool,
	}
}

const activityColumns = "id, title, date, description, category, is_cancelled, city, venue, latitude, longitude"

func scanActivity(row pgx.Row) (*model.Activity, error) {
	var activity model.Activity
	err := row.Scan(
		&activity.ID,
		&activity.Title,
		&activity.Date,
		&activity.Description,
		&activity.Category,
		&activity.IsCancelled,
		&activity.City,
		&activity.Venue,
		&activity.Latitude,
		&activity.Longitude,
	)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func collectActivities(rows pgx.Rows) ([]*model.Activity, error) {
	defer rows.Close()

	activities := make([]*model.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	query := `
		INSERT INTO activities (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + activityColumns

	return scanActivity(querier(ctx, r.pool).QueryRow(ctx, query,
		activity.ID,
		activity.Title,
		activity.Date,
		activity.Description,
		activity.Category,
		activity.IsCancelled,
		activity.City,
		activity.Venue,
		activity.Latitude,
		activity.Longitude,
	))
}

func (r *ActivityRepositoryImpl) List(ctx context.Context) ([]*model.Activity, error) {
	rows, err := querier(ctx, r.pool).Query(ctx, `SELECT `+activityColumns+` FROM activities`)
	if err != nil {
		return nil, err
	}
	return collectActivities(rows)
}

func (r *ActivityRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE id = $1
	`

	activity, err := scanActivity(querier(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, err
	}
	return activity, nil
}

func (r *ActivityRepositoryImpl) Update(ctx context.Context, id string, params model.UpdateActivityParams) (*model.Activity, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Title != nil {
		set("title", *params.Title)
	}
	if params.Date != nil {
		set("date", *params.Date)
	}
	if params.Description != nil {
		set("description", *params.Description)
	}
	if params.Category != nil {
		set("category", *params.Category)
	}
	if params.IsCancelled != nil {
		set("is_cancelled", *params.IsCancelled)
	}
	if params.City != nil {
		set("city", *params.City)
	}
	if params.Venue != nil {
		set("venue", *params.Venue)
	}
	if params.Latitude != nil {
		set("latitude", *params.Latitude)
	}
	if params.Longitude != nil {
		set("longitude", *params.Longitude)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE activities
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, activityColumns)

	activity, err := scanActivity(querier(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, err
	}
	return activity, nil
}

func (r *ActivityRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrActivityNotFound
	}
	return nil
}

// DeleteMany 刪除所有指定的 activity；任一 id 不存在時回傳 ErrActivityNotFound，
// 呼叫端需在 transaction 中執行才能整批 rollback
func (r *ActivityRepositoryImpl) DeleteMany(ctx context.Context, ids []string) ([]*model.Activity, error) {
	query := `
		DELETE FROM activities
		WHERE id = ANY($1)
		RETURNING ` + activityColumns

	rows, err := querier(ctx, r.pool).Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	deleted, err := collectActivities(rows)
	if err != nil {
		return nil, err
	}
	if len(deleted) != len(ids) {
		return nil, apperrors.ErrActivityNotFound
	}
	return deleted, nil
}

func (r *ActivityRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := querier(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count)
	return count, err
}

func (r *ActivityRepositoryImpl) DeleteAll(ctx context.Context) error {
	_, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM activities`)
	return err
}
