package repository

import (
	"context"

	"go-gin-activities/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) (*model.Tag, error)
	// EnsureExists 新增尚不存在的 tags，已存在的 tag_id 保持不變
	EnsureExists(ctx context.Context, tags []model.Tag) error
	List(ctx context.Context) ([]model.Tag, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type TagRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) TagRepository {
	return &TagRepositoryImpl{pool: pool}
}

func (r *TagRepositoryImpl) Create(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	var t model.Tag
	err := querier(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO tags (tag_id, tag_name) VALUES ($1, $2) RETURNING tag_id, tag_name`,
		tag.TagID, tag.TagName,
	).Scan(&t.TagID, &t.TagName)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TagRepositoryImpl) EnsureExists(ctx context.Context, tags []model.Tag) error {
	q := querier(ctx, r.pool)
	for _, t := range tags {
		_, err := q.Exec(ctx,
			`INSERT INTO tags (tag_id, tag_name) VALUES ($1, $2) ON CONFLICT (tag_id) DO NOTHING`,
			t.TagID, t.TagName,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *TagRepositoryImpl) List(ctx context.Context) ([]model.Tag, error) {
	rows, err := querier(ctx, r.pool).Query(ctx, `SELECT tag_id, tag_name FROM tags`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]model.Tag, 0)
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.TagID, &t.TagName); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *TagRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := querier(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM tags`).Scan(&count)
	return count, err
}

func (r *TagRepositoryImpl) DeleteAll(ctx context.Context) error {
	_, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM tags`)
	return err
}
