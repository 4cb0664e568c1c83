package repository

import (
	"context"

	"go-gin-activities/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GroupRepository 只處理 discriminator = 'Group' 的資料列
type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) (*model.Group, error)
	List(ctx context.Context) ([]*model.Group, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type GroupRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewGroupRepository(pool *pgxpool.Pool) GroupRepository {
	return &GroupRepositoryImpl{pool: pool}
}

func (r *GroupRepositoryImpl) Create(ctx context.Context, group *model.Group) (*model.Group, error) {
	q := querier(ctx, r.pool)
	query := `
		INSERT INTO groups (group_id, discriminator, group_name, group_description)
		VALUES ($1, $2, $3, $4)
	`
	_, err := q.Exec(ctx, query, group.GroupID, string(model.GroupKindGroup), group.GroupName, group.GroupDescription)
	if err != nil {
		return nil, err
	}
	if err := replaceLinks(ctx, q, joinGroupOrganizers, "person_id", group.GroupID, personIDs(group.Organizers)); err != nil {
		return nil, err
	}
	if err := replaceLinks(ctx, q, joinGroupTags, "tag_id", group.GroupID, tagIDs(group.GroupTags)); err != nil {
		return nil, err
	}

	group.Organizers = emptyIfNil(group.Organizers)
	group.GroupTags = emptyIfNil(group.GroupTags)
	return group, nil
}

func (r *GroupRepositoryImpl) List(ctx context.Context) ([]*model.Group, error) {
	q := querier(ctx, r.pool)
	rows, err := q.Query(ctx, `
		SELECT group_id, group_name, group_description
		FROM groups
		WHERE discriminator = 'Group'
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*model.Group, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var g model.Group
		if err := rows.Scan(&g.GroupID, &g.GroupName, &g.GroupDescription); err != nil {
			return nil, err
		}
		groups = append(groups, &g)
		ids = append(ids, g.GroupID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(groups) == 0 {
		return groups, nil
	}
	organizers, err := loadPeople(ctx, q, joinGroupOrganizers, ids)
	if err != nil {
		return nil, err
	}
	tags, err := loadTags(ctx, q, joinGroupTags, ids)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		g.Organizers = emptyIfNil(organizers[g.GroupID])
		g.GroupTags = emptyIfNil(tags[g.GroupID])
	}
	return groups, nil
}

func (r *GroupRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := querier(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM groups WHERE discriminator = 'Group'`).Scan(&count)
	return count, err
}

func (r *GroupRepositoryImpl) DeleteAll(ctx context.Context) error {
	_, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM groups WHERE discriminator = 'Group'`)
	return err
}
