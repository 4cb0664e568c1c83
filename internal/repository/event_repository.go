package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-gin-activities/internal/model"
	apperrors "go-gin-activities/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	// Create 寫入 group 列與關聯列；被關聯的 people 與 tags 需已存在
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	Update(ctx context.Context, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
	DeleteMany(ctx context.Context, eventIDs []uuid.UUID) ([]*model.Event, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = "group_id, group_name, group_description, event_id, event_name, event_description, location"

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.GroupID,
		&event.GroupName,
		&event.GroupDescription,
		&event.EventID,
		&event.EventName,
		&event.EventDescription,
		&event.Location,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	q := querier(ctx, r.pool)
	query := `
		INSERT INTO groups (group_id, discriminator, group_name, group_description, event_id, event_name, event_description, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := q.Exec(ctx, query,
		event.GroupID,
		string(model.GroupKindEvent),
		event.GroupName,
		event.GroupDescription,
		event.EventID,
		event.EventName,
		event.EventDescription,
		event.Location,
	)
	if err != nil {
		return nil, err
	}
	if err := r.replaceRelations(ctx, q, event.GroupID, event.Organizers, event.GroupTags, event.Tags, event.Registration); err != nil {
		return nil, err
	}
	return r.findOne(ctx, q, "event_id = $1", event.EventID)
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	return r.findMany(ctx, querier(ctx, r.pool), "TRUE")
}

func (r *EventRepositoryImpl) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	return r.findOne(ctx, querier(ctx, r.pool), "event_id = $1", eventID)
}

func (r *EventRepositoryImpl) Update(ctx context.Context, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	q := querier(ctx, r.pool)

	sets := []string{}
	args := []interface{}{}
	argPos := 1

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.GroupName != nil {
		set("group_name", *params.GroupName)
	}
	if params.GroupDescription != nil {
		set("group_description", *params.GroupDescription)
	}
	if params.EventName != nil {
		set("event_name", *params.EventName)
	}
	if params.EventDescription != nil {
		set("event_description", *params.EventDescription)
	}
	if params.Location != nil {
		set("location", *params.Location)
	}

	if len(sets) == 0 && !params.HasRelations() {
		return nil, apperrors.ErrInvalidInput
	}

	var groupID uuid.UUID
	var err error
	if len(sets) > 0 {
		args = append(args, eventID)
		query := fmt.Sprintf(`
			UPDATE groups
			SET %s
			WHERE event_id = $%d AND discriminator = 'Event'
			RETURNING group_id
		`, strings.Join(sets, ", "), argPos)
		err = q.QueryRow(ctx, query, args...).Scan(&groupID)
	} else {
		err = q.QueryRow(ctx, `SELECT group_id FROM groups WHERE event_id = $1 AND discriminator = 'Event'`, eventID).Scan(&groupID)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	if err := r.replaceRelations(ctx, q, groupID, params.Organizers, params.GroupTags, params.Tags, params.Registration); err != nil {
		return nil, err
	}
	return r.findOne(ctx, q, "group_id = $1", groupID)
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, eventID uuid.UUID) error {
	tag, err := querier(ctx, r.pool).Exec(ctx,
		`DELETE FROM groups WHERE event_id = $1 AND discriminator = 'Event'`, eventID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// DeleteMany 先載入再刪除；任一 id 不存在時回傳 ErrEventNotFound，
// 呼叫端需在 transaction 中執行才能整批 rollback
func (r *EventRepositoryImpl) DeleteMany(ctx context.Context, eventIDs []uuid.UUID) ([]*model.Event, error) {
	q := querier(ctx, r.pool)

	events, err := r.findMany(ctx, q, "event_id = ANY($1::uuid[])", eventIDs)
	if err != nil {
		return nil, err
	}
	if len(events) != len(eventIDs) {
		return nil, apperrors.ErrEventNotFound
	}

	tag, err := q.Exec(ctx, `DELETE FROM groups WHERE event_id = ANY($1::uuid[]) AND discriminator = 'Event'`, eventIDs)
	if err != nil {
		return nil, err
	}
	if int(tag.RowsAffected()) != len(eventIDs) {
		return nil, apperrors.ErrEventNotFound
	}
	return events, nil
}

func (r *EventRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := querier(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM groups WHERE discriminator = 'Event'`).Scan(&count)
	return count, err
}

func (r *EventRepositoryImpl) DeleteAll(ctx context.Context) error {
	_, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM groups WHERE discriminator = 'Event'`)
	return err
}

// replaceRelations 只更新非 nil 的集合
func (r *EventRepositoryImpl) replaceRelations(ctx context.Context, q Querier, groupID uuid.UUID, organizers []model.Person, groupTags, tags []model.Tag, registration []model.Person) error {
	if organizers != nil {
		if err := replaceLinks(ctx, q, joinGroupOrganizers, "person_id", groupID, personIDs(organizers)); err != nil {
			return err
		}
	}
	if groupTags != nil {
		if err := replaceLinks(ctx, q, joinGroupTags, "tag_id", groupID, tagIDs(groupTags)); err != nil {
			return err
		}
	}
	if tags != nil {
		if err := replaceLinks(ctx, q, joinEventTags, "tag_id", groupID, tagIDs(tags)); err != nil {
			return err
		}
	}
	if registration != nil {
		if err := replaceLinks(ctx, q, joinEventRegistration, "person_id", groupID, personIDs(registration)); err != nil {
			return err
		}
	}
	return nil
}

func (r *EventRepositoryImpl) findOne(ctx context.Context, q Querier, where string, args ...any) (*model.Event, error) {
	events, err := r.findMany(ctx, q, where, args...)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, apperrors.ErrEventNotFound
	}
	return events[0], nil
}

// findMany 查詢 event 列並批次載入四種關聯
func (r *EventRepositoryImpl) findMany(ctx context.Context, q Querier, where string, args ...any) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM groups
		WHERE discriminator = 'Event' AND %s
	`, eventColumns, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
		ids = append(ids, event.GroupID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(events) == 0 {
		return events, nil
	}

	organizers, err := loadPeople(ctx, q, joinGroupOrganizers, ids)
	if err != nil {
		return nil, err
	}
	registration, err := loadPeople(ctx, q, joinEventRegistration, ids)
	if err != nil {
		return nil, err
	}
	groupTags, err := loadTags(ctx, q, joinGroupTags, ids)
	if err != nil {
		return nil, err
	}
	tags, err := loadTags(ctx, q, joinEventTags, ids)
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		e.Organizers = emptyIfNil(organizers[e.GroupID])
		e.GroupTags = emptyIfNil(groupTags[e.GroupID])
		e.Tags = emptyIfNil(tags[e.GroupID])
		e.Registration = emptyIfNil(registration[e.GroupID])
	}
	return events, nil
}
