package repository

import (
	"context"
	"fmt"

	"go-gin-activities/internal/model"

	"github.com/google/uuid"
)

// 多對多關聯表
const (
	joinGroupOrganizers   = "group_organizers"
	joinGroupTags         = "group_tags"
	joinEventTags         = "event_tags"
	joinEventRegistration = "event_registration"
)

const personColumns = "p.person_id, p.first_name, p.middle_name, p.last_name, p.age, p.date_of_birth, p.address, p.interests"

// loadPeople 批次載入多個 group 的 people 關聯
func loadPeople(ctx context.Context, q Querier, joinTable string, groupIDs []uuid.UUID) (map[uuid.UUID][]model.Person, error) {
	query := fmt.Sprintf(`
		SELECT j.group_id, %s
		FROM %s j
		JOIN people p ON p.person_id = j.person_id
		WHERE j.group_id = ANY($1::uuid[])
		ORDER BY p.last_name, p.first_name
	`, personColumns, joinTable)

	rows, err := q.Query(ctx, query, groupIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]model.Person, len(groupIDs))
	for rows.Next() {
		var groupID uuid.UUID
		var p model.Person
		err := rows.Scan(
			&groupID,
			&p.PersonID,
			&p.FirstName,
			&p.MiddleName,
			&p.LastName,
			&p.Age,
			&p.DateOfBirth,
			&p.Address,
			&p.Interests,
		)
		if err != nil {
			return nil, err
		}
		result[groupID] = append(result[groupID], p)
	}
	return result, rows.Err()
}

// loadTags 批次載入多個 group 的 tag 關聯
func loadTags(ctx context.Context, q Querier, joinTable string, groupIDs []uuid.UUID) (map[uuid.UUID][]model.Tag, error) {
	query := fmt.Sprintf(`
		SELECT j.group_id, t.tag_id, t.tag_name
		FROM %s j
		JOIN tags t ON t.tag_id = j.tag_id
		WHERE j.group_id = ANY($1::uuid[])
		ORDER BY t.tag_name
	`, joinTable)

	rows, err := q.Query(ctx, query, groupIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]model.Tag, len(groupIDs))
	for rows.Next() {
		var groupID uuid.UUID
		var t model.Tag
		if err := rows.Scan(&groupID, &t.TagID, &t.TagName); err != nil {
			return nil, err
		}
		result[groupID] = append(result[groupID], t)
	}
	return result, rows.Err()
}

// replaceLinks 以 ids 取代 group 在 joinTable 中的關聯
func replaceLinks(ctx context.Context, q Querier, joinTable, column string, groupID uuid.UUID, ids []uuid.UUID) error {
	_, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE group_id = $1", joinTable), groupID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (group_id, %s)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING
	`, joinTable, column)
	_, err = q.Exec(ctx, query, groupID, ids)
	return err
}

func personIDs(people []model.Person) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(people))
	for _, p := range people {
		ids = append(ids, p.PersonID)
	}
	return ids
}

func tagIDs(tags []model.Tag) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.TagID)
	}
	return ids
}

// emptyIfNil 確保 JSON 輸出為 [] 而非 null
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
