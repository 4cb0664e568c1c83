package repository

import (
	"context"

	"go-gin-activities/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PersonRepository interface {
	Create(ctx context.Context, person *model.Person) (*model.Person, error)
	// EnsureExists 新增尚不存在的 people，已存在的 person_id 保持不變
	EnsureExists(ctx context.Context, people []model.Person) error
	List(ctx context.Context) ([]model.Person, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type PersonRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPersonRepository(pool *pgxpool.Pool) PersonRepository {
	return &PersonRepositoryImpl{pool: pool}
}

func (r *PersonRepositoryImpl) Create(ctx context.Context, person *model.Person) (*model.Person, error) {
	query := `
		INSERT INTO people (person_id, first_name, middle_name, last_name, age, date_of_birth, address, interests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING person_id, first_name, middle_name, last_name, age, date_of_birth, address, interests
	`
	var p model.Person
	err := querier(ctx, r.pool).QueryRow(ctx, query,
		person.PersonID,
		person.FirstName,
		person.MiddleName,
		person.LastName,
		person.Age,
		person.DateOfBirth,
		person.Address,
		person.Interests,
	).Scan(
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
	return &p, nil
}

func (r *PersonRepositoryImpl) EnsureExists(ctx context.Context, people []model.Person) error {
	query := `
		INSERT INTO people (person_id, first_name, middle_name, last_name, age, date_of_birth, address, interests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (person_id) DO NOTHING
	`
	q := querier(ctx, r.pool)
	for _, p := range people {
		_, err := q.Exec(ctx, query,
			p.PersonID,
			p.FirstName,
			p.MiddleName,
			p.LastName,
			p.Age,
			p.DateOfBirth,
			p.Address,
			p.Interests,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PersonRepositoryImpl) List(ctx context.Context) ([]model.Person, error) {
	rows, err := querier(ctx, r.pool).Query(ctx, `SELECT `+personColumns+` FROM people p`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := make([]model.Person, 0)
	for rows.Next() {
		var p model.Person
		err := rows.Scan(
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
		people = append(people, p)
	}
	return people, rows.Err()
}

func (r *PersonRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := querier(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM people`).Scan(&count)
	return count, err
}

func (r *PersonRepositoryImpl) DeleteAll(ctx context.Context) error {
	_, err := querier(ctx, r.pool).Exec(ctx, `DELETE FROM people`)
	return err
}
