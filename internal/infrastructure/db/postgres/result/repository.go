package result

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "exam-registry-api/internal/domain/result"
	"exam-registry-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchResults(ctx context.Context) (domain.Results, error) {
	rows, err := r.db.Query(ctx, SelectResults)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rs Results
	for rows.Next() {
		res := new(Result)

		if err = rows.Scan(
			&res.ID,
			&res.Title,
			&res.Description,

			&res.CreatedAt,
			&res.UpdatedAt,

			&res.DeletedAt,
		); err != nil {
			return nil, err
		}

		rs = append(rs, res)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&rs), nil
}

func (r *Repository) FetchResultByID(ctx context.Context, id domain.ID) (*domain.Result, error) {
	res := new(Result)
	err := r.db.QueryRow(ctx, SelectResultByID, uint64(id)).Scan(
		&res.ID,
		&res.Title,
		&res.Description,

		&res.CreatedAt,
		&res.UpdatedAt,

		&res.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(res), err
}

func (r *Repository) CreateResult(ctx context.Context, req domain.Result) (*domain.Result, error) {
	res := new(Result)

	err := r.db.QueryRow(
		ctx,
		InsertResult,
		req.Title, req.Description,
	).Scan(
		&res.ID,
		&res.Title,
		&res.Description,

		&res.CreatedAt,
		&res.UpdatedAt,

		&res.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(res), err
}

func (r *Repository) UpdateResult(ctx context.Context, id domain.ID, p domain.Patch) (*domain.Result, error) {
	sql, args := BuildUpdateQuery(id, p)

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, nil
	}

	return r.FetchResultByID(ctx, id)
}

func (r *Repository) DeleteResult(ctx context.Context, id domain.ID) error {
	ct, err := r.db.Exec(ctx, SoftDeleteResultByID, uint64(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) ExistsActive(ctx context.Context, id domain.ID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, SelectResultActive, uint64(id)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
