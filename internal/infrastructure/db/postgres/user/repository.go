package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "exam-registry-api/internal/domain/user"
	"exam-registry-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUsers(ctx context.Context, f domain.ListFilter) (domain.Users, uint64, error) {
	dataSQL, countSQL, dataArgs, countArgs := BuildListQuery(f)

	var total uint64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, dataSQL, dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.ID,
			&u.Name,
			&u.Phone,
			&u.Program,
			&u.Image,
			&u.TakeDate,

			&u.ResultID,
			&u.ResultTitle,

			&u.CreatedAt,
			&u.UpdatedAt,

			&u.DeletedAt,
		); err != nil {
			return nil, 0, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return fromDBModels(&us), total, nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, uint64(id)).Scan(
		&u.ID,
		&u.Name,
		&u.Phone,
		&u.Program,
		&u.Image,
		&u.TakeDate,

		&u.ResultID,
		&u.ResultTitle,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	var id uint64

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Name, req.Phone, req.Program, req.Image, req.TakeDate, req.ResultID,
	).Scan(&id)
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return nil, ErrResultRef
		}
		return nil, err
	}

	return r.FetchUserByID(ctx, domain.ID(id))
}

func (r *Repository) UpdateUser(ctx context.Context, id domain.ID, p domain.Patch) (*domain.User, error) {
	sql, args := BuildUpdateQuery(id, p)

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return nil, ErrResultRef
		}
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, nil
	}

	return r.FetchUserByID(ctx, id)
}

func (r *Repository) UpdateUserImage(ctx context.Context, id domain.ID, image string) (*domain.User, error) {
	ct, err := r.db.Exec(ctx, UpdateUserImageByID, image, uint64(id))
	if err != nil {
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, nil
	}

	return r.FetchUserByID(ctx, id)
}

func (r *Repository) DeleteUser(ctx context.Context, id domain.ID) error {
	ct, err := r.db.Exec(ctx, SoftDeleteUserByID, uint64(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
