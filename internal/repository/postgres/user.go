package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db      *Connection
	queries *Queries
}

func NewUserRepository(db *Connection, queries *Queries) *UserRepository {
	return &UserRepository{
		db:      db,
		queries: queries,
	}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, r.queries.Get(queryListUsers))
	if err != nil {
		return nil, classifyError("list users", err)
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, classifyError("list users", err)
	}

	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.db.QueryRow(ctx, r.queries.Get(queryGetUserByID), id))
	if err != nil {
		return model.User{}, classifyError("get user by id", err)
	}

	return user, nil
}

func (r *UserRepository) SearchByField(ctx context.Context, field model.SearchField, needle string) ([]model.User, error) {
	var name string
	switch field {
	case model.SearchFieldCompany:
		name = querySearchUsersByCompany
	case model.SearchFieldProfession:
		name = querySearchUsersByProfession
	default:
		return nil, fmt.Errorf("unsupported search field %q", field)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, r.queries.Get(name), escapeLike(needle))
	if err != nil {
		return nil, classifyError("search users by "+string(field), err)
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, classifyError("search users by "+string(field), err)
	}

	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.db.QueryRow(ctx, r.queries.Get(queryCreateUser),
		params.Name, params.Email, params.Profession, params.Company,
	))
	if err != nil {
		return model.User{}, classifyError("create user", err)
	}

	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, params model.UpdateUserParams) (model.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.db.QueryRow(ctx, r.queries.Get(queryUpdateUser),
		id, params.Name, params.Email, params.Profession, params.Company,
	))
	if err != nil {
		return model.User{}, classifyError("update user", err)
	}

	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (model.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.db.QueryRow(ctx, r.queries.Get(queryDeleteUser), id))
	if err != nil {
		return model.User{}, classifyError("delete user", err)
	}

	return user, nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Profession, &user.Company,
		&user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

func collectUsers(rows pgx.Rows) ([]model.User, error) {
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}
