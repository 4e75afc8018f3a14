package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository executes parameterized statements against the users
// table and maps rows to User records.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository on top of the shared
// connection pool.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Insert persists a new user and returns the record with the
// storage-generated id attached.
func (r *UserRepository) Insert(ctx context.Context, user NewUser) (*User, error) {
	var id int32
	err := r.pool.QueryRow(ctx,
		"INSERT INTO users (name, email, birth_date) VALUES ($1, $2, $3) RETURNING id",
		user.Name, user.Email, user.BirthDate,
	).Scan(&id)
	if err != nil {
		return nil, &TechnicalError{Op: "insert user", Err: err}
	}

	return &User{
		ID:        id,
		Name:      user.Name,
		Email:     user.Email,
		BirthDate: user.BirthDate,
	}, nil
}

// FindByID returns the user with the given id, or (nil, nil) when no row
// matches.
func (r *UserRepository) FindByID(ctx context.Context, id int32) (*User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT id, name, email, birth_date FROM users WHERE id = $1",
		id,
	)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &TechnicalError{Op: "find user by id", Err: err}
	}
	return user, nil
}

// FindByEmail returns the user with the given email, or (nil, nil) when
// no row matches. Used by the service layer for the uniqueness pre-check.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT id, name, email, birth_date FROM users WHERE email = $1",
		email,
	)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &TechnicalError{Op: "find user by email", Err: err}
	}
	return user, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var user User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.BirthDate); err != nil {
		return nil, err
	}
	return &user, nil
}
