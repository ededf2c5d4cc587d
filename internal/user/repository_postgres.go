package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

var _ Repository = (*PostgresRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	createUsersTableQuery = `
		CREATE TABLE IF NOT EXISTS users (
			"userId" BIGINT PRIMARY KEY,
			"firstName" TEXT NOT NULL DEFAULT '',
			"lastName" TEXT NOT NULL DEFAULT '',
			active BOOLEAN NOT NULL DEFAULT TRUE
		)
	`
	listUsersQuery = `
		SELECT "userId", "firstName", "lastName", active
		FROM users
		ORDER BY "userId"
	`
	listUsersByIDsQuery = `
		SELECT "userId", "firstName", "lastName", active
		FROM users
		WHERE "userId" = ANY($1::bigint[])
		ORDER BY "userId"
	`
	getUserByIDQuery = `
		SELECT "userId", "firstName", "lastName", active
		FROM users
		WHERE "userId" = $1
	`
	insertUserQuery = `
		INSERT INTO users ("userId", "firstName", "lastName", active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ("userId") DO NOTHING
	`
	setActiveQuery = `
		UPDATE users
		SET active = $1
		WHERE "userId" = $2
		RETURNING "userId", "firstName", "lastName", active
	`
	deleteUserQuery = `DELETE FROM users WHERE "userId" = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the users table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTableQuery); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *PostgresRepository) ListByIDs(ctx context.Context, ids []int) ([]*User, error) {
	if len(ids) == 0 {
		return []*User{}, nil
	}

	arr := make(pq.Int64Array, 0, len(ids))
	for _, id := range ids {
		arr = append(arr, int64(id))
	}

	rows, err := r.db.QueryContext(ctx, listUsersByIDsQuery, arr)
	if err != nil {
		return nil, fmt.Errorf("list users by ids: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, getUserByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {
	if user == nil {
		return nil, ErrInvalidInput
	}

	res, err := r.db.ExecContext(ctx, insertUserQuery, user.ID(), user.FirstName(), user.LastName(), user.Active())
	if err != nil {
		return nil, fmt.Errorf("insert user %d: %w", user.ID(), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("insert user %d: %w", user.ID(), err)
	}
	if affected == 0 {
		return nil, ErrIDExists
	}
	return user, nil
}

func (r *PostgresRepository) SetActive(ctx context.Context, id int, active bool) (*User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, setActiveQuery, active, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("set active for user %d: %w", id, err)
	}
	return user, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUsers(rows *sql.Rows) ([]*User, error) {
	users := make([]*User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func scanUser(scanner rowScanner) (*User, error) {
	var (
		id        int
		firstName string
		lastName  string
		active    bool
	)
	if err := scanner.Scan(&id, &firstName, &lastName, &active); err != nil {
		return nil, err
	}
	return NewUser(id, firstName, lastName, active), nil
}
