package account

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
)

type pgRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) Repo {
	return &pgRepo{db: db}
}

// Schema:
//
//	CREATE TABLE users (
//	    id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//	    username         TEXT UNIQUE NOT NULL,
//	    password_hash    TEXT NOT NULL,
//	    display_username TEXT NOT NULL,
//	    created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
func (r *pgRepo) Create(ctx context.Context, u *User) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, display_username)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		strings.ToLower(u.Username), u.PasswordHash, u.DisplayUsername,
	).Scan(&u.ID, &u.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

func (r *pgRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	u := &User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, display_username, created_at
		 FROM users WHERE username = $1`,
		strings.ToLower(username),
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.DisplayUsername, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *pgRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
